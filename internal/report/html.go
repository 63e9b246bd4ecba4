package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// RenderHTML converts a markdown report into a standalone HTML document.
// Arabic output gets dir="rtl" and right-aligned tables; the stylesheet is
// inlined so the document works as an email attachment or a PDF input.
func RenderHTML(markdown string, lang Lang) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}

	dir, align, fontStack := "ltr", "left", `"Helvetica Neue",Arial,sans-serif`
	if lang == LangArabic {
		dir, align, fontStack = "rtl", "right", `"Segoe UI",Tahoma,Arial,sans-serif`
	}

	title := labelsFor(lang).title
	return "<!doctype html><html lang='" + string(lang) + "' dir='" + dir + "'>" +
		"<head><meta charset='utf-8'><title>" + html.EscapeString(title) + "</title>" +
		"<style>" +
		"body{font-family:" + fontStack + ";max-width:900px;margin:0 auto;padding:1.5rem;color:#1c1917;line-height:1.55;}" +
		"h1{border-bottom:2px solid #0f766e;padding-bottom:0.4rem;}" +
		"h2{color:#0f766e;margin-top:1.8rem;}" +
		"table{width:100%;border-collapse:collapse;font-size:0.85rem;margin:0.8rem 0;}" +
		"th,td{border:1px solid #a8a29e;padding:0.35rem 0.5rem;text-align:" + align + ";vertical-align:top;}" +
		"thead th{background:#f1f5f9;font-weight:700;}" +
		"li{margin:0.2rem 0;}" +
		"@media print{body{padding:0;}h2{break-after:avoid;}table{break-inside:avoid;}}" +
		"</style></head><body>" + content.String() + "</body></html>", nil
}
