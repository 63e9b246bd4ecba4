package report

import (
	"strings"
	"testing"
)

func TestRenderHTMLEnglish(t *testing.T) {
	s, eval := sampleEvaluation()
	md := BuildMarkdown(s, eval, LangEnglish)
	doc, err := RenderHTML(md, LangEnglish)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"dir='ltr'",
		"lang='en'",
		"<h1",
		"<table>",
		"Widget",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("html missing %q", want)
		}
	}
}

func TestRenderHTMLArabicIsRTL(t *testing.T) {
	s, eval := sampleEvaluation()
	md := BuildMarkdown(s, eval, LangArabic)
	doc, err := RenderHTML(md, LangArabic)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(doc, "dir='rtl'") {
		t.Fatal("arabic html must declare rtl direction")
	}
	if !strings.Contains(doc, "text-align:right") {
		t.Fatal("arabic tables must right-align")
	}
	if !strings.Contains(doc, "تقرير التسعير") {
		t.Fatal("arabic content missing from rendered html")
	}
}

func TestRenderHTMLTablesSurviveConversion(t *testing.T) {
	s, eval := sampleEvaluation()
	md := BuildMarkdown(s, eval, LangEnglish)
	doc, err := RenderHTML(md, LangEnglish)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	// GFM tables become real table markup, not literal pipes.
	if !strings.Contains(doc, "<thead>") || !strings.Contains(doc, "<tbody>") {
		t.Fatal("markdown tables should convert to html tables")
	}
}
