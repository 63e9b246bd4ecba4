package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/MaherElabd2/price23-sub001/internal/engine"
	"github.com/MaherElabd2/price23-sub001/internal/report"
)

// render-report evaluates a snapshot JSON file and writes the report, so a
// saved session export can be turned into a document without a running server.
func main() {
	var (
		inputPath  = flag.String("input", "", "Path to a snapshot JSON file")
		outputPath = flag.String("output", "", "Output path (defaults to stdout; required for pdf)")
		lang       = flag.String("lang", "en", "Report language: en or ar")
		format     = flag.String("format", "md", "Output format: md, html or pdf")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing required -input")
	}
	language := report.Lang(*lang)
	if !language.IsValid() {
		log.Fatalf("unknown lang %q (want en or ar)", *lang)
	}

	in, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	var snapshot engine.Snapshot
	if err := json.Unmarshal(in, &snapshot); err != nil {
		log.Fatalf("decode snapshot JSON: %v", err)
	}

	eval := engine.Evaluate(snapshot)
	markdown := report.BuildMarkdown(snapshot, eval, language)

	switch *format {
	case "md":
		if err := writeOut(*outputPath, []byte(markdown)); err != nil {
			log.Fatalf("write markdown: %v", err)
		}
	case "html":
		doc, err := report.RenderHTML(markdown, language)
		if err != nil {
			log.Fatalf("render html: %v", err)
		}
		if err := writeOut(*outputPath, []byte(doc)); err != nil {
			log.Fatalf("write html: %v", err)
		}
	case "pdf":
		if *outputPath == "" {
			log.Fatal("-output is required for pdf")
		}
		doc, err := report.RenderHTML(markdown, language)
		if err != nil {
			log.Fatalf("render html: %v", err)
		}
		pdf, err := report.NewChromiumRenderer().Render(context.Background(), doc)
		if err != nil {
			log.Fatalf("render pdf: %v", err)
		}
		if err := os.WriteFile(*outputPath, pdf, 0o644); err != nil {
			log.Fatalf("write pdf: %v", err)
		}
	default:
		log.Fatalf("unknown format %q (want md, html or pdf)", *format)
	}
}

func writeOut(path string, blob []byte) error {
	if path == "" {
		_, err := fmt.Print(string(blob))
		return err
	}
	return os.WriteFile(path, blob, 0o644)
}
