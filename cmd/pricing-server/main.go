package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/MaherElabd2/price23-sub001/internal/httpapi"
	"github.com/MaherElabd2/price23-sub001/internal/report"
	"github.com/MaherElabd2/price23-sub001/internal/session"
)

func main() {
	_ = godotenv.Load()

	var (
		addr   = flag.String("addr", envOr("PRICING_ADDR", ":8080"), "HTTP listen address")
		dbPath = flag.String("db", envOr("PRICING_DB", "./pricing.db"), "SQLite database path (empty = in-memory only)")
		noPDF  = flag.Bool("no-pdf", false, "Disable PDF export (no headless Chromium needed)")
	)
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	shutdownTracing, err := setupTracing(ctx)
	if err != nil {
		log.Fatalf("tracing setup: %v", err)
	}
	defer func() {
		shutdownCtx, c := context.WithTimeout(context.Background(), 5*time.Second)
		defer c()
		_ = shutdownTracing(shutdownCtx)
	}()

	var store session.Store
	if strings.TrimSpace(*dbPath) == "" {
		store = session.NewMemoryStore()
		log.Print("sessions are in-memory only; pass -db to persist")
	} else {
		store, err = session.NewSQLiteStore(*dbPath)
		if err != nil {
			log.Fatalf("open session store: %v", err)
		}
	}
	defer store.Close()

	var renderer report.Renderer
	if !*noPDF {
		renderer = report.NewChromiumRenderer()
	}

	handler := httpapi.NewServer(store, renderer)

	log.Printf("pricing server listening on %s (db=%s)", *addr, *dbPath)
	srv := &http.Server{Addr: *addr, Handler: handler}
	go func() {
		<-ctx.Done()
		shutdownCtx, c := context.WithTimeout(context.Background(), 5*time.Second)
		defer c()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// setupTracing installs an OTLP/HTTP trace exporter when
// OTEL_EXPORTER_OTLP_ENDPOINT is set; otherwise spans stay no-ops.
func setupTracing(ctx context.Context) (func(context.Context) error, error) {
	if strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")) == "" {
		return func(context.Context) error { return nil }, nil
	}
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", "pricing-server"),
		)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
