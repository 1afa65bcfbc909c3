package observability

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerWithTraceAddsTraceFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	oldLogger := Logger
	Logger = zap.New(core)
	t.Cleanup(func() { Logger = oldLogger })

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	LoggerWithTrace(ctx).Info("hello")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["trace_id"] != span.SpanContext().TraceID().String() {
		t.Fatalf("expected trace_id %q, got %#v", span.SpanContext().TraceID(), fields["trace_id"])
	}
	if fields["span_id"] != span.SpanContext().SpanID().String() {
		t.Fatalf("expected span_id %q, got %#v", span.SpanContext().SpanID(), fields["span_id"])
	}
}

func TestLoggerWithTraceWithoutSpan(t *testing.T) {
	oldLogger := Logger
	Logger = zap.NewNop()
	t.Cleanup(func() { Logger = oldLogger })

	if got := LoggerWithTrace(context.Background()); got != Logger {
		t.Fatal("expected the base logger when no span is active")
	}
}

func TestInitFileLogger(t *testing.T) {
	oldLogger := Logger
	t.Cleanup(func() { Logger = oldLogger })

	path := filepath.Join(t.TempDir(), "tui.log")
	if err := InitFileLogger(path); err != nil {
		t.Fatalf("init file logger: %v", err)
	}

	Logger.Info("written to file")
	SyncLogger()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Fatalf("expected log line in file, got %q", data)
	}
}
