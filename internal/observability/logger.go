package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger is the process-wide logger. It discards everything until one of the
// Init functions runs.
var Logger = zap.NewNop()

func InitLogger() error {
	var err error

	Logger, err = zap.NewProduction()
	if err != nil {
		return err
	}

	return nil
}

// InitFileLogger writes JSON logs to path instead of stderr, for processes
// that own the terminal. An empty path keeps logging disabled.
func InitFileLogger(path string) error {
	if path == "" {
		Logger = zap.NewNop()
		return nil
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = l

	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active OTel span in ctx.
//
// ctx itself is attached as zap.Any("context", ctx). The otelzap bridge
// detects context-valued fields and passes them to log.Logger.Emit, so the
// exported OTLP record carries the native TraceID/SpanID and Loki can link
// to Tempo. Without it the bridge emits with context.Background() and the
// native IDs are all zeros.
//
// The string trace_id / span_id fields keep stdout JSON greppable.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
