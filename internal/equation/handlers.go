package equation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bhaskara/internal/handlers"
	"bhaskara/internal/observability"
	"bhaskara/internal/quadratic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the equation domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("equation")

// maxBatchSize bounds POST /equation/batch.
const maxBatchSize = 100

// ---------------------------------------------------------------------------
// Handler: single equation
// ---------------------------------------------------------------------------

// Solve handles POST /equation/solve. Validation failures are answered with
// 422 and the alert the display surface should show; roots are reset to
// "0".
func Solve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	// --- 1. Custom child span ---
	ctx, span := tracer.Start(ctx, "equation.solve",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	// --- 2. Decode request body ---
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "solve", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	// --- 3. Validate, solve, record ---
	resp, err := solveOne(ctx, logger, "solve", req)
	if err != nil {
		handlers.WriteJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	// --- 4. Write JSON response ---
	handlers.WriteJSON(w, http.StatusOK, resp)
}

// solveOne validates and solves req, annotating the span in ctx and
// recording metrics. The returned response is always displayable; err is the
// validation error, if any.
func solveOne(ctx context.Context, logger *zap.Logger, opName string, req SolveRequest) (SolveResponse, error) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.String("equation.input.a", req.A),
		attribute.String("equation.input.b", req.B),
		attribute.String("equation.input.c", req.C),
	)

	start := time.Now()
	coeffs, err := quadratic.Validate(req.A, req.B, req.C)
	if err != nil {
		recordRejection(ctx, logger, opName, err)
		return rejectedResponse(req, err), err
	}

	out := quadratic.Solve(coeffs)
	elapsed := float64(time.Since(start).Nanoseconds()) / 1e6 // ms

	span.SetAttributes(
		attribute.Float64("equation.a", coeffs.A),
		attribute.Float64("equation.b", coeffs.B),
		attribute.Float64("equation.c", coeffs.C),
	)
	recordOutcome(ctx, logger, opName, out, elapsed)
	return solvedResponse(req, out), nil
}

// recordRejection marks the span in ctx as failed validation and counts it.
func recordRejection(ctx context.Context, logger *zap.Logger, opName string, err error) {
	span := trace.SpanFromContext(ctx)
	kind := quadratic.KindName(err)

	span.RecordError(err)
	span.SetStatus(codes.Error, kind)
	span.SetAttributes(attribute.String("equation.error_kind", kind))

	rejectionCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.String("kind", kind),
	))

	logger.Warn("coefficients rejected",
		zap.String("operation", opName),
		zap.String("kind", kind),
		zap.Error(err),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)
}

// recordOutcome annotates the span in ctx with the solution and records the
// solve metrics.
func recordOutcome(ctx context.Context, logger *zap.Logger, opName string, out quadratic.Outcome, elapsed float64) {
	span := trace.SpanFromContext(ctx)

	attrs := metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.String("outcome", out.Kind.String()),
	)
	solveCounter.Add(ctx, 1, attrs)
	solveHistogram.Record(ctx, elapsed, attrs)
	if out.Kind != quadratic.Overflow {
		discriminantGauge.Record(ctx, out.Discriminant, metric.WithAttributes(attribute.String("operation", opName)))
	}

	span.AddEvent("equation.solved", trace.WithAttributes(
		attribute.String("outcome", out.Kind.String()),
		attribute.Float64("discriminant", out.Discriminant),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.String("equation.outcome", out.Kind.String()))
	span.SetStatus(codes.Ok, "")

	logger.Info("equation solved",
		zap.String("operation", opName),
		zap.Float64("discriminant", out.Discriminant),
		zap.String("outcome", out.Kind.String()),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
		zap.Float64("duration_ms", elapsed),
	)
}

// ---------------------------------------------------------------------------
// Handler: batch (demonstrates nested spans)
// ---------------------------------------------------------------------------

// Batch handles POST /equation/batch. Every equation gets its own child span
// and is solved independently; a rejected equation does not stop the rest.
func Batch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	// Parent span for the whole batch
	ctx, span := tracer.Start(ctx, "equation.batch",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Equations) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "no equations provided", fmt.Errorf("equations array is empty"), http.StatusBadRequest, w)
		return
	}
	if len(req.Equations) > maxBatchSize {
		msg := fmt.Sprintf("at most %d equations per batch", maxBatchSize)
		observability.RecordError(ctx, span, logger, errorCounter, "batch", msg, fmt.Errorf("%d equations", len(req.Equations)), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Int("batch.size", len(req.Equations)))

	resp := BatchResponse{Results: make([]SolveResponse, 0, len(req.Equations))}

	for i, eq := range req.Equations {
		// --- Child span per equation ---
		itemCtx, itemSpan := tracer.Start(ctx, fmt.Sprintf("equation.batch.item.%d", i),
			trace.WithAttributes(
				attribute.Int("batch.item.index", i),
			),
		)

		result, err := solveOne(itemCtx, logger, "batch", eq)
		if err != nil {
			resp.Rejected++
		} else {
			resp.Solved++
		}
		resp.Results = append(resp.Results, result)

		itemSpan.End()
	}

	span.AddEvent("batch.complete", trace.WithAttributes(
		attribute.Int("solved", resp.Solved),
		attribute.Int("rejected", resp.Rejected),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("batch completed",
		zap.Int("equations", len(req.Equations)),
		zap.Int("solved", resp.Solved),
		zap.Int("rejected", resp.Rejected),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}
