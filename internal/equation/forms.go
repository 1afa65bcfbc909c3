package equation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"bhaskara/internal/form"
	"bhaskara/internal/handlers"
	"bhaskara/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Forms serves form sessions: one server-side screen per session, driven by
// the same calculate and clear actions as the terminal form.
type Forms struct {
	store *Store
}

// NewForms returns the form-session handlers backed by store.
func NewForms(store *Store) *Forms {
	return &Forms{store: store}
}

// begin starts the span for a form action and returns the session ID from
// the URL.
func (h *Forms) begin(r *http.Request, opName string) (context.Context, trace.Span, *zap.Logger, string) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	id := chi.URLParam(r, "id")

	ctx, span := tracer.Start(ctx, "equation.form."+opName,
		trace.WithAttributes(
			attribute.String("request.id", observability.RequestIDFromContext(ctx)),
			attribute.String("form.id", id),
		),
	)
	return ctx, span, logger, id
}

func (h *Forms) fail(ctx context.Context, span trace.Span, logger *zap.Logger, opName string, err error, w http.ResponseWriter) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrFormNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrTooManyForms):
		status = http.StatusServiceUnavailable
	}
	observability.RecordError(ctx, span, logger, errorCounter, "form."+opName, err.Error(), err, status, w)
}

func (h *Forms) respond(span trace.Span, w http.ResponseWriter, status int, id string, snap form.Snapshot, alerts []form.Alert) {
	span.SetAttributes(attribute.String("form.state", snap.State))
	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, status, FormResponse{ID: id, Snapshot: snap, Alerts: alerts})
}

// Create handles POST /forms.
func (h *Forms) Create(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger, _ := h.begin(r, "create")
	defer span.End()

	id, snap, err := h.store.Create()
	if err != nil {
		h.fail(ctx, span, logger, "create", err, w)
		return
	}

	activeFormsCounter.Add(ctx, 1)
	span.SetAttributes(attribute.String("form.id", id))

	logger.Info("form opened",
		zap.String("form_id", id),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	h.respond(span, w, http.StatusCreated, id, snap, nil)
}

// Get handles GET /forms/{id}.
func (h *Forms) Get(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger, id := h.begin(r, "get")
	defer span.End()

	_, snap, err := h.store.Do(id, func(*form.Form) {})
	if err != nil {
		h.fail(ctx, span, logger, "get", err, w)
		return
	}

	h.respond(span, w, http.StatusOK, id, snap, nil)
}

// UpdateInputs handles PATCH /forms/{id}/inputs: the display surface's
// keystrokes. It never validates; that happens on calculate.
func (h *Forms) UpdateInputs(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger, id := h.begin(r, "inputs")
	defer span.End()

	var req InputsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "form.inputs", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	_, snap, err := h.store.Do(id, func(f *form.Form) {
		if req.A != nil {
			f.SetInput(form.FieldA, *req.A)
		}
		if req.B != nil {
			f.SetInput(form.FieldB, *req.B)
		}
		if req.C != nil {
			f.SetInput(form.FieldC, *req.C)
		}
	})
	if err != nil {
		h.fail(ctx, span, logger, "inputs", err, w)
		return
	}

	h.respond(span, w, http.StatusOK, id, snap, nil)
}

// Calculate handles POST /forms/{id}/calculate. A rejected calculation is
// still a successful request: the alert is part of the response.
func (h *Forms) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger, id := h.begin(r, "calculate")
	defer span.End()

	alerts, snap, err := h.store.Do(id, func(f *form.Form) {
		start := time.Now()
		out, err := f.Calculate()
		if err != nil {
			recordRejection(ctx, logger, "form.calculate", err)
			return
		}
		elapsed := float64(time.Since(start).Nanoseconds()) / 1e6
		recordOutcome(ctx, logger, "form.calculate", out, elapsed)
	})
	if err != nil {
		h.fail(ctx, span, logger, "calculate", err, w)
		return
	}

	span.SetAttributes(attribute.String("form.state", snap.State))
	handlers.WriteJSON(w, http.StatusOK, FormResponse{ID: id, Snapshot: snap, Alerts: alerts})
}

// Clear handles POST /forms/{id}/clear.
func (h *Forms) Clear(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger, id := h.begin(r, "clear")
	defer span.End()

	_, snap, err := h.store.Do(id, (*form.Form).Clear)
	if err != nil {
		h.fail(ctx, span, logger, "clear", err, w)
		return
	}

	h.respond(span, w, http.StatusOK, id, snap, nil)
}

// Delete handles DELETE /forms/{id}.
func (h *Forms) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger, id := h.begin(r, "delete")
	defer span.End()

	if err := h.store.Delete(id); err != nil {
		h.fail(ctx, span, logger, "delete", err, w)
		return
	}

	activeFormsCounter.Add(ctx, -1)
	span.SetStatus(codes.Ok, "")

	logger.Info("form closed",
		zap.String("form_id", id),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	w.WriteHeader(http.StatusNoContent)
}
