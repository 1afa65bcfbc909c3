package equation

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric instruments. They are no-ops until InitMetrics runs.
var (
	solveCounter       metric.Int64Counter       = noop.Int64Counter{}
	solveHistogram     metric.Float64Histogram   = noop.Float64Histogram{}
	rejectionCounter   metric.Int64Counter       = noop.Int64Counter{}
	errorCounter       metric.Int64Counter       = noop.Int64Counter{}
	discriminantGauge  metric.Float64Gauge       = noop.Float64Gauge{}
	activeFormsCounter metric.Int64UpDownCounter = noop.Int64UpDownCounter{}
)

// InitMetrics registers the equation domain's OTel instruments.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("equation")

	var err error

	solveCounter, err = meter.Int64Counter("equation.solves.total",
		metric.WithDescription("Equations solved, by outcome"),
		metric.WithUnit("{equation}"),
	)
	if err != nil {
		return fmt.Errorf("creating solve counter: %w", err)
	}

	solveHistogram, err = meter.Float64Histogram("equation.solve.duration",
		metric.WithDescription("Duration of validate and solve in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1),
	)
	if err != nil {
		return fmt.Errorf("creating solve histogram: %w", err)
	}

	rejectionCounter, err = meter.Int64Counter("equation.validation_errors.total",
		metric.WithDescription("Coefficient inputs rejected by validation, by kind"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating rejection counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("equation.errors.total",
		metric.WithDescription("Failed equation API requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	discriminantGauge, err = meter.Float64Gauge("equation.last_discriminant",
		metric.WithDescription("Discriminant of the last solved equation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating discriminant gauge: %w", err)
	}

	activeFormsCounter, err = meter.Int64UpDownCounter("equation.forms.active",
		metric.WithDescription("Open form sessions"),
		metric.WithUnit("{form}"),
	)
	if err != nil {
		return fmt.Errorf("creating active forms counter: %w", err)
	}

	return nil
}
