package telemetry

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Command outcomes reported on journal_commands_total.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var (
	commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mindnotes",
		Name:      "journal_commands_total",
		Help:      "Journal commands executed, by command and outcome.",
	}, []string{"command", "outcome"})

	commandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mindnotes",
		Name:      "journal_command_duration_seconds",
		Help:      "Journal command latency, including document writes.",
		Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
	}, []string{"command"})
)

// RecordCommand counts one finished command and observes its duration.
func RecordCommand(command, outcome string, elapsed time.Duration) {
	commandsTotal.WithLabelValues(command, outcome).Inc()
	commandDuration.WithLabelValues(command).Observe(elapsed.Seconds())
}

// StartCommandSpan opens a span for a journal command. The returned finish
// function records err on the span and ends it.
func StartCommandSpan(ctx context.Context, command string) (context.Context, func(err error)) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "journal."+command,
		trace.WithAttributes(attribute.String("journal.command", command)),
	)

	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		span.End()
	}
}
