package telemetry

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/mindnotes/internal/platform/logging"
)

const instrumentationName = "github.com/jsamuelsen/mindnotes/telemetry"

// HeaderTraceID echoes the trace of a sampled request back to the client.
const HeaderTraceID = "X-Trace-ID"

// Middleware traces each request with otelgin, then records API metrics on
// the global meter. If the instruments cannot be created, the error goes to
// the otel error handler and only tracing stays on.
func Middleware(serviceName string) []gin.HandlerFunc {
	chain := []gin.HandlerFunc{otelgin.Middleware(serviceName), exposeTrace}

	inst, err := newAPIInstruments(otel.Meter(instrumentationName))
	if err != nil {
		otel.Handle(err)
		return chain
	}

	return append(chain, inst.record)
}

// exposeTrace sets X-Trace-ID and adds trace_id to the request logger.
func exposeTrace(c *gin.Context) {
	ctx := c.Request.Context()

	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		id := sc.TraceID().String()
		c.Header(HeaderTraceID, id)
		c.Request = c.Request.WithContext(logging.WithTraceID(ctx, id))
	}

	c.Next()
}

type apiInstruments struct {
	duration metric.Float64Histogram
	served   metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

func newAPIInstruments(meter metric.Meter) (*apiInstruments, error) {
	duration, errDuration := meter.Float64Histogram("journal.api.request.duration",
		metric.WithDescription("Journal API request duration"),
		metric.WithUnit("s"),
	)
	served, errServed := meter.Int64Counter("journal.api.requests",
		metric.WithDescription("Journal API requests served"),
	)
	inFlight, errInFlight := meter.Int64UpDownCounter("journal.api.active_requests",
		metric.WithDescription("Journal API requests in flight"),
	)

	if err := errors.Join(errDuration, errServed, errInFlight); err != nil {
		return nil, err
	}

	return &apiInstruments{duration: duration, served: served, inFlight: inFlight}, nil
}

func (in *apiInstruments) record(c *gin.Context) {
	ctx := c.Request.Context()
	started := time.Now()

	route := []attribute.KeyValue{
		semconv.HTTPRequestMethodKey.String(c.Request.Method),
		semconv.HTTPRoute(c.FullPath()),
	}

	in.inFlight.Add(ctx, 1, metric.WithAttributes(route...))
	defer in.inFlight.Add(ctx, -1, metric.WithAttributes(route...))

	c.Next()

	done := metric.WithAttributes(append(route, semconv.HTTPResponseStatusCode(c.Writer.Status()))...)
	in.duration.Record(ctx, time.Since(started).Seconds(), done)
	in.served.Add(ctx, 1, done)
}
