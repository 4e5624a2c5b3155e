package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/mindnotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/mindnotes/internal/adapters/http/handlers"
	"github.com/jsamuelsen/mindnotes/internal/adapters/http/middleware"
	"github.com/jsamuelsen/mindnotes/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is used when a request context carries no logger.
	Logger *slog.Logger

	// ServiceName names the otelgin server spans.
	ServiceName string

	// Timeout bounds each /api/v1 request. Zero disables it.
	Timeout time.Duration

	HealthHandler     *handlers.HealthHandler
	NoteHandler       *handlers.NoteHandler
	QuoteHandler      *handlers.QuoteHandler
	StatisticsHandler *handlers.StatisticsHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID and correlation ID
//  3. OpenTelemetry - tracing and request metrics
//  4. Logging - request logging (skips /-/)
//  5. Timeout - /api/v1 only
//
// Route groups:
//   - /-/: liveness, readiness, build info, Prometheus metrics
//   - /api/v1/: notes, quotes, statistics
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging(cfg.Logger))

	engine.NoRoute(func(c *gin.Context) {
		dto.AbortCode(c, dto.ErrorCodeRouteNotFound, "no route for "+c.Request.Method+" "+c.Request.URL.Path)
	})

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		apiV1.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.NoteHandler != nil {
		cfg.NoteHandler.RegisterNoteRoutes(apiV1)
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(apiV1)
	}

	if cfg.StatisticsHandler != nil {
		cfg.StatisticsHandler.RegisterStatisticsRoutes(apiV1)
	}
}
