// Package middleware provides the Gin middleware chain of the journal API.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/mindnotes/internal/platform/logging"
)

const (
	// HeaderRequestID carries the per-request ID.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID carries the ID shared by every request of one
	// client interaction, such as resolving and then deleting a note.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin.Context key of the request ID.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin.Context key of the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// maxIDLength bounds client-supplied IDs before they reach the logs.
const maxIDLength = 128

type idMiddlewareConfig struct {
	header string
	key    string
	enrich func(ctx context.Context, id string) context.Context
}

// RequestID accepts the client's X-Request-ID or generates a UUID v4, echoes
// it in the response and adds it to the request logger.
func RequestID() gin.HandlerFunc {
	return idMiddleware(idMiddlewareConfig{
		header: HeaderRequestID,
		key:    ContextKeyRequestID,
		enrich: logging.WithRequestID,
	})
}

// CorrelationID does the same for X-Correlation-ID.
func CorrelationID() gin.HandlerFunc {
	return idMiddleware(idMiddlewareConfig{
		header: HeaderCorrelationID,
		key:    ContextKeyCorrelationID,
		enrich: logging.WithCorrelationID,
	})
}

// GetRequestID returns the request ID, or "" outside the middleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation ID, or "" outside the middleware.
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}

func idMiddleware(cfg idMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cfg.header)
		if !acceptableID(id) {
			id = uuid.New().String()
		}

		c.Set(cfg.key, id)
		c.Header(cfg.header, id)
		c.Request = c.Request.WithContext(cfg.enrich(c.Request.Context(), id))

		c.Next()
	}
}

// acceptableID reports whether a client-supplied ID is non-empty, short and
// printable ASCII.
func acceptableID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for i := range len(id) {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
