// Package dto provides the journal API request and response shapes, the
// error envelope and request validation.
package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/mindnotes/internal/domain"
	"github.com/jsamuelsen/mindnotes/internal/platform/logging"
)

// ErrorResponse is the body of every non-2xx response.
//
//	{"error":{"code":"NOT_FOUND","message":"quote \"x\" not found"},"traceId":"..."}
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Machine-readable error codes.
const (
	ErrorCodeNotFound      = "NOT_FOUND"
	ErrorCodeConflict      = "CONFLICT"
	ErrorCodeValidation    = "VALIDATION_ERROR"
	ErrorCodeEmpty         = "EMPTY_COLLECTION"
	ErrorCodeUnavailable   = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal      = "INTERNAL_ERROR"
	ErrorCodeTimeout       = "TIMEOUT"
	ErrorCodeBadRequest    = "BAD_REQUEST"
	ErrorCodeRouteNotFound = "ROUTE_NOT_FOUND"
)

var codeStatus = map[string]int{
	ErrorCodeNotFound:      http.StatusNotFound,
	ErrorCodeRouteNotFound: http.StatusNotFound,
	ErrorCodeConflict:      http.StatusConflict,
	ErrorCodeValidation:    http.StatusBadRequest,
	ErrorCodeBadRequest:    http.StatusBadRequest,
	ErrorCodeEmpty:         http.StatusUnprocessableEntity,
	ErrorCodeUnavailable:   http.StatusServiceUnavailable,
	ErrorCodeTimeout:       http.StatusServiceUnavailable,
}

// domainCodes is checked in order; the first kind err matches wins.
var domainCodes = []struct {
	kind error
	code string
}{
	{domain.ErrValidation, ErrorCodeValidation},
	{domain.ErrNotFound, ErrorCodeNotFound},
	{domain.ErrConflict, ErrorCodeConflict},
	{domain.ErrNothingToAnalyze, ErrorCodeEmpty},
	{domain.ErrNoQuotes, ErrorCodeEmpty},
	{domain.ErrUnavailable, ErrorCodeUnavailable},
}

const internalMessage = "an internal error occurred"

// ErrorBody builds an envelope. details may be nil.
func ErrorBody(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Details: details}}
}

// StatusFor returns the HTTP status of an error code. Unknown codes are 500.
func StatusFor(code string) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// ErrorFor translates a journal error into a status and envelope. Errors of
// no known kind become a 500 whose message hides the cause. A nil error
// yields 200 and no body.
func ErrorFor(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	for _, dc := range domainCodes {
		if !errors.Is(err, dc.kind) {
			continue
		}

		body := ErrorBody(dc.code, err.Error(), nil)

		var invalid *domain.ValidationError
		if errors.As(err, &invalid) && invalid.Field != "" {
			body.Error.Details = map[string]string{invalid.Field: invalid.Message}
		}

		return StatusFor(dc.code), body
	}

	return http.StatusInternalServerError, ErrorBody(ErrorCodeInternal, internalMessage, nil)
}

// TraceID identifies the request in error bodies: the active span's trace
// ID when tracing is on, otherwise the request ID.
func TraceID(c *gin.Context) string {
	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	// Set by the request ID middleware.
	if id := c.GetString("request_id"); id != "" {
		return id
	}

	return c.GetHeader("X-Request-ID")
}

// WriteError responds with the envelope for err. 500s are logged with the
// full cause.
func WriteError(c *gin.Context, err error) {
	status, body := ErrorFor(err)
	body.TraceID = TraceID(c)

	if status == http.StatusInternalServerError {
		ctx := c.Request.Context()
		logging.FromContext(ctx).ErrorContext(ctx, "unhandled journal error",
			slog.Any("error", err),
			slog.String(logging.AttrTraceID, body.TraceID),
		)
	}

	c.JSON(status, body)
}

// WriteCode responds with an adapter-level failure, such as a malformed
// path parameter.
func WriteCode(c *gin.Context, code, message string) {
	c.JSON(StatusFor(code), withTrace(c, ErrorBody(code, message, nil)))
}

// AbortCode is WriteCode for middleware: the rest of the chain is skipped.
func AbortCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(StatusFor(code), withTrace(c, ErrorBody(code, message, nil)))
}

func writeFieldErrors(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, withTrace(c, ErrorBody(ErrorCodeValidation, "request validation failed", fields)))
}

func withTrace(c *gin.Context, body *ErrorResponse) *ErrorResponse {
	body.TraceID = TraceID(c)
	return body
}
