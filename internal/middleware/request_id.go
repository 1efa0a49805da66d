package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID on requests and responses.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the echo context key the trace ID is stored under.
	TraceIDContextKey = "trace_id"

	// Upstream gateways occasionally forward very long correlation IDs.
	// Anything over this length is replaced rather than propagated.
	maxTraceIDLength = 64
)

// RequestID propagates the caller's trace ID or mints a fresh UUID, making it
// available to handlers via the context and echoing it back in the response
// header so clients can quote it in support requests.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" || len(traceID) > maxTraceIDLength {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the trace ID for the current request, or "" when the
// RequestID middleware did not run.
func GetTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}
