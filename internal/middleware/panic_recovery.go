package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"finpulse-api/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts handler panics into a 500 with the standard error
// envelope. A panic mid-pipeline must never take the ingestion endpoint down
// with it, so the stack is logged and the connection answered normally.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					respondToPanic(c, r)
				}
			}()
			return next(c)
		}
	}
}

func respondToPanic(c echo.Context, recovered any) {
	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	slog.Error("Panic recovered",
		"trace_id", traceID,
		"panic", fmt.Sprintf("%v", recovered),
		"stack_trace", string(debug.Stack()),
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
	)

	response := errors.NewErrorResponse(errors.SystemInternalError, traceID)
	if err := c.JSON(http.StatusInternalServerError, response); err != nil {
		slog.Error("Failed to write panic response", "trace_id", traceID, "error", err.Error())
	}
}
