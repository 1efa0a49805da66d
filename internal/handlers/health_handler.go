package handlers

import (
	"net/http"
	"time"

	"finpulse-api/internal/errors"
	"finpulse-api/internal/oracle"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db           *gorm.DB
	oracleClient oracle.ClientInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB, oracleClient oracle.ClientInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, oracleClient: oracleClient}
}

// HealthCheck reports API, database and oracle circuit breaker status
//
// Method: GET /health
// Authentication: None
//
// Success Response: 200 OK with status, time and oracle breaker state.
// The service stays healthy while the breaker is open because ingestion
// degrades to fallback categorization instead of failing.
//
// Error Responses:
//   - 503: Database connection failed
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			getTraceID(c),
			errors.WithDetails("Database connection failed"),
		))
	}

	if err := sqlDB.Ping(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			getTraceID(c),
			errors.WithDetails("Database connection failed"),
		))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":         "healthy",
		"oracle_breaker": h.oracleClient.BreakerState().String(),
		"time":           time.Now().UTC().Format(time.RFC3339),
	})
}
