package handlers

import (
	"finpulse-api/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new custom validator with the domain rules
// registered
func NewValidator() echo.Validator {
	v := validator.New()

	// Registration only fails for an empty tag name, so errors are ignored.
	_ = v.RegisterValidation("txn_type", func(fl validator.FieldLevel) bool {
		return models.IsValidTransactionType(fl.Field().String())
	})
	_ = v.RegisterValidation("budget_period", func(fl validator.FieldLevel) bool {
		return models.IsValidBudgetPeriod(fl.Field().String())
	})
	_ = v.RegisterValidation("alert_status", func(fl validator.FieldLevel) bool {
		return models.IsValidAlertStatus(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
