package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_003"
	TransactionIngestFailed  ErrorCode = "TRANSACTION_004"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound      ErrorCode = "BUDGET_001"
	BudgetInvalidLimit  ErrorCode = "BUDGET_002"
	BudgetDuplicate     ErrorCode = "BUDGET_003"
	BudgetInvalidPeriod ErrorCode = "BUDGET_004"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound      ErrorCode = "GOAL_001"
	GoalInvalidTarget ErrorCode = "GOAL_002"
	GoalPastDeadline  ErrorCode = "GOAL_003"
)

// Alert error codes (ALERT_*)
const (
	AlertNotFound        ErrorCode = "ALERT_001"
	AlertAlreadyResolved ErrorCode = "ALERT_002"
	AlertInvalidStatus   ErrorCode = "ALERT_003"
)

// Profile error codes (PROFILE_*)
const (
	ProfileNotFound   ErrorCode = "PROFILE_001"
	ProfileIncomplete ErrorCode = "PROFILE_002"
	ProfileNoHistory  ErrorCode = "PROFILE_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Transaction amount must be positive",
	TransactionInvalidType:   "Transaction type must be credit or debit",
	TransactionIngestFailed:  "Transaction could not be ingested, please retry",

	// Budget errors
	BudgetNotFound:      "Budget not found",
	BudgetInvalidLimit:  "Budget limit must be positive",
	BudgetDuplicate:     "An active budget for this category already exists",
	BudgetInvalidPeriod: "Budget period must be weekly, monthly or yearly",

	// Goal errors
	GoalNotFound:      "Goal not found",
	GoalInvalidTarget: "Goal target amount must be positive",
	GoalPastDeadline:  "Goal deadline must be in the future",

	// Alert errors
	AlertNotFound:        "Alert not found",
	AlertAlreadyResolved: "Alert has already been resolved",
	AlertInvalidStatus:   "Alert status must be active or resolved",

	// Profile errors
	ProfileNotFound:   "Budget profile not found",
	ProfileIncomplete: "Budget profile is incomplete, recompute it first",
	ProfileNoHistory:  "Not enough transaction history to build a profile",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
