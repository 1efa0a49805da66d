package repositories

import (
	"time"

	"finpulse-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=repository_mocks/mocks.go -package=repository_mocks

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)
	GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Transaction, error)
	UpdateCategory(id uuid.UUID, category string) error
	MarkAnomalous(id uuid.UUID, score float64) error
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByID(id uuid.UUID) (*models.Budget, error)
	GetByUserID(userID uuid.UUID) ([]models.Budget, error)
	GetActiveByUserAndCategory(userID uuid.UUID, category string) (*models.Budget, error)
	Update(budget *models.Budget) error
	Delete(id uuid.UUID) error
	IncrementSpent(budgetID uuid.UUID, amount decimal.Decimal) (*models.Budget, error)
}

// GoalRepositoryInterface defines the contract for goal repository operations
type GoalRepositoryInterface interface {
	Create(goal *models.Goal) error
	GetByID(id uuid.UUID) (*models.Goal, error)
	GetByUserID(userID uuid.UUID) ([]models.Goal, error)
	Update(goal *models.Goal) error
	Delete(id uuid.UUID) error
}

// AlertRepositoryInterface defines the contract for alert repository operations
type AlertRepositoryInterface interface {
	Create(alert *models.Alert) error
	GetByID(id uuid.UUID) (*models.Alert, error)
	GetByUserID(userID uuid.UUID, status, alertType string) ([]models.Alert, error)
	HasActiveBudgetWarning(userID uuid.UUID, category string) (bool, error)
	Update(alert *models.Alert) error
	CountActiveBySeverity(userID uuid.UUID) (map[string]int64, error)
}

// BudgetProfileRepositoryInterface defines the contract for profile repository operations
type BudgetProfileRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) (*models.BudgetProfile, error)
	Upsert(profile *models.BudgetProfile) error
}

// CategoryFeedbackRepositoryInterface defines the contract for feedback repository operations
type CategoryFeedbackRepositoryInterface interface {
	Create(feedback *models.CategoryFeedback) error
	GetByUserID(userID uuid.UUID, limit int) ([]models.CategoryFeedback, error)
}
