package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"finpulse-api/internal/models"
	"finpulse-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetTracker implements BudgetTrackerInterface. Spend increments go
// through the repository's row-locked IncrementSpent; on top of that a
// per-budget mutex serializes the crossing detection and de-dup check so
// two concurrent debits cannot both raise an alert for the same crossing.
type BudgetTracker struct {
	budgetRepo   repositories.BudgetRepositoryInterface
	alertRepo    repositories.AlertRepositoryInterface
	alertService AlertServiceInterface
	pipelineLog  PipelineLoggerInterface
	metrics      MetricsRecorderInterface
	warnRatio    decimal.Decimal

	budgetLocks sync.Map // budget ID -> *sync.Mutex
}

// NewBudgetTracker creates a new budget tracker. warnRatio is the fraction
// of the limit at which a medium warning is raised, typically 0.8.
func NewBudgetTracker(
	budgetRepo repositories.BudgetRepositoryInterface,
	alertRepo repositories.AlertRepositoryInterface,
	alertService AlertServiceInterface,
	pipelineLog PipelineLoggerInterface,
	metrics MetricsRecorderInterface,
	warnRatio float64,
) BudgetTrackerInterface {
	return &BudgetTracker{
		budgetRepo:   budgetRepo,
		alertRepo:    alertRepo,
		alertService: alertService,
		pipelineLog:  pipelineLog,
		metrics:      metrics,
		warnRatio:    decimal.NewFromFloat(warnRatio),
	}
}

// ApplyDebit adds a debit amount to the matching active budget and raises
// a threshold alert when the cumulative spend crosses the warning or limit
// line from below. Debits outside any defined budget are not tracked.
func (t *BudgetTracker) ApplyDebit(ctx context.Context, userID uuid.UUID, category string, amount decimal.Decimal) (*models.Alert, error) {
	budget, err := t.budgetRepo.GetActiveByUserAndCategory(userID, category)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, nil
		}
		return nil, err
	}

	lock := t.lockFor(budget.ID)
	lock.Lock()
	defer lock.Unlock()

	updated, err := t.budgetRepo.IncrementSpent(budget.ID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to increment budget spend: %w", err)
	}
	t.metrics.IncrementCounter("budget.incremented", nil)

	newSpent := updated.SpentAmount
	oldSpent := newSpent.Sub(amount)
	limit := updated.LimitAmount
	warnLine := limit.Mul(t.warnRatio)

	var severity string
	switch {
	case oldSpent.LessThanOrEqual(limit) && newSpent.GreaterThan(limit):
		severity = models.AlertSeverityHigh
	case oldSpent.LessThanOrEqual(warnLine) && newSpent.GreaterThan(warnLine):
		severity = models.AlertSeverityMedium
	default:
		return nil, nil
	}

	// Suppress while a budget warning for this category is still active
	exists, err := t.alertRepo.HasActiveBudgetWarning(userID, category)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}

	t.pipelineLog.LogBudgetThresholdCrossed(ctx, updated.ID, category, updated.UtilizationRatio(), severity)

	alert := &models.Alert{
		UserID:    userID,
		AlertType: models.AlertTypeBudgetWarning,
		Severity:  severity,
		Category:  category,
		Message:   budgetMessage(updated, severity),
	}

	raised, err := t.alertService.Raise(ctx, alert)
	if err != nil {
		return nil, fmt.Errorf("failed to raise budget alert: %w", err)
	}

	return raised, nil
}

func (t *BudgetTracker) lockFor(budgetID uuid.UUID) *sync.Mutex {
	lock, _ := t.budgetLocks.LoadOrStore(budgetID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func budgetMessage(budget *models.Budget, severity string) string {
	if severity == models.AlertSeverityHigh {
		return fmt.Sprintf("Budget for %s exceeded: spent %s of %s",
			budget.Category, budget.SpentAmount.StringFixed(2), budget.LimitAmount.StringFixed(2))
	}
	return fmt.Sprintf("Budget for %s at %.0f%%: spent %s of %s",
		budget.Category, budget.UtilizationRatio()*100,
		budget.SpentAmount.StringFixed(2), budget.LimitAmount.StringFixed(2))
}
