package services

import (
	"context"
	"errors"
	"fmt"

	"finpulse-api/internal/dto"
	"finpulse-api/internal/models"
	"finpulse-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidBudgetPayload = errors.New("invalid budget payload")
)

// BudgetService implements BudgetServiceInterface
type BudgetService struct {
	budgetRepo  repositories.BudgetRepositoryInterface
	profileRepo repositories.BudgetProfileRepositoryInterface
}

// NewBudgetService creates a new budget service
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	profileRepo repositories.BudgetProfileRepositoryInterface,
) BudgetServiceInterface {
	return &BudgetService{
		budgetRepo:  budgetRepo,
		profileRepo: profileRepo,
	}
}

// Create creates a per-category budget for a user
func (s *BudgetService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateBudgetRequest) (*models.Budget, error) {
	limit, err := decimal.NewFromString(req.LimitAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: limit amount %q is not a decimal", ErrInvalidBudgetPayload, req.LimitAmount)
	}

	budget := &models.Budget{
		UserID:      userID,
		Category:    req.Category,
		LimitAmount: limit,
		Period:      req.Period,
		IsActive:    true,
	}

	if err := s.budgetRepo.Create(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// List retrieves all budgets for a user
func (s *BudgetService) List(userID uuid.UUID) ([]models.Budget, error) {
	return s.budgetRepo.GetByUserID(userID)
}

// Update adjusts a budget's limit, period or active state
func (s *BudgetService) Update(ctx context.Context, userID, budgetID uuid.UUID, req dto.UpdateBudgetRequest) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByID(budgetID)
	if err != nil {
		return nil, err
	}
	if budget.UserID != userID {
		return nil, repositories.ErrBudgetNotFound
	}

	if req.LimitAmount != "" {
		limit, err := decimal.NewFromString(req.LimitAmount)
		if err != nil {
			return nil, fmt.Errorf("%w: limit amount %q is not a decimal", ErrInvalidBudgetPayload, req.LimitAmount)
		}
		if limit.LessThanOrEqual(decimal.Zero) {
			return nil, models.ErrInvalidBudgetLimit
		}
		budget.LimitAmount = limit
	}
	if req.Period != "" {
		if !models.IsValidBudgetPeriod(req.Period) {
			return nil, models.ErrInvalidBudgetPeriod
		}
		budget.Period = req.Period
	}
	if req.IsActive != nil {
		budget.IsActive = *req.IsActive
	}

	if err := s.budgetRepo.Update(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// Delete removes a budget
func (s *BudgetService) Delete(ctx context.Context, userID, budgetID uuid.UUID) error {
	budget, err := s.budgetRepo.GetByID(budgetID)
	if err != nil {
		return err
	}
	if budget.UserID != userID {
		return repositories.ErrBudgetNotFound
	}
	return s.budgetRepo.Delete(budgetID)
}

// SavingsEstimate derives a monthly savings estimate from the user's
// budget profile
func (s *BudgetService) SavingsEstimate(userID uuid.UUID) (*dto.SavingsEstimateResponse, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	estimated := profile.AvgMonthlySurplus.Mul(decimal.NewFromFloat(profile.SavingsRatio))
	if estimated.IsNegative() {
		estimated = decimal.Zero
	}

	return &dto.SavingsEstimateResponse{
		AvgMonthlySurplus:    profile.AvgMonthlySurplus.StringFixed(2),
		SavingsRatio:         profile.SavingsRatio,
		EstimatedMonthlySave: estimated.StringFixed(2),
		SafeInvestableAmount: profile.SafeInvestableAmount.StringFixed(2),
	}, nil
}
