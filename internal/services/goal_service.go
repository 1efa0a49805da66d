package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finpulse-api/internal/dto"
	"finpulse-api/internal/models"
	"finpulse-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidGoalPayload = errors.New("invalid goal payload")
	ErrPastDeadline       = errors.New("goal deadline must be in the future")
)

const daysPerMonth = 30

// GoalService implements GoalServiceInterface
type GoalService struct {
	goalRepo    repositories.GoalRepositoryInterface
	profileRepo repositories.BudgetProfileRepositoryInterface
	now         func() time.Time
}

// NewGoalService creates a new goal service
func NewGoalService(
	goalRepo repositories.GoalRepositoryInterface,
	profileRepo repositories.BudgetProfileRepositoryInterface,
) GoalServiceInterface {
	return &GoalService{
		goalRepo:    goalRepo,
		profileRepo: profileRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create creates a savings goal
func (s *GoalService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateGoalRequest) (*models.Goal, error) {
	target, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: target amount %q is not a decimal", ErrInvalidGoalPayload, req.TargetAmount)
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		// Date-only deadlines are accepted too
		deadline, err = time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			return nil, fmt.Errorf("%w: deadline must be RFC3339 or YYYY-MM-DD", ErrInvalidGoalPayload)
		}
	}
	if !deadline.After(s.now()) {
		return nil, ErrPastDeadline
	}

	goal := &models.Goal{
		UserID:       userID,
		GoalName:     req.GoalName,
		TargetAmount: target,
		Deadline:     deadline.UTC(),
	}

	if err := s.goalRepo.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// List retrieves all goals for a user
func (s *GoalService) List(userID uuid.UUID) ([]models.Goal, error) {
	return s.goalRepo.GetByUserID(userID)
}

// Contribute records progress toward a goal and flips its status to
// completed once the target is reached
func (s *GoalService) Contribute(ctx context.Context, userID, goalID uuid.UUID, amount decimal.Decimal) (*models.Goal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: contribution must be positive", ErrInvalidGoalPayload)
	}

	goal, err := s.goalRepo.GetByID(goalID)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, repositories.ErrGoalNotFound
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(amount)
	if goal.IsReached() {
		goal.Status = models.GoalStatusCompleted
	}

	if err := s.goalRepo.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Delete removes a goal
func (s *GoalService) Delete(ctx context.Context, userID, goalID uuid.UUID) error {
	goal, err := s.goalRepo.GetByID(goalID)
	if err != nil {
		return err
	}
	if goal.UserID != userID {
		return repositories.ErrGoalNotFound
	}
	return s.goalRepo.Delete(goalID)
}

// Insights computes per-goal feasibility from the user's budget profile.
// Without a profile the result is marked incomplete and carries no
// insights rather than failing.
func (s *GoalService) Insights(ctx context.Context, userID uuid.UUID) (*dto.GoalInsightsResponse, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return &dto.GoalInsightsResponse{
				ProfileComplete: false,
				Insights:        []dto.GoalInsight{},
			}, nil
		}
		return nil, err
	}

	goals, err := s.goalRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	insights := make([]dto.GoalInsight, 0, len(goals))
	for i := range goals {
		goal := &goals[i]
		if goal.Status != models.GoalStatusActive {
			continue
		}

		insight := s.computeInsight(goal, profile, now)
		insights = append(insights, insight)

		// Persist the recomputed feasibility so list reads reflect it
		if err := s.goalRepo.Update(goal); err != nil {
			return nil, err
		}
	}

	return &dto.GoalInsightsResponse{
		ProfileComplete: true,
		Insights:        insights,
	}, nil
}

// computeInsight evaluates one goal against the profile. Past-deadline
// goals are flagged overdue instead of dividing by a non-positive
// duration.
func (s *GoalService) computeInsight(goal *models.Goal, profile *models.BudgetProfile, now time.Time) dto.GoalInsight {
	remaining := goal.Remaining()
	daysLeft := goal.DaysLeft(now)

	insight := dto.GoalInsight{
		GoalID:          goal.ID.String(),
		GoalName:        goal.GoalName,
		Remaining:       remaining.StringFixed(2),
		DaysLeft:        daysLeft,
		ProgressPercent: goal.ProgressPercent(),
	}

	if daysLeft <= 0 {
		insight.Overdue = true
		insight.OnTrack = false
		zero := 0.0
		goal.FeasibilityScore = &zero
		return insight
	}

	monthsLeft := decimal.NewFromInt(int64(daysLeft)).Div(decimal.NewFromInt(daysPerMonth))
	monthlyRequired := remaining.Div(monthsLeft)

	insight.MonthlyRequired = monthlyRequired.StringFixed(2)
	insight.OnTrack = monthlyRequired.LessThanOrEqual(profile.SafeInvestableAmount)

	score := feasibilityScore(monthlyRequired, profile.SafeInvestableAmount)
	goal.FeasibilityScore = &score

	return insight
}

// feasibilityScore is safe investable amount over monthly required,
// clamped to [0, 1]. A goal needing nothing further scores 1.
func feasibilityScore(monthlyRequired, safeInvestable decimal.Decimal) float64 {
	if monthlyRequired.LessThanOrEqual(decimal.Zero) {
		return 1
	}
	if safeInvestable.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	score, _ := safeInvestable.Div(monthlyRequired).Float64()
	if score > 1 {
		return 1
	}
	return score
}
