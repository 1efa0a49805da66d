package dto

import (
	"time"

	"finpulse-api/internal/models"
)

// CreateGoalRequest is the payload for creating a savings goal
type CreateGoalRequest struct {
	GoalName     string `json:"goal_name" validate:"required,min=1,max=100"`
	TargetAmount string `json:"target_amount" validate:"required"`
	Deadline     string `json:"deadline" validate:"required"`
}

// ContributeGoalRequest is the payload for recording progress toward a goal
type ContributeGoalRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// GoalResponse is the goal as returned by the API, with feasibility
// recomputed from the caller's current budget profile.
type GoalResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	GoalName         string    `json:"goal_name"`
	TargetAmount     string    `json:"target_amount"`
	CurrentAmount    string    `json:"current_amount"`
	Remaining        string    `json:"remaining"`
	ProgressPercent  float64   `json:"progress_percent"`
	Deadline         time.Time `json:"deadline"`
	Status           string    `json:"status"`
	FeasibilityScore *float64  `json:"feasibility_score,omitempty"`
	MonthlyRequired  string    `json:"monthly_required,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// GoalInsight is the feasibility verdict for a single active goal
type GoalInsight struct {
	GoalID          string  `json:"goal_id"`
	GoalName        string  `json:"goal_name"`
	Remaining       string  `json:"remaining"`
	DaysLeft        int     `json:"days_left"`
	MonthlyRequired string  `json:"monthly_required,omitempty"`
	ProgressPercent float64 `json:"progress_percent"`
	OnTrack         bool    `json:"on_track"`
	Overdue         bool    `json:"overdue"`
}

// GoalInsightsResponse wraps the per-goal insights. ProfileComplete is false
// when the user has no budget profile yet, in which case Insights is empty.
type GoalInsightsResponse struct {
	ProfileComplete bool          `json:"profile_complete"`
	Insights        []GoalInsight `json:"insights"`
}

// ListGoalsResponse is the goal collection for a user
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse maps a goal model to its API representation
func ToGoalResponse(g *models.Goal) GoalResponse {
	return GoalResponse{
		ID:               g.ID.String(),
		UserID:           g.UserID.String(),
		GoalName:         g.GoalName,
		TargetAmount:     g.TargetAmount.StringFixed(2),
		CurrentAmount:    g.CurrentAmount.StringFixed(2),
		Remaining:        g.Remaining().StringFixed(2),
		ProgressPercent:  g.ProgressPercent(),
		Deadline:         g.Deadline,
		Status:           g.Status,
		FeasibilityScore: g.FeasibilityScore,
		CreatedAt:        g.CreatedAt,
	}
}
