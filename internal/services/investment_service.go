package services

import (
	"errors"
	"fmt"

	"finpulse-api/internal/dto"
	"finpulse-api/internal/models"
	"finpulse-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	GateEmergencyFund   = "emergency_fund"
	GatePositiveSurplus = "positive_surplus"
	GateLowVolatility   = "low_volatility"
	GateNoHighAlerts    = "no_high_risk_alerts"
)

// InvestmentService implements InvestmentServiceInterface. Readiness is a
// strict AND over four gates; there is no partial credit or weighting, so
// every verdict is auditable from the gate list alone.
type InvestmentService struct {
	profileRepo         repositories.BudgetProfileRepositoryInterface
	alertService        AlertServiceInterface
	metrics             MetricsRecorderInterface
	emergencyFundMonths int
	volatilityCeiling   float64
}

// NewInvestmentService creates a new investment readiness service
func NewInvestmentService(
	profileRepo repositories.BudgetProfileRepositoryInterface,
	alertService AlertServiceInterface,
	metrics MetricsRecorderInterface,
	emergencyFundMonths int,
	volatilityCeiling float64,
) InvestmentServiceInterface {
	return &InvestmentService{
		profileRepo:         profileRepo,
		alertService:        alertService,
		metrics:             metrics,
		emergencyFundMonths: emergencyFundMonths,
		volatilityCeiling:   volatilityCeiling,
	}
}

// Readiness evaluates the four hard gates against the user's profile and
// active alerts. A missing profile yields ready=false with every gate
// failed rather than an error.
func (s *InvestmentService) Readiness(userID uuid.UUID) (*dto.InvestmentReadinessResponse, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return s.notReady("budget profile not computed yet"), nil
		}
		return nil, err
	}

	highAlerts, err := s.alertService.CountActiveHigh(userID)
	if err != nil {
		return nil, err
	}

	gates := s.evaluateGates(profile, highAlerts)

	ready := true
	for _, gate := range gates {
		if !gate.Passed {
			ready = false
			break
		}
	}

	safeAmount := decimal.Zero
	if ready {
		safeAmount = profile.SafeInvestableAmount
	}

	verdict := "not_ready"
	if ready {
		verdict = "ready"
	}
	s.metrics.IncrementCounter("readiness.checked", map[string]string{
		"verdict": verdict,
	})

	return &dto.InvestmentReadinessResponse{
		Ready:      ready,
		Gates:      gates,
		SafeAmount: safeAmount.StringFixed(2),
	}, nil
}

// Recommendations returns the readiness verdict with a conservative asset
// split of the safe investable amount when every gate passes
func (s *InvestmentService) Recommendations(userID uuid.UUID) (*dto.InvestmentReadinessResponse, error) {
	result, err := s.Readiness(userID)
	if err != nil {
		return nil, err
	}
	if !result.Ready {
		return result, nil
	}

	safeAmount, err := decimal.NewFromString(result.SafeAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse safe amount: %w", err)
	}

	splits := []struct {
		class   string
		percent float64
	}{
		{"index_funds", 50},
		{"debt_funds", 30},
		{"gold", 10},
		{"cash_buffer", 10},
	}

	allocations := make([]dto.AssetAllocation, 0, len(splits))
	for _, split := range splits {
		amount := safeAmount.Mul(decimal.NewFromFloat(split.percent / 100))
		allocations = append(allocations, dto.AssetAllocation{
			AssetClass: split.class,
			Percent:    split.percent,
			Amount:     amount.StringFixed(2),
		})
	}
	result.Recommendations = allocations

	return result, nil
}

// evaluateGates runs the four gate checks. The emergency fund gate is the
// literal rate comparison (surplus >= baseline * months / 12); the months
// factor is configurable so the rule can be corrected in one place.
func (s *InvestmentService) evaluateGates(profile *models.BudgetProfile, highAlerts int64) []dto.GateResult {
	months := decimal.NewFromInt(int64(s.emergencyFundMonths))
	emergencyLine := profile.BaselineExpense.Mul(months).Div(decimal.NewFromInt(12))
	emergencyPass := profile.AvgMonthlySurplus.GreaterThanOrEqual(emergencyLine)

	surplusPass := profile.AvgMonthlySurplus.GreaterThan(decimal.Zero)

	volatilityLine := profile.BaselineExpense.Mul(decimal.NewFromFloat(s.volatilityCeiling))
	volatilityPass := profile.ExpenseVolatility.LessThan(volatilityLine)

	alertsPass := highAlerts == 0

	gates := []dto.GateResult{
		{Name: GateEmergencyFund, Passed: emergencyPass},
		{Name: GatePositiveSurplus, Passed: surplusPass},
		{Name: GateLowVolatility, Passed: volatilityPass},
		{Name: GateNoHighAlerts, Passed: alertsPass},
	}

	if !emergencyPass {
		gates[0].Reason = fmt.Sprintf("monthly surplus %s below emergency fund line %s",
			profile.AvgMonthlySurplus.StringFixed(2), emergencyLine.StringFixed(2))
	}
	if !surplusPass {
		gates[1].Reason = "average monthly surplus is not positive"
	}
	if !volatilityPass {
		gates[2].Reason = fmt.Sprintf("expense volatility %s exceeds %.0f%% of baseline",
			profile.ExpenseVolatility.StringFixed(2), s.volatilityCeiling*100)
	}
	if !alertsPass {
		gates[3].Reason = fmt.Sprintf("%d active high severity alerts", highAlerts)
	}

	return gates
}

func (s *InvestmentService) notReady(reason string) *dto.InvestmentReadinessResponse {
	return &dto.InvestmentReadinessResponse{
		Ready: false,
		Gates: []dto.GateResult{
			{Name: GateEmergencyFund, Passed: false, Reason: reason},
			{Name: GatePositiveSurplus, Passed: false, Reason: reason},
			{Name: GateLowVolatility, Passed: false, Reason: reason},
			{Name: GateNoHighAlerts, Passed: false, Reason: reason},
		},
		SafeAmount: "0.00",
	}
}
