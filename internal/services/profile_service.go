package services

import (
	"context"
	"errors"
	"math"
	"time"

	"finpulse-api/internal/models"
	"finpulse-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoTransactionHistory = errors.New("no transaction history to build profile from")
)

// profileLookbackMonths is how far back the builder reads transaction
// history when recomputing a profile.
const profileLookbackMonths = 6

// needsCategories marks spend that counts as essential when deriving the
// needs/wants split. Everything else on the debit side is a want.
var needsCategories = map[string]bool{
	"Groceries":      true,
	"Rent & Housing": true,
	"Utilities":      true,
	"Healthcare":     true,
	"Insurance":      true,
	"Transport":      true,
	"Education":      true,
	"EMI & Loans":    true,
}

// ProfileService implements ProfileServiceInterface. The profile is a pure
// derivation of transaction history; rebuilding overwrites the previous
// snapshot.
type ProfileService struct {
	txnRepo     repositories.TransactionRepositoryInterface
	profileRepo repositories.BudgetProfileRepositoryInterface
	pipelineLog PipelineLoggerInterface
	metrics     MetricsRecorderInterface
	now         func() time.Time
}

// NewProfileService creates a new profile service
func NewProfileService(
	txnRepo repositories.TransactionRepositoryInterface,
	profileRepo repositories.BudgetProfileRepositoryInterface,
	pipelineLog PipelineLoggerInterface,
	metrics MetricsRecorderInterface,
) ProfileServiceInterface {
	return &ProfileService{
		txnRepo:     txnRepo,
		profileRepo: profileRepo,
		pipelineLog: pipelineLog,
		metrics:     metrics,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Get retrieves the stored profile for a user
func (s *ProfileService) Get(userID uuid.UUID) (*models.BudgetProfile, error) {
	return s.profileRepo.GetByUserID(userID)
}

// Rebuild recomputes the profile from the user's recent transaction
// history and stores the new snapshot
func (s *ProfileService) Rebuild(ctx context.Context, userID uuid.UUID) (*models.BudgetProfile, error) {
	end := s.now()
	start := end.AddDate(0, -profileLookbackMonths, 0)

	transactions, err := s.txnRepo.GetByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		s.metrics.IncrementCounter("profile.rebuilt", map[string]string{
			"status": "no_history",
		})
		return nil, ErrNoTransactionHistory
	}

	profile := s.derive(userID, transactions, end)

	if err := s.profileRepo.Upsert(profile); err != nil {
		s.metrics.IncrementCounter("profile.rebuilt", map[string]string{
			"status": "failed",
		})
		return nil, err
	}

	s.metrics.IncrementCounter("profile.rebuilt", map[string]string{
		"status": "success",
	})
	s.pipelineLog.LogProfileRebuilt(ctx, userID, profileLookbackMonths)

	return profile, nil
}

type monthlyTotals struct {
	income decimal.Decimal
	spend  decimal.Decimal
	needs  decimal.Decimal
}

// derive reduces the transaction history to the profile figures: monthly
// baseline expense, volatility of that expense, average surplus and the
// safe investable slice of it.
func (s *ProfileService) derive(userID uuid.UUID, transactions []models.Transaction, computedAt time.Time) *models.BudgetProfile {
	months := make(map[string]*monthlyTotals)

	for i := range transactions {
		txn := &transactions[i]
		key := txn.TxnTimestamp.Format("2006-01")
		totals, ok := months[key]
		if !ok {
			totals = &monthlyTotals{
				income: decimal.Zero,
				spend:  decimal.Zero,
				needs:  decimal.Zero,
			}
			months[key] = totals
		}

		if txn.IsDebit() {
			totals.spend = totals.spend.Add(txn.Amount)
			if needsCategories[txn.Category] {
				totals.needs = totals.needs.Add(txn.Amount)
			}
		} else {
			totals.income = totals.income.Add(txn.Amount)
		}
	}

	n := decimal.NewFromInt(int64(len(months)))
	totalIncome := decimal.Zero
	totalSpend := decimal.Zero
	totalNeeds := decimal.Zero
	spendSamples := make([]decimal.Decimal, 0, len(months))

	for _, totals := range months {
		totalIncome = totalIncome.Add(totals.income)
		totalSpend = totalSpend.Add(totals.spend)
		totalNeeds = totalNeeds.Add(totals.needs)
		spendSamples = append(spendSamples, totals.spend)
	}

	baseline := totalSpend.Div(n)
	surplus := totalIncome.Sub(totalSpend).Div(n)
	volatility := stddev(spendSamples, baseline)

	needsRatio, wantsRatio, savingsRatio := splitRatios(totalIncome, totalSpend, totalNeeds)

	// Half the surplus is considered safe to invest; the other half stays
	// liquid as a buffer against volatile months.
	safeInvestable := surplus.Div(decimal.NewFromInt(2))
	if safeInvestable.IsNegative() {
		safeInvestable = decimal.Zero
	}

	return &models.BudgetProfile{
		UserID:               userID,
		NeedsRatio:           needsRatio,
		WantsRatio:           wantsRatio,
		SavingsRatio:         savingsRatio,
		BaselineExpense:      baseline.Round(2),
		ExpenseVolatility:    volatility.Round(2),
		AvgMonthlySurplus:    surplus.Round(2),
		SafeInvestableAmount: safeInvestable.Round(2),
		ComputedAt:           computedAt,
	}
}

// splitRatios derives the needs/wants/savings split of income. With zero
// or negative income everything is attributed to needs.
func splitRatios(income, spend, needs decimal.Decimal) (needsRatio, wantsRatio, savingsRatio float64) {
	if income.LessThanOrEqual(decimal.Zero) {
		return 1, 0, 0
	}

	needsRatio, _ = needs.Div(income).Float64()
	wants := spend.Sub(needs)
	wantsRatio, _ = wants.Div(income).Float64()
	savingsRatio = 1 - needsRatio - wantsRatio

	needsRatio = clampRatio(needsRatio)
	wantsRatio = clampRatio(wantsRatio)
	savingsRatio = clampRatio(savingsRatio)
	return needsRatio, wantsRatio, savingsRatio
}

func clampRatio(ratio float64) float64 {
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

func stddev(samples []decimal.Decimal, mean decimal.Decimal) decimal.Decimal {
	if len(samples) < 2 {
		return decimal.Zero
	}

	meanFloat, _ := mean.Float64()
	var sumSquares float64
	for _, sample := range samples {
		value, _ := sample.Float64()
		diff := value - meanFloat
		sumSquares += diff * diff
	}

	return decimal.NewFromFloat(math.Sqrt(sumSquares / float64(len(samples))))
}
