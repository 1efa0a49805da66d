package database

import (
	"testing"
	"time"

	"finpulse-api/internal/config"
	"finpulse-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		t.Logf("failed to close test database: %v", err)
	}
}

func CreateTestTransaction(t *testing.T, db *DB, userID uuid.UUID, amount string, txnType string) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		UserID:          userID,
		Amount:          decimal.RequireFromString(amount),
		TransactionType: txnType,
		RawDescription:  "SWIGGY ORDER 99812 UPI",
		Category:        "Food & Dining",
		CatMethod:       models.CatMethodModel,
		ConfidenceScore: 0.92,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CreateTestBudget(t *testing.T, db *DB, userID uuid.UUID, category, limit, spent string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:      userID,
		Category:    category,
		LimitAmount: decimal.RequireFromString(limit),
		SpentAmount: decimal.RequireFromString(spent),
		Period:      models.BudgetPeriodMonthly,
		IsActive:    true,
	}

	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}

	return budget
}

func CreateTestGoal(t *testing.T, db *DB, userID uuid.UUID, target, current string, deadline time.Time) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:        userID,
		GoalName:      "Emergency Fund",
		TargetAmount:  decimal.RequireFromString(target),
		CurrentAmount: decimal.RequireFromString(current),
		Deadline:      deadline,
		Status:        models.GoalStatusActive,
	}

	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}

	return goal
}

func CreateTestProfile(t *testing.T, db *DB, userID uuid.UUID, surplus, baseline, volatility, investable string) *models.BudgetProfile {
	t.Helper()

	profile := &models.BudgetProfile{
		UserID:               userID,
		NeedsRatio:           0.5,
		WantsRatio:           0.3,
		SavingsRatio:         0.2,
		BaselineExpense:      decimal.RequireFromString(baseline),
		ExpenseVolatility:    decimal.RequireFromString(volatility),
		AvgMonthlySurplus:    decimal.RequireFromString(surplus),
		SafeInvestableAmount: decimal.RequireFromString(investable),
		ComputedAt:           time.Now().UTC(),
	}

	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}

	return profile
}
