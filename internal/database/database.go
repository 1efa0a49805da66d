package database

import (
	"fmt"
	"log"
	"time"

	"finpulse-api/internal/config"
	"finpulse-api/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Transaction{},
		&models.Budget{},
		&models.Goal{},
		&models.Alert{},
		&models.BudgetProfile{},
		&models.CategoryFeedback{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		// Transaction indexes
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_txn_timestamp ON transactions(txn_timestamp)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_anomalous ON transactions(user_id, is_anomalous) WHERE is_anomalous = true",
		// Budget indexes
		"CREATE INDEX IF NOT EXISTS idx_budgets_user_category ON budgets(user_id, category)",
		"CREATE INDEX IF NOT EXISTS idx_budgets_is_active ON budgets(is_active)",
		// Goal indexes
		"CREATE INDEX IF NOT EXISTS idx_goals_user_id ON goals(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_goals_status ON goals(status)",
		// Alert indexes
		"CREATE INDEX IF NOT EXISTS idx_alerts_user_status ON alerts(user_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_alerts_transaction_id ON alerts(transaction_id) WHERE transaction_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_alerts_created_at ON alerts(created_at)",
		// Profile indexes
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_budget_profiles_user_id ON budget_profiles(user_id)",
		// Feedback indexes
		"CREATE INDEX IF NOT EXISTS idx_category_feedback_transaction_id ON category_feedback(transaction_id)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}
