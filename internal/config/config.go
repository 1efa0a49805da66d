package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Oracle   OracleConfig
	Notifier NotifierConfig
	Auth     AuthConfig
	Pipeline PipelineConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// OracleConfig configures the external scoring oracle client. Timeout is a
// hard bound: ingestion never waits longer than this for a score.
type OracleConfig struct {
	BaseURL         string
	Timeout         time.Duration
	MaxFailures     int
	BreakerCooldown time.Duration
}

// NotifierConfig configures the notification gateway client
type NotifierConfig struct {
	BaseURL string
	Timeout time.Duration
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// PipelineConfig holds the tunable thresholds of the processing pipeline.
// EmergencyFundMonths feeds the literal emergency-fund gate formula
// (surplus >= baseline * months / 12); keeping it here lets the rule be
// corrected with a single config change if the intended semantics differ.
type PipelineConfig struct {
	BudgetWarningRatio  float64
	AnomalyHighScore    float64
	EmergencyFundMonths int
	VolatilityCeiling   float64
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finpulse_user"),
			Password:        getEnv("DB_PASSWORD", "finpulse_password"),
			Name:            getEnv("DB_NAME", "finpulse_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Oracle: OracleConfig{
			BaseURL:         getEnv("ORACLE_BASE_URL", "http://localhost:9090"),
			Timeout:         getDurationEnv("ORACLE_TIMEOUT", 3*time.Second),
			MaxFailures:     getIntEnv("ORACLE_BREAKER_MAX_FAILURES", 5),
			BreakerCooldown: getDurationEnv("ORACLE_BREAKER_COOLDOWN", 30*time.Second),
		},
		Notifier: NotifierConfig{
			BaseURL: getEnv("NOTIFIER_BASE_URL", "http://localhost:9091"),
			Timeout: getDurationEnv("NOTIFIER_TIMEOUT", 5*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			Issuer:    getEnv("JWT_ISSUER", "finpulse-api"),
		},
		Pipeline: PipelineConfig{
			BudgetWarningRatio:  getFloatEnv("BUDGET_WARNING_RATIO", 0.8),
			AnomalyHighScore:    getFloatEnv("ANOMALY_HIGH_SCORE", 0.9),
			EmergencyFundMonths: getIntEnv("EMERGENCY_FUND_MONTHS", 6),
			VolatilityCeiling:   getFloatEnv("VOLATILITY_CEILING", 0.3),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if config.Auth.JWTSecret == "" {
		if config.IsProduction() {
			log.Fatal("JWT_SECRET environment variable must be set in production environments")
		}
		log.Println("Development environment: using default JWT secret (set JWT_SECRET to override)")
		config.Auth.JWTSecret = "finpulse-dev-secret"
	}

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
