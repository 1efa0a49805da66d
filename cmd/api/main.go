package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finpulse-api/internal/config"
	"finpulse-api/internal/database"
	"finpulse-api/internal/handlers"
	custommw "finpulse-api/internal/middleware"
	"finpulse-api/internal/notify"
	"finpulse-api/internal/oracle"
	"finpulse-api/internal/repositories"
	"finpulse-api/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional, real deployments configure through the environment
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	txnRepo := repositories.NewTransactionRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)
	goalRepo := repositories.NewGoalRepository(db)
	alertRepo := repositories.NewAlertRepository(db)
	profileRepo := repositories.NewBudgetProfileRepository(db)
	feedbackRepo := repositories.NewCategoryFeedbackRepository(db)

	// External clients and cross-cutting services
	oracleClient := oracle.NewClient(&cfg.Oracle, logger)
	notifier := notify.NewNotifier(&cfg.Notifier, logger)
	metrics := services.NewPrometheusMetrics()
	pipelineLog := services.NewPipelineLogger(logger)

	// Domain services
	alertService := services.NewAlertService(alertRepo, notifier, pipelineLog, metrics)
	anomalyGate := services.NewAnomalyGate(oracleClient, txnRepo, alertService, pipelineLog, metrics, cfg.Pipeline.AnomalyHighScore)
	budgetTracker := services.NewBudgetTracker(budgetRepo, alertRepo, alertService, pipelineLog, metrics, cfg.Pipeline.BudgetWarningRatio)
	ingestionService := services.NewIngestionService(txnRepo, feedbackRepo, oracleClient, anomalyGate, budgetTracker, pipelineLog, metrics)
	budgetService := services.NewBudgetService(budgetRepo, profileRepo)
	goalService := services.NewGoalService(goalRepo, profileRepo)
	investmentService := services.NewInvestmentService(profileRepo, alertService, metrics, cfg.Pipeline.EmergencyFundMonths, cfg.Pipeline.VolatilityCeiling)
	profileService := services.NewProfileService(txnRepo, profileRepo, pipelineLog, metrics)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(ingestionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	goalHandler := handlers.NewGoalHandler(goalService)
	alertHandler := handlers.NewAlertHandler(alertService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	profileHandler := handlers.NewProfileHandler(profileService)
	healthHandler := handlers.NewHealthCheckHandler(db, oracleClient)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.RateLimiter())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", custommw.RequireAuth(&cfg.Auth))

	api.POST("/transactions", transactionHandler.IngestTransaction)
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.PATCH("/transactions/:id/category", transactionHandler.RecategorizeTransaction)

	api.POST("/budgets", budgetHandler.CreateBudget)
	api.GET("/budgets", budgetHandler.ListBudgets)
	api.GET("/budgets/savings", budgetHandler.GetSavingsEstimate)
	api.PATCH("/budgets/:id", budgetHandler.UpdateBudget)
	api.DELETE("/budgets/:id", budgetHandler.DeleteBudget)

	api.POST("/goals", goalHandler.CreateGoal)
	api.GET("/goals", goalHandler.ListGoals)
	api.GET("/goals/insights", goalHandler.GetGoalInsights)
	api.POST("/goals/:id/contributions", goalHandler.ContributeToGoal)
	api.DELETE("/goals/:id", goalHandler.DeleteGoal)

	api.GET("/alerts", alertHandler.ListAlerts)
	api.PATCH("/alerts/:id/resolve", alertHandler.ResolveAlert)

	api.GET("/investments/readiness", investmentHandler.GetReadiness)
	api.GET("/investments/recommendations", investmentHandler.GetRecommendations)

	api.GET("/profile", profileHandler.GetProfile)
	api.POST("/profile/rebuild", profileHandler.RebuildProfile)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Starting server", "addr", server.Addr, "env", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
