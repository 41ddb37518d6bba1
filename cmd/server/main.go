package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pocket-ledger/internal/config"
	"pocket-ledger/internal/handlers"
	"pocket-ledger/internal/middleware"
	"pocket-ledger/internal/repositories"
	"pocket-ledger/internal/services"
	"pocket-ledger/internal/storage"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg := config.Load()

	setupLogging(cfg)

	db, err := storage.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	transactions := repositories.NewTransactionStore(db)
	budgets := repositories.NewBudgetStore(db)
	if err := transactions.Load(); err != nil {
		slog.Error("Failed to load transactions", "error", err)
		os.Exit(1)
	}
	if err := budgets.Load(); err != nil {
		slog.Error("Failed to load budgets", "error", err)
		os.Exit(1)
	}

	metrics := services.NewPrometheusMetrics()
	opLogger := services.NewOperationLogger(slog.Default())
	budgetService := services.NewBudgetService(budgets, transactions, opLogger, metrics)
	transactionService := services.NewTransactionService(transactions, budgetService, opLogger, metrics)
	summaryService := services.NewSummaryService(transactions, budgetService, cfg.Summary.RecentLimit)

	// Persisted spent figures go stale as period windows slide, so
	// re-derive them before serving the first request.
	if err := budgetService.RecomputeSpent(context.Background()); err != nil {
		slog.Error("Failed to recompute budget figures at startup", "error", err)
		os.Exit(1)
	}

	e := newServer(cfg, db, transactionService, budgetService, summaryService, metrics)

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		slog.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	address := cfg.Server.Host + ":" + cfg.Server.Port
	slog.Info("Starting pocket-ledger server",
		"address", address,
		"environment", cfg.Server.Environment,
		"driver", cfg.Database.Driver)

	if err := e.Start(address); err != nil && err != http.ErrServerClosed {
		slog.Error("Server error", "error", err, "address", address)
		os.Exit(1)
	}

	<-ctx.Done()
	slog.Info("Server stopped gracefully")
}

func setupLogging(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}

func newServer(
	cfg *config.Config,
	db *storage.DB,
	transactionService services.TransactionServiceInterface,
	budgetService services.BudgetServiceInterface,
	summaryService services.SummaryServiceInterface,
	metrics services.MetricsRecorderInterface,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	healthHandler := handlers.NewHealthCheckHandler(db)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	summaryHandler := handlers.NewSummaryHandler(summaryService, metrics)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)
	api.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	api.POST("/budgets", budgetHandler.CreateBudget)
	api.GET("/budgets", budgetHandler.ListBudgets)
	api.GET("/budgets/status", budgetHandler.BudgetStatuses)
	api.GET("/budgets/:id", budgetHandler.GetBudget)
	api.PUT("/budgets/:id", budgetHandler.UpdateBudget)
	api.DELETE("/budgets/:id", budgetHandler.DeleteBudget)

	api.GET("/summary", summaryHandler.GetSummary)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(
			transactionService,
			budgetService,
			services.NewSampleDataGenerator(uint64(time.Now().UnixNano())),
			metrics,
		)
		api.POST("/dev/seed", devHandler.SeedSampleData)
		slog.Info("Development endpoints enabled")
	}

	return e
}
