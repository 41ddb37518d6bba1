package handlers

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"pocket-ledger/internal/repositories"
	"pocket-ledger/internal/services"
	"pocket-ledger/internal/storage"

	"github.com/labstack/echo/v4"
)

// noopMetrics satisfies the metrics interface without touching the
// global prometheus registry.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(name string, tags map[string]string)           {}
func (noopMetrics) RecordProcessingTime(name string, duration time.Duration)       {}
func (noopMetrics) RecordGauge(name string, value float64, tags map[string]string) {}

// handlerEnv wires real services over an in-memory database so handler
// tests exercise the full request path.
type handlerEnv struct {
	echo               *echo.Echo
	db                 *storage.DB
	transactionService services.TransactionServiceInterface
	budgetService      services.BudgetServiceInterface
	summaryService     services.SummaryServiceInterface
}

func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()

	db := storage.SetupTestDB(t)
	transactions := repositories.NewTransactionStore(db)
	budgets := repositories.NewBudgetStore(db)
	if err := transactions.Load(); err != nil {
		t.Fatalf("load transactions: %v", err)
	}
	if err := budgets.Load(); err != nil {
		t.Fatalf("load budgets: %v", err)
	}

	opLogger := services.NewOperationLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	budgetService := services.NewBudgetService(budgets, transactions, opLogger, noopMetrics{})
	transactionService := services.NewTransactionService(transactions, budgetService, opLogger, noopMetrics{})
	summaryService := services.NewSummaryService(transactions, budgetService, 5)

	e := echo.New()
	e.Validator = NewValidator()

	return &handlerEnv{
		echo:               e,
		db:                 db,
		transactionService: transactionService,
		budgetService:      budgetService,
		summaryService:     summaryService,
	}
}

// daysAgo formats a ledger date n days before today, keeping test data
// inside sliding budget windows.
func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format("2006-01-02")
}
