package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"pocket-ledger/internal/repositories"
	"pocket-ledger/internal/storage"
)

// noopMetrics satisfies MetricsRecorderInterface without touching the
// global prometheus registry.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(name string, tags map[string]string)           {}
func (noopMetrics) RecordProcessingTime(name string, duration time.Duration)       {}
func (noopMetrics) RecordGauge(name string, value float64, tags map[string]string) {}

func newTestOpLogger() OperationLoggerInterface {
	return NewOperationLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type testStores struct {
	db           *storage.DB
	transactions repositories.TransactionStoreInterface
	budgets      repositories.BudgetStoreInterface
}

func newTestStores(t *testing.T) testStores {
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

	return testStores{db: db, transactions: transactions, budgets: budgets}
}
