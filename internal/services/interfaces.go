package services

import (
	"context"
	"time"

	"pocket-ledger/internal/dto"
	"pocket-ledger/internal/models"

	"github.com/google/uuid"
)

// TransactionServiceInterface defines transaction-related business operations
type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, input models.TransactionInput) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, id uuid.UUID, input models.TransactionInput) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	GetTransaction(id uuid.UUID) (models.Transaction, error)
	ListTransactions() []models.Transaction
	ListTransactionsByDateRange(startDate, endDate string) []models.Transaction
	ListTransactionsFiltered(filters models.TransactionFilters) []models.Transaction
}

// BudgetServiceInterface defines budget-related business operations
type BudgetServiceInterface interface {
	CreateBudget(ctx context.Context, input models.BudgetInput) (models.Budget, error)
	UpdateBudget(ctx context.Context, id uuid.UUID, input models.BudgetInput) (models.Budget, error)
	DeleteBudget(ctx context.Context, id uuid.UUID) error
	GetBudget(id uuid.UUID) (models.Budget, error)
	ListBudgets() []models.Budget
	BudgetStatuses() []dto.BudgetStatus

	// RecomputeSpent re-derives every budget's spent figure from the
	// current transaction snapshot and persists the result.
	RecomputeSpent(ctx context.Context) error
}

// SpentRefresher is the narrow dependency the transaction service uses
// to keep budget figures consistent after each mutation.
type SpentRefresher interface {
	RecomputeSpent(ctx context.Context) error
}

// SummaryServiceInterface builds the dashboard snapshot
type SummaryServiceInterface interface {
	GetSummary() dto.SummaryResponse
}

// SampleDataGeneratorInterface generates realistic ledger data for
// development environments
type SampleDataGeneratorInterface interface {
	GenerateTransactions(days, count int) []models.TransactionInput
	GenerateBudgets() []models.BudgetInput
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// OperationLoggerInterface provides structured logging for ledger operations
type OperationLoggerInterface interface {
	LogTransactionRecorded(ctx context.Context, id uuid.UUID, kind, category string, amount float64)
	LogTransactionUpdated(ctx context.Context, id uuid.UUID)
	LogTransactionDeleted(ctx context.Context, id uuid.UUID)
	LogBudgetCreated(ctx context.Context, id uuid.UUID, category, period string, amount float64)
	LogBudgetUpdated(ctx context.Context, id uuid.UUID)
	LogBudgetDeleted(ctx context.Context, id uuid.UUID)
	LogSpentRecomputed(ctx context.Context, budgetCount int, durationMs int64)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
}
