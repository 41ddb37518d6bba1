package services

import (
	"context"
	"log/slog"
	"time"

	"pocket-ledger/internal/models"
	"pocket-ledger/internal/repositories"

	"github.com/google/uuid"
)

type transactionService struct {
	transactions repositories.TransactionStoreInterface
	refresher    SpentRefresher
	opLogger     OperationLoggerInterface
	metrics      MetricsRecorderInterface
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactions repositories.TransactionStoreInterface,
	refresher SpentRefresher,
	opLogger OperationLoggerInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactions: transactions,
		refresher:    refresher,
		opLogger:     opLogger,
		metrics:      metrics,
	}
}

// CreateTransaction validates and records a transaction, then brings
// budget spent figures back in line with the new ledger state.
func (s *transactionService) CreateTransaction(ctx context.Context, input models.TransactionInput) (models.Transaction, error) {
	start := time.Now()

	if err := input.Validate(); err != nil {
		s.opLogger.LogValidationFailure(ctx, "transaction_create", err.Error())
		s.metrics.IncrementCounter("transaction_rejected", map[string]string{"operation": "create"})
		return models.Transaction{}, err
	}

	transaction, err := s.transactions.Add(input)
	if err != nil {
		return models.Transaction{}, err
	}

	s.refreshBudgets(ctx)

	s.opLogger.LogTransactionRecorded(ctx, transaction.ID, transaction.Kind, transaction.Category, transaction.Amount)
	s.metrics.IncrementCounter("transaction_recorded", map[string]string{"kind": transaction.Kind})
	s.metrics.RecordProcessingTime("transaction_mutation", time.Since(start))

	return transaction, nil
}

// UpdateTransaction replaces the transaction's content while keeping
// its identity and position, then refreshes budget figures.
func (s *transactionService) UpdateTransaction(ctx context.Context, id uuid.UUID, input models.TransactionInput) (models.Transaction, error) {
	start := time.Now()

	if err := input.Validate(); err != nil {
		s.opLogger.LogValidationFailure(ctx, "transaction_update", err.Error())
		s.metrics.IncrementCounter("transaction_rejected", map[string]string{"operation": "update"})
		return models.Transaction{}, err
	}

	transaction, err := s.transactions.Update(id, input)
	if err != nil {
		return models.Transaction{}, err
	}

	s.refreshBudgets(ctx)

	s.opLogger.LogTransactionUpdated(ctx, transaction.ID)
	s.metrics.RecordProcessingTime("transaction_mutation", time.Since(start))

	return transaction, nil
}

// DeleteTransaction removes a transaction and refreshes budget figures.
func (s *transactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if err := s.transactions.Delete(id); err != nil {
		return err
	}

	s.refreshBudgets(ctx)

	s.opLogger.LogTransactionDeleted(ctx, id)
	s.metrics.IncrementCounter("transaction_deleted", nil)

	return nil
}

func (s *transactionService) GetTransaction(id uuid.UUID) (models.Transaction, error) {
	return s.transactions.GetByID(id)
}

func (s *transactionService) ListTransactions() []models.Transaction {
	return s.transactions.List()
}

func (s *transactionService) ListTransactionsByDateRange(startDate, endDate string) []models.Transaction {
	return s.transactions.ListByDateRange(startDate, endDate)
}

func (s *transactionService) ListTransactionsFiltered(filters models.TransactionFilters) []models.Transaction {
	return s.transactions.ListFiltered(filters)
}

// refreshBudgets keeps budget figures consistent after a committed
// mutation. The mutation itself already succeeded, so a failed refresh
// is logged rather than surfaced; the next recompute heals the figures.
func (s *transactionService) refreshBudgets(ctx context.Context) {
	if s.refresher == nil {
		return
	}
	if err := s.refresher.RecomputeSpent(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to refresh budget figures after transaction mutation",
			"error", err)
	}
}
