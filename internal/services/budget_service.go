package services

import (
	"context"
	"fmt"
	"time"

	"pocket-ledger/internal/dto"
	"pocket-ledger/internal/models"
	"pocket-ledger/internal/repositories"

	"github.com/google/uuid"
)

type budgetService struct {
	budgets      repositories.BudgetStoreInterface
	transactions repositories.TransactionStoreInterface
	opLogger     OperationLoggerInterface
	metrics      MetricsRecorderInterface
	now          func() time.Time
}

// NewBudgetService creates a new budget service
func NewBudgetService(
	budgets repositories.BudgetStoreInterface,
	transactions repositories.TransactionStoreInterface,
	opLogger OperationLoggerInterface,
	metrics MetricsRecorderInterface,
) BudgetServiceInterface {
	return &budgetService{
		budgets:      budgets,
		transactions: transactions,
		opLogger:     opLogger,
		metrics:      metrics,
		now:          time.Now,
	}
}

// CreateBudget validates the ceiling, derives its initial spent figure
// from the current transaction snapshot and stores it. One budget per
// category is enforced by the store.
func (s *budgetService) CreateBudget(ctx context.Context, input models.BudgetInput) (models.Budget, error) {
	if err := input.Validate(); err != nil {
		s.opLogger.LogValidationFailure(ctx, "budget_create", err.Error())
		return models.Budget{}, err
	}

	spent := ComputeSpent(s.transactions.List(), models.Budget{
		Category: input.Category,
		Period:   input.Period,
	}, s.now())

	budget, err := s.budgets.Add(input, spent)
	if err != nil {
		return models.Budget{}, err
	}

	s.opLogger.LogBudgetCreated(ctx, budget.ID, budget.Category, budget.Period, budget.Amount)
	s.metrics.IncrementCounter("budget_created", nil)

	return budget, nil
}

// UpdateBudget replaces the budget's category, amount and period, then
// re-derives its spent figure for the possibly changed window.
func (s *budgetService) UpdateBudget(ctx context.Context, id uuid.UUID, input models.BudgetInput) (models.Budget, error) {
	if err := input.Validate(); err != nil {
		s.opLogger.LogValidationFailure(ctx, "budget_update", err.Error())
		return models.Budget{}, err
	}

	spent := ComputeSpent(s.transactions.List(), models.Budget{
		Category: input.Category,
		Period:   input.Period,
	}, s.now())

	budget, err := s.budgets.Update(id, input, spent)
	if err != nil {
		return models.Budget{}, err
	}

	s.opLogger.LogBudgetUpdated(ctx, budget.ID)
	s.metrics.IncrementCounter("budget_updated", nil)

	return budget, nil
}

// DeleteBudget removes the budget with the given id.
func (s *budgetService) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	if err := s.budgets.Delete(id); err != nil {
		return err
	}

	s.opLogger.LogBudgetDeleted(ctx, id)
	s.metrics.IncrementCounter("budget_deleted", nil)

	return nil
}

func (s *budgetService) GetBudget(id uuid.UUID) (models.Budget, error) {
	budget, err := s.budgets.GetByID(id)
	if err != nil {
		return models.Budget{}, err
	}
	budget.Spent = ComputeSpent(s.transactions.List(), budget, s.now())
	return budget, nil
}

func (s *budgetService) ListBudgets() []models.Budget {
	return s.withCurrentSpent(s.budgets.List())
}

// BudgetStatuses classifies every budget against a spent figure derived
// at the current clock, so a window that slid since the last mutation
// never yields a stale classification. Percent is reported unclamped so
// callers can show how far over the ceiling spending went.
func (s *budgetService) BudgetStatuses() []dto.BudgetStatus {
	budgets := s.withCurrentSpent(s.budgets.List())

	statuses := make([]dto.BudgetStatus, 0, len(budgets))
	for i := range budgets {
		level, overage := budgets[i].Alert()
		statuses = append(statuses, dto.BudgetStatus{
			Budget:      budgets[i],
			PercentUsed: budgets[i].PercentUsed(),
			AlertLevel:  level,
			Overage:     overage,
		})
	}
	return statuses
}

// withCurrentSpent overlays spent figures computed against the current
// clock on a budget snapshot. The stored figures are only as fresh as
// the last mutation; read paths must not trust them.
func (s *budgetService) withCurrentSpent(budgets []models.Budget) []models.Budget {
	spentByID := ComputeSpentAll(s.transactions.List(), budgets, s.now())
	for i := range budgets {
		budgets[i].Spent = spentByID[budgets[i].ID]
	}
	return budgets
}

// RecomputeSpent re-derives every budget's spent figure from the current
// transaction snapshot and persists the refreshed collection. It runs
// after every transaction mutation and once at startup, since persisted
// figures go stale as period windows slide.
func (s *budgetService) RecomputeSpent(ctx context.Context) error {
	start := time.Now()

	budgets := s.budgets.List()
	spentByID := ComputeSpentAll(s.transactions.List(), budgets, s.now())

	if err := s.budgets.RefreshSpent(spentByID); err != nil {
		return fmt.Errorf("failed to refresh budget spent figures: %w", err)
	}

	s.opLogger.LogSpentRecomputed(ctx, len(budgets), time.Since(start).Milliseconds())
	s.metrics.RecordGauge("budgets_tracked", float64(len(budgets)), nil)

	return nil
}
