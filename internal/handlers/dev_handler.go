package handlers

import (
	"net/http"

	"pocket-ledger/internal/dto"
	"pocket-ledger/internal/repositories"
	"pocket-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeedCount = 40
	maxSeedCount     = 500
	defaultSeedDays  = 30
	maxSeedDays      = 365
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionService services.TransactionServiceInterface
	budgetService      services.BudgetServiceInterface
	generator          services.SampleDataGeneratorInterface
	metrics            services.MetricsRecorderInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionService services.TransactionServiceInterface,
	budgetService services.BudgetServiceInterface,
	generator services.SampleDataGeneratorInterface,
	metrics services.MetricsRecorderInterface,
) *DevHandler {
	return &DevHandler{
		transactionService: transactionService,
		budgetService:      budgetService,
		generator:          generator,
		metrics:            metrics,
	}
}

// SeedSampleData fills the ledger with realistic sample data
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Query parameters:
//   - count: Number of transactions to generate (default: 40, max: 500)
//   - days: Number of days of history to generate (default: 30, max: 365)
//
// Budgets are only seeded for categories that do not already carry one.
func (h *DevHandler) SeedSampleData(c echo.Context) error {
	count := getIntParam(c, "count", defaultSeedCount)
	if count < 1 {
		count = 1
	}
	if count > maxSeedCount {
		count = maxSeedCount
	}

	days := getIntParam(c, "days", defaultSeedDays)
	if days < 1 {
		days = 1
	}
	if days > maxSeedDays {
		days = maxSeedDays
	}

	ctx := c.Request().Context()

	var transactionsCreated int
	for _, input := range h.generator.GenerateTransactions(days, count) {
		if _, err := h.transactionService.CreateTransaction(ctx, input); err != nil {
			return SendSystemError(c, err)
		}
		transactionsCreated++
	}

	var budgetsCreated int
	for _, input := range h.generator.GenerateBudgets() {
		if _, err := h.budgetService.CreateBudget(ctx, input); err != nil {
			if err == repositories.ErrDuplicateCategory {
				continue
			}
			return SendSystemError(c, err)
		}
		budgetsCreated++
	}

	h.metrics.IncrementCounter("sample_seed", nil)

	return c.JSON(http.StatusOK, dto.SeedResponse{
		TransactionsCreated: transactionsCreated,
		BudgetsCreated:      budgetsCreated,
		Message:             "Sample data seeded",
	})
}
