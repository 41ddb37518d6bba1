package services

import (
	"context"
	"testing"
	"time"

	"pocket-ledger/internal/models"
	"pocket-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	stores        testStores
	budgetService *budgetService
	service       TransactionServiceInterface
	ctx           context.Context
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.stores = newTestStores(s.T())
	s.ctx = context.Background()

	budgetSvc := NewBudgetService(s.stores.budgets, s.stores.transactions, newTestOpLogger(), noopMetrics{})
	s.budgetService = budgetSvc.(*budgetService)
	s.budgetService.now = func() time.Time {
		return time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	}

	s.service = NewTransactionService(s.stores.transactions, s.budgetService, newTestOpLogger(), noopMetrics{})
}

func (s *TransactionServiceTestSuite) validExpense() models.TransactionInput {
	return models.TransactionInput{
		Kind:        models.TransactionKindExpense,
		Amount:      60,
		Category:    models.CategoryFood,
		Description: "Groceries",
		Date:        "2026-08-28",
	}
}

func (s *TransactionServiceTestSuite) TestCreateTransaction() {
	created, err := s.service.CreateTransaction(s.ctx, s.validExpense())

	s.NoError(err)
	s.NotEqual(uuid.Nil, created.ID)
	s.Len(s.service.ListTransactions(), 1)
}

func (s *TransactionServiceTestSuite) TestCreateTransactionRejectsInvalidInput() {
	input := s.validExpense()
	input.Date = "28-08-2026"

	_, err := s.service.CreateTransaction(s.ctx, input)

	s.ErrorIs(err, models.ErrInvalidDate)
	s.Empty(s.service.ListTransactions())
}

func (s *TransactionServiceTestSuite) TestCreateTransactionRefreshesBudgets() {
	budget, err := s.budgetService.CreateBudget(s.ctx, models.BudgetInput{
		Category: models.CategoryFood,
		Amount:   200,
		Period:   models.BudgetPeriodMonthly,
	})
	s.Require().NoError(err)
	s.Require().Equal(0.0, budget.Spent)

	_, err = s.service.CreateTransaction(s.ctx, s.validExpense())
	s.Require().NoError(err)

	refreshed, err := s.budgetService.GetBudget(budget.ID)
	s.NoError(err)
	s.Equal(60.0, refreshed.Spent)
}

func (s *TransactionServiceTestSuite) TestUpdateTransactionRefreshesBudgets() {
	budget, err := s.budgetService.CreateBudget(s.ctx, models.BudgetInput{
		Category: models.CategoryFood,
		Amount:   200,
		Period:   models.BudgetPeriodMonthly,
	})
	s.Require().NoError(err)

	created, err := s.service.CreateTransaction(s.ctx, s.validExpense())
	s.Require().NoError(err)

	moved := s.validExpense()
	moved.Category = models.CategoryTravel
	updated, err := s.service.UpdateTransaction(s.ctx, created.ID, moved)

	s.NoError(err)
	s.Equal(created.ID, updated.ID)
	s.Equal(models.CategoryTravel, updated.Category)

	refreshed, err := s.budgetService.GetBudget(budget.ID)
	s.NoError(err)
	s.Equal(0.0, refreshed.Spent)
}

func (s *TransactionServiceTestSuite) TestDeleteTransactionRefreshesBudgets() {
	budget, err := s.budgetService.CreateBudget(s.ctx, models.BudgetInput{
		Category: models.CategoryFood,
		Amount:   200,
		Period:   models.BudgetPeriodMonthly,
	})
	s.Require().NoError(err)

	created, err := s.service.CreateTransaction(s.ctx, s.validExpense())
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteTransaction(s.ctx, created.ID))

	refreshed, err := s.budgetService.GetBudget(budget.ID)
	s.NoError(err)
	s.Equal(0.0, refreshed.Spent)
	s.Empty(s.service.ListTransactions())
}

func (s *TransactionServiceTestSuite) TestNotFoundErrors() {
	_, err := s.service.UpdateTransaction(s.ctx, uuid.New(), s.validExpense())
	s.ErrorIs(err, repositories.ErrTransactionNotFound)

	s.ErrorIs(s.service.DeleteTransaction(s.ctx, uuid.New()), repositories.ErrTransactionNotFound)

	_, err = s.service.GetTransaction(uuid.New())
	s.ErrorIs(err, repositories.ErrTransactionNotFound)
}

func (s *TransactionServiceTestSuite) TestListTransactionsByDateRange() {
	for _, date := range []string{"2026-08-01", "2026-08-15", "2026-08-28"} {
		input := s.validExpense()
		input.Date = date
		_, err := s.service.CreateTransaction(s.ctx, input)
		s.Require().NoError(err)
	}

	ranged := s.service.ListTransactionsByDateRange("2026-08-10", "2026-08-20")
	s.Require().Len(ranged, 1)
	s.Equal("2026-08-15", ranged[0].Date)
}
