package services

import (
	"context"
	"testing"
	"time"

	"pocket-ledger/internal/models"

	"github.com/stretchr/testify/suite"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	stores        testStores
	budgetService *budgetService
	transactions  TransactionServiceInterface
	service       SummaryServiceInterface
	ctx           context.Context
}

func TestSummaryServiceSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}

func (s *SummaryServiceTestSuite) SetupTest() {
	s.stores = newTestStores(s.T())
	s.ctx = context.Background()

	budgetSvc := NewBudgetService(s.stores.budgets, s.stores.transactions, newTestOpLogger(), noopMetrics{})
	s.budgetService = budgetSvc.(*budgetService)
	s.budgetService.now = func() time.Time {
		return time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	}

	s.transactions = NewTransactionService(s.stores.transactions, s.budgetService, newTestOpLogger(), noopMetrics{})
	s.service = NewSummaryService(s.stores.transactions, s.budgetService, 3)
}

func (s *SummaryServiceTestSuite) TestEmptySummary() {
	summary := s.service.GetSummary()

	s.Equal(0.0, summary.TotalIncome)
	s.Equal(0.0, summary.TotalExpenses)
	s.Equal(0.0, summary.Balance)
	s.Equal(0, summary.TransactionCount)
	s.Empty(summary.RecentTransactions)
	s.Empty(summary.Budgets)
}

func (s *SummaryServiceTestSuite) TestSummaryAggregates() {
	_, err := s.transactions.CreateTransaction(s.ctx, models.TransactionInput{
		Kind:        models.TransactionKindIncome,
		Amount:      2000,
		Category:    models.CategorySalary,
		Description: "Salary",
		Date:        "2026-08-01",
	})
	s.Require().NoError(err)

	dates := []string{"2026-08-05", "2026-08-12", "2026-08-20", "2026-08-27"}
	for _, date := range dates {
		_, err := s.transactions.CreateTransaction(s.ctx, models.TransactionInput{
			Kind:        models.TransactionKindExpense,
			Amount:      50,
			Category:    models.CategoryFood,
			Description: "Groceries",
			Date:        date,
		})
		s.Require().NoError(err)
	}

	summary := s.service.GetSummary()

	s.Equal(2000.0, summary.TotalIncome)
	s.Equal(200.0, summary.TotalExpenses)
	s.Equal(1800.0, summary.Balance)
	s.Equal(5, summary.TransactionCount)

	s.Require().Len(summary.RecentTransactions, 3)
	s.Equal("2026-08-27", summary.RecentTransactions[0].Date)
	s.Equal("2026-08-20", summary.RecentTransactions[1].Date)
	s.Equal("2026-08-12", summary.RecentTransactions[2].Date)
}

func (s *SummaryServiceTestSuite) TestSummaryCarriesBudgetAlerts() {
	_, err := s.budgetService.CreateBudget(s.ctx, models.BudgetInput{
		Category: models.CategoryFood,
		Amount:   100,
		Period:   models.BudgetPeriodMonthly,
	})
	s.Require().NoError(err)

	_, err = s.transactions.CreateTransaction(s.ctx, models.TransactionInput{
		Kind:        models.TransactionKindExpense,
		Amount:      90,
		Category:    models.CategoryFood,
		Description: "Groceries",
		Date:        "2026-08-28",
	})
	s.Require().NoError(err)

	summary := s.service.GetSummary()

	s.Require().Len(summary.Budgets, 1)
	s.Equal(models.AlertNearLimit, summary.Budgets[0].AlertLevel)
	s.Equal(90.0, summary.Budgets[0].PercentUsed)
}
