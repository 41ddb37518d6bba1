package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pocket-ledger/internal/dto"
	"pocket-ledger/internal/models"

	"github.com/stretchr/testify/suite"
)

type SummaryHandlerTestSuite struct {
	suite.Suite
	env     *handlerEnv
	handler *SummaryHandler
}

func TestSummaryHandlerSuite(t *testing.T) {
	suite.Run(t, new(SummaryHandlerTestSuite))
}

func (s *SummaryHandlerTestSuite) SetupTest() {
	s.env = newHandlerEnv(s.T())
	s.handler = NewSummaryHandler(s.env.summaryService, noopMetrics{})
}

func (s *SummaryHandlerTestSuite) getSummary() dto.SummaryResponse {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	rec := httptest.NewRecorder()
	c := s.env.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.GetSummary(c))
	s.Require().Equal(http.StatusOK, rec.Code)

	var response dto.SummaryResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *SummaryHandlerTestSuite) TestGetSummary_EmptyLedger() {
	summary := s.getSummary()

	s.Equal(0.0, summary.TotalIncome)
	s.Equal(0.0, summary.TotalExpenses)
	s.Equal(0.0, summary.Balance)
	s.Equal(0, summary.TransactionCount)
	s.Empty(summary.RecentTransactions)
	s.Empty(summary.Budgets)
}

func (s *SummaryHandlerTestSuite) TestGetSummary_WithActivity() {
	ctx := context.Background()

	_, err := s.env.transactionService.CreateTransaction(ctx, models.TransactionInput{
		Kind:        models.TransactionKindIncome,
		Amount:      2000,
		Category:    models.CategorySalary,
		Description: "Salary",
		Date:        daysAgo(10),
	})
	s.Require().NoError(err)

	_, err = s.env.transactionService.CreateTransaction(ctx, models.TransactionInput{
		Kind:        models.TransactionKindExpense,
		Amount:      90,
		Category:    models.CategoryFood,
		Description: "Groceries",
		Date:        daysAgo(1),
	})
	s.Require().NoError(err)

	_, err = s.env.budgetService.CreateBudget(ctx, models.BudgetInput{
		Category: models.CategoryFood,
		Amount:   100,
		Period:   models.BudgetPeriodMonthly,
	})
	s.Require().NoError(err)

	summary := s.getSummary()

	s.Equal(2000.0, summary.TotalIncome)
	s.Equal(90.0, summary.TotalExpenses)
	s.Equal(1910.0, summary.Balance)
	s.Equal(2, summary.TransactionCount)
	s.Require().Len(summary.RecentTransactions, 2)
	s.Equal(daysAgo(1), summary.RecentTransactions[0].Date)

	s.Require().Len(summary.Budgets, 1)
	s.Equal(models.AlertNearLimit, summary.Budgets[0].AlertLevel)
}
