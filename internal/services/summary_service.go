package services

import (
	"pocket-ledger/internal/dto"
	"pocket-ledger/internal/repositories"
)

type summaryService struct {
	transactions repositories.TransactionStoreInterface
	budgets      BudgetServiceInterface
	recentLimit  int
}

// NewSummaryService creates a new summary service. recentLimit bounds
// how many transactions the dashboard snapshot carries.
func NewSummaryService(
	transactions repositories.TransactionStoreInterface,
	budgets BudgetServiceInterface,
	recentLimit int,
) SummaryServiceInterface {
	return &summaryService{
		transactions: transactions,
		budgets:      budgets,
		recentLimit:  recentLimit,
	}
}

// GetSummary assembles the dashboard snapshot: overall totals, the most
// recent transactions and the alert state of every budget.
func (s *summaryService) GetSummary() dto.SummaryResponse {
	snapshot := s.transactions.List()

	return dto.SummaryResponse{
		TotalIncome:        TotalIncome(snapshot),
		TotalExpenses:      TotalExpenses(snapshot),
		Balance:            Balance(snapshot),
		TransactionCount:   len(snapshot),
		RecentTransactions: Recent(snapshot, s.recentLimit),
		Budgets:            s.budgets.BudgetStatuses(),
	}
}
