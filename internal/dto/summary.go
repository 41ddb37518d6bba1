package dto

import (
	"pocket-ledger/internal/models"
)

// SummaryResponse represents the dashboard snapshot: overall totals,
// the most recent transactions and the alert state of every budget
type SummaryResponse struct {
	TotalIncome        float64              `json:"total_income"`
	TotalExpenses      float64              `json:"total_expenses"`
	Balance            float64              `json:"balance"`
	TransactionCount   int                  `json:"transaction_count"`
	RecentTransactions []models.Transaction `json:"recent_transactions"`
	Budgets            []BudgetStatus       `json:"budgets"`
}

// SeedResponse reports how much sample data a development seed produced
type SeedResponse struct {
	TransactionsCreated int    `json:"transactions_created"`
	BudgetsCreated      int    `json:"budgets_created"`
	Message             string `json:"message"`
}
