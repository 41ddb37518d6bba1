package services

import (
	"sort"
	"time"

	"pocket-ledger/internal/models"

	"github.com/google/uuid"
)

// Aggregation helpers are pure functions over transaction snapshots.
// They take an explicit reference time so that window arithmetic stays
// deterministic and testable.

// TotalIncome sums the amounts of all income transactions.
func TotalIncome(transactions []models.Transaction) float64 {
	var total float64
	for i := range transactions {
		if transactions[i].IsIncome() {
			total += transactions[i].Amount
		}
	}
	return total
}

// TotalExpenses sums the amounts of all expense transactions.
func TotalExpenses(transactions []models.Transaction) float64 {
	var total float64
	for i := range transactions {
		if transactions[i].IsExpense() {
			total += transactions[i].Amount
		}
	}
	return total
}

// Balance is income minus expenses over the whole collection.
func Balance(transactions []models.Transaction) float64 {
	return TotalIncome(transactions) - TotalExpenses(transactions)
}

// Recent returns up to limit transactions ordered by date descending.
// Transactions sharing a date are ordered most recently recorded first.
func Recent(transactions []models.Transaction, limit int) []models.Transaction {
	if limit <= 0 {
		return []models.Transaction{}
	}

	indexed := make([]int, len(transactions))
	for i := range indexed {
		indexed[i] = i
	}
	sort.SliceStable(indexed, func(a, b int) bool {
		da, db := transactions[indexed[a]].Date, transactions[indexed[b]].Date
		if da != db {
			return da > db
		}
		return indexed[a] > indexed[b]
	})

	if limit > len(indexed) {
		limit = len(indexed)
	}
	recent := make([]models.Transaction, 0, limit)
	for _, idx := range indexed[:limit] {
		recent = append(recent, transactions[idx])
	}
	return recent
}

// WindowStart computes the earliest calendar date included in a budget
// period ending at now. Weekly windows reach back seven days, monthly
// windows one calendar month with Go's date normalization.
func WindowStart(period string, now time.Time) string {
	var start time.Time
	switch period {
	case models.BudgetPeriodWeekly:
		start = now.AddDate(0, 0, -7)
	case models.BudgetPeriodMonthly:
		start = now.AddDate(0, -1, 0)
	default:
		start = now
	}
	return start.Format(models.DateLayout)
}

// ComputeSpent derives a budget's spent figure: the sum of expense
// transactions in the budget's category dated inside the current
// period window. The ISO date encoding makes lexicographic comparison
// equivalent to chronological comparison.
func ComputeSpent(transactions []models.Transaction, budget models.Budget, now time.Time) float64 {
	windowStart := WindowStart(budget.Period, now)

	var spent float64
	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() || txn.Category != budget.Category {
			continue
		}
		if txn.Date >= windowStart {
			spent += txn.Amount
		}
	}
	return spent
}

// ComputeSpentAll derives fresh spent figures for every budget in one pass
// over the transaction snapshot.
func ComputeSpentAll(transactions []models.Transaction, budgets []models.Budget, now time.Time) map[uuid.UUID]float64 {
	spentByID := make(map[uuid.UUID]float64, len(budgets))
	for i := range budgets {
		spentByID[budgets[i].ID] = ComputeSpent(transactions, budgets[i], now)
	}
	return spentByID
}
