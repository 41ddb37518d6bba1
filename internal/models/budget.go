package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	BudgetPeriodWeekly  = "weekly"
	BudgetPeriodMonthly = "monthly"

	AlertNormal     = "normal"
	AlertNearLimit  = "near_limit"
	AlertOverBudget = "over_budget"

	// NearLimitPercent is the utilization at which a budget starts alerting.
	NearLimitPercent = 80.0
)

var (
	ErrInvalidBudgetPeriod   = errors.New("invalid budget period")
	ErrInvalidBudgetAmount   = errors.New("budget amount must be positive")
	ErrInvalidBudgetCategory = errors.New("budget category must be a valid expense category")
)

// Budget is a spending ceiling for one expense category over a recurring
// trailing period. Spent is derived from the transaction collection and is
// recomputed on every transaction change; a persisted value is never
// trusted across loads.
type Budget struct {
	ID        uuid.UUID `json:"id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Period    string    `json:"period"`
	Spent     float64   `json:"spent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BudgetInput holds the caller-supplied fields of a budget. The store
// assigns the id and derives spent.
type BudgetInput struct {
	Category string
	Amount   float64
	Period   string
}

// Validate checks the input fields: positive ceiling, known period and an
// expense-category membership for the category.
func (in *BudgetInput) Validate() error {
	if !IsValidExpenseCategory(in.Category) {
		return ErrInvalidBudgetCategory
	}

	if in.Amount <= 0 {
		return ErrInvalidBudgetAmount
	}

	if !IsValidBudgetPeriod(in.Period) {
		return ErrInvalidBudgetPeriod
	}

	return nil
}

// PercentUsed returns spent as a percentage of the ceiling. Budgets with a
// non-positive ceiling report 0 to avoid an undefined percentage.
func (b *Budget) PercentUsed() float64 {
	if b.Amount <= 0 {
		return 0
	}
	return b.Spent / b.Amount * 100
}

// Alert classifies the budget's current utilization. Budgets with a
// non-positive ceiling never alert. Overage is spent-amount for over-budget
// budgets and 0 otherwise.
func (b *Budget) Alert() (level string, overage float64) {
	if b.Amount <= 0 {
		return AlertNormal, 0
	}

	percent := b.PercentUsed()
	switch {
	case percent > 100:
		return AlertOverBudget, b.Spent - b.Amount
	case percent >= NearLimitPercent:
		return AlertNearLimit, 0
	default:
		return AlertNormal, 0
	}
}

// IsValidBudgetPeriod checks if the budget period is valid.
func IsValidBudgetPeriod(period string) bool {
	switch period {
	case BudgetPeriodWeekly, BudgetPeriodMonthly:
		return true
	default:
		return false
	}
}
