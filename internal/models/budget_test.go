package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetInput_Validate(t *testing.T) {
	valid := BudgetInput{Category: CategoryFood, Amount: 400, Period: BudgetPeriodMonthly}

	testCases := []struct {
		name    string
		mutate  func(in *BudgetInput)
		wantErr error
	}{
		{"valid monthly", func(in *BudgetInput) {}, nil},
		{"valid weekly", func(in *BudgetInput) { in.Period = BudgetPeriodWeekly }, nil},
		{"income category", func(in *BudgetInput) { in.Category = CategorySalary }, ErrInvalidBudgetCategory},
		{"unknown category", func(in *BudgetInput) { in.Category = "Gadgets" }, ErrInvalidBudgetCategory},
		{"zero amount", func(in *BudgetInput) { in.Amount = 0 }, ErrInvalidBudgetAmount},
		{"negative amount", func(in *BudgetInput) { in.Amount = -100 }, ErrInvalidBudgetAmount},
		{"unknown period", func(in *BudgetInput) { in.Period = "daily" }, ErrInvalidBudgetPeriod},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)

			err := in.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestBudget_Alert(t *testing.T) {
	testCases := []struct {
		name        string
		amount      float64
		spent       float64
		wantLevel   string
		wantOverage float64
	}{
		{"over budget with overage", 400, 500, AlertOverBudget, 100},
		{"well under limit", 1000, 500, AlertNormal, 0},
		{"near limit at 85 percent", 800, 680, AlertNearLimit, 0},
		{"near limit at exactly 80 percent", 500, 400, AlertNearLimit, 0},
		{"near limit at exactly 100 percent", 500, 500, AlertNearLimit, 0},
		{"just over 100 percent", 500, 500.01, AlertOverBudget, 0.01},
		{"nothing spent", 300, 0, AlertNormal, 0},
		{"zero ceiling never alerts", 0, 250, AlertNormal, 0},
		{"negative ceiling never alerts", -50, 250, AlertNormal, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := Budget{Amount: tc.amount, Spent: tc.spent}

			level, overage := b.Alert()
			assert.Equal(t, tc.wantLevel, level)
			assert.InDelta(t, tc.wantOverage, overage, 1e-9)
		})
	}
}

func TestBudget_PercentUsed(t *testing.T) {
	b := Budget{Amount: 800, Spent: 680}
	assert.InDelta(t, 85.0, b.PercentUsed(), 1e-9)

	empty := Budget{Amount: 0, Spent: 100}
	assert.Zero(t, empty.PercentUsed())
}
