package services

import (
	"testing"
	"time"

	"pocket-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func expenseOn(date, category string, amount float64) models.Transaction {
	return models.Transaction{
		ID:       uuid.New(),
		Kind:     models.TransactionKindExpense,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

func incomeOn(date string, amount float64) models.Transaction {
	return models.Transaction{
		ID:       uuid.New(),
		Kind:     models.TransactionKindIncome,
		Amount:   amount,
		Category: models.CategorySalary,
		Date:     date,
	}
}

func TestTotalsAndBalance(t *testing.T) {
	transactions := []models.Transaction{
		incomeOn("2026-08-01", 2000),
		expenseOn("2026-08-02", models.CategoryFood, 150),
		expenseOn("2026-08-03", models.CategoryTravel, 50),
		incomeOn("2026-08-15", 500),
	}

	assert.Equal(t, 2500.0, TotalIncome(transactions))
	assert.Equal(t, 200.0, TotalExpenses(transactions))
	assert.Equal(t, 2300.0, Balance(transactions))
}

func TestTotalsOnEmptyCollection(t *testing.T) {
	assert.Equal(t, 0.0, TotalIncome(nil))
	assert.Equal(t, 0.0, TotalExpenses(nil))
	assert.Equal(t, 0.0, Balance(nil))
}

func TestRecentOrdersByDateDescending(t *testing.T) {
	transactions := []models.Transaction{
		expenseOn("2026-08-10", models.CategoryFood, 10),
		expenseOn("2026-08-25", models.CategoryFood, 20),
		expenseOn("2026-08-01", models.CategoryFood, 30),
	}

	recent := Recent(transactions, 2)

	assert.Len(t, recent, 2)
	assert.Equal(t, "2026-08-25", recent[0].Date)
	assert.Equal(t, "2026-08-10", recent[1].Date)
}

func TestRecentBreaksDateTiesByInsertionRecency(t *testing.T) {
	first := expenseOn("2026-08-10", models.CategoryFood, 10)
	second := expenseOn("2026-08-10", models.CategoryTravel, 20)
	transactions := []models.Transaction{first, second}

	recent := Recent(transactions, 2)

	assert.Equal(t, second.ID, recent[0].ID)
	assert.Equal(t, first.ID, recent[1].ID)
}

func TestRecentHandlesShortAndEmptyCollections(t *testing.T) {
	assert.Empty(t, Recent(nil, 5))
	assert.Empty(t, Recent([]models.Transaction{expenseOn("2026-08-10", models.CategoryFood, 1)}, 0))

	recent := Recent([]models.Transaction{expenseOn("2026-08-10", models.CategoryFood, 1)}, 5)
	assert.Len(t, recent, 1)
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-08-22", WindowStart(models.BudgetPeriodWeekly, now))
	assert.Equal(t, "2026-07-29", WindowStart(models.BudgetPeriodMonthly, now))
}

func TestWindowStartNormalizesShortMonths(t *testing.T) {
	// One month before March 31 normalizes past February's end.
	now := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-03", WindowStart(models.BudgetPeriodMonthly, now))
}

func TestComputeSpentFiltersByCategoryKindAndWindow(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	budget := models.Budget{
		ID:       uuid.New(),
		Category: models.CategoryFood,
		Amount:   500,
		Period:   models.BudgetPeriodWeekly,
	}

	transactions := []models.Transaction{
		expenseOn("2026-08-28", models.CategoryFood, 40),   // in window
		expenseOn("2026-08-22", models.CategoryFood, 10),   // boundary day counts
		expenseOn("2026-08-21", models.CategoryFood, 99),   // before window
		expenseOn("2026-08-28", models.CategoryTravel, 75), // other category
		incomeOn("2026-08-28", 2000),                       // income never counts
	}

	assert.Equal(t, 50.0, ComputeSpent(transactions, budget, now))
}

func TestComputeSpentMonthlyWindow(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	budget := models.Budget{
		ID:       uuid.New(),
		Category: models.CategoryBills,
		Amount:   300,
		Period:   models.BudgetPeriodMonthly,
	}

	transactions := []models.Transaction{
		expenseOn("2026-07-29", models.CategoryBills, 120), // boundary day counts
		expenseOn("2026-07-28", models.CategoryBills, 45),  // before window
		expenseOn("2026-08-15", models.CategoryBills, 60),
	}

	assert.Equal(t, 180.0, ComputeSpent(transactions, budget, now))
}

func TestComputeSpentAll(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	food := models.Budget{ID: uuid.New(), Category: models.CategoryFood, Amount: 500, Period: models.BudgetPeriodMonthly}
	travel := models.Budget{ID: uuid.New(), Category: models.CategoryTravel, Amount: 200, Period: models.BudgetPeriodWeekly}

	transactions := []models.Transaction{
		expenseOn("2026-08-10", models.CategoryFood, 100),
		expenseOn("2026-08-10", models.CategoryTravel, 80), // outside weekly window
		expenseOn("2026-08-27", models.CategoryTravel, 30),
	}

	spentByID := ComputeSpentAll(transactions, []models.Budget{food, travel}, now)

	assert.Equal(t, 100.0, spentByID[food.ID])
	assert.Equal(t, 30.0, spentByID[travel.ID])
}
