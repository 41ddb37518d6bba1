package services

import (
	"fmt"
	"math/rand"
	"time"

	"pocket-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
)

type sampleDataGenerator struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
	now   func() time.Time
}

const (
	incomeEvery        = 10
	minExpenseAmount   = 3
	maxExpenseAmount   = 180
	minSalaryAmount    = 1200
	maxSalaryAmount    = 3500
	defaultBudgetFloor = 150
	defaultBudgetSpan  = 600
)

// NewSampleDataGenerator creates a generator for realistic development
// ledger data. A fixed seed keeps repeated seeds comparable.
func NewSampleDataGenerator(seed uint64) SampleDataGeneratorInterface {
	return &sampleDataGenerator{
		faker: gofakeit.New(seed),
		rng:   rand.New(rand.NewSource(int64(seed))),
		now:   time.Now,
	}
}

// GenerateTransactions produces count transaction inputs dated within
// the last days days. Roughly one in ten is an income entry so seeded
// ledgers show a positive balance.
func (g *sampleDataGenerator) GenerateTransactions(days, count int) []models.TransactionInput {
	if days <= 0 {
		days = 30
	}
	if count <= 0 {
		count = 40
	}

	inputs := make([]models.TransactionInput, 0, count)
	for i := 0; i < count; i++ {
		date := g.now().AddDate(0, 0, -g.rng.Intn(days)).Format(models.DateLayout)

		if i%incomeEvery == 0 {
			inputs = append(inputs, g.incomeInput(date))
			continue
		}
		inputs = append(inputs, g.expenseInput(date))
	}
	return inputs
}

func (g *sampleDataGenerator) expenseInput(date string) models.TransactionInput {
	category := models.ExpenseCategories[g.rng.Intn(len(models.ExpenseCategories))]

	return models.TransactionInput{
		Kind:        models.TransactionKindExpense,
		Amount:      roundCents(minExpenseAmount + g.rng.Float64()*(maxExpenseAmount-minExpenseAmount)),
		Category:    category,
		Description: g.expenseDescription(category),
		Date:        date,
		Notes:       g.maybeNote(),
	}
}

func (g *sampleDataGenerator) incomeInput(date string) models.TransactionInput {
	category := models.IncomeCategories[g.rng.Intn(len(models.IncomeCategories))]

	description := "Salary payment"
	switch category {
	case models.CategoryBusiness:
		description = fmt.Sprintf("Invoice from %s", g.faker.Company())
	case models.CategoryInvestment:
		description = "Dividend payout"
	case models.CategoryFreelance:
		description = fmt.Sprintf("Freelance work for %s", g.faker.Company())
	}

	return models.TransactionInput{
		Kind:        models.TransactionKindIncome,
		Amount:      roundCents(minSalaryAmount + g.rng.Float64()*(maxSalaryAmount-minSalaryAmount)),
		Category:    category,
		Description: description,
		Date:        date,
	}
}

func (g *sampleDataGenerator) expenseDescription(category string) string {
	switch category {
	case models.CategoryFood:
		return fmt.Sprintf("%s at %s", g.faker.RandomString([]string{"Lunch", "Dinner", "Groceries", "Coffee"}), g.faker.Company())
	case models.CategoryTravel:
		return fmt.Sprintf("Trip to %s", g.faker.City())
	case models.CategoryBills:
		return fmt.Sprintf("%s bill", g.faker.RandomString([]string{"Electricity", "Internet", "Phone", "Water"}))
	case models.CategoryShopping:
		return fmt.Sprintf("%s from %s", g.faker.ProductName(), g.faker.Company())
	case models.CategoryEntertainment:
		return g.faker.RandomString([]string{"Cinema tickets", "Concert", "Streaming subscription", "Video game"})
	case models.CategoryHealth:
		return g.faker.RandomString([]string{"Pharmacy", "Dentist appointment", "Gym membership"})
	default:
		return g.faker.ProductName()
	}
}

func (g *sampleDataGenerator) maybeNote() string {
	if g.rng.Intn(4) != 0 {
		return ""
	}
	return g.faker.Sentence(6)
}

// GenerateBudgets produces a ceiling for a handful of expense
// categories, mixing weekly and monthly periods.
func (g *sampleDataGenerator) GenerateBudgets() []models.BudgetInput {
	categories := []string{
		models.CategoryFood,
		models.CategoryTravel,
		models.CategoryShopping,
		models.CategoryEntertainment,
	}

	inputs := make([]models.BudgetInput, 0, len(categories))
	for i, category := range categories {
		period := models.BudgetPeriodMonthly
		if i%2 == 1 {
			period = models.BudgetPeriodWeekly
		}
		inputs = append(inputs, models.BudgetInput{
			Category: category,
			Amount:   roundCents(defaultBudgetFloor + g.rng.Float64()*defaultBudgetSpan),
			Period:   period,
		})
	}
	return inputs
}

func roundCents(amount float64) float64 {
	return float64(int(amount*100)) / 100
}
