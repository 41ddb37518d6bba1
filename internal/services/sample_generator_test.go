package services

import (
	"testing"

	"pocket-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTransactionsProducesValidInputs(t *testing.T) {
	generator := NewSampleDataGenerator(42)

	inputs := generator.GenerateTransactions(30, 40)
	require.Len(t, inputs, 40)

	var incomes int
	for _, input := range inputs {
		assert.NoError(t, input.Validate())
		if input.Kind == models.TransactionKindIncome {
			incomes++
		}
	}
	assert.Equal(t, 4, incomes)
}

func TestGenerateTransactionsDefaults(t *testing.T) {
	generator := NewSampleDataGenerator(42)

	inputs := generator.GenerateTransactions(0, 0)
	assert.Len(t, inputs, 40)
}

func TestGenerateBudgetsProducesValidDistinctCategories(t *testing.T) {
	generator := NewSampleDataGenerator(42)

	inputs := generator.GenerateBudgets()
	require.NotEmpty(t, inputs)

	seen := make(map[string]bool)
	for _, input := range inputs {
		assert.NoError(t, input.Validate())
		assert.False(t, seen[input.Category], "category %s repeated", input.Category)
		seen[input.Category] = true
	}
}
