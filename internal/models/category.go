package models

// Category enumerations. Expense and income categories are disjoint sets;
// a transaction's category must belong to the set matching its kind.
const (
	CategoryFood          = "Food"
	CategoryTravel        = "Travel"
	CategoryBills         = "Bills"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryHealth        = "Health"

	CategorySalary     = "Salary"
	CategoryBusiness   = "Business"
	CategoryInvestment = "Investment"
	CategoryFreelance  = "Freelance"

	// CategoryOther is valid for both kinds.
	CategoryOther = "Other"
)

// ExpenseCategories lists the legal categories for expense transactions.
var ExpenseCategories = []string{
	CategoryFood,
	CategoryTravel,
	CategoryBills,
	CategoryShopping,
	CategoryEntertainment,
	CategoryHealth,
	CategoryOther,
}

// IncomeCategories lists the legal categories for income transactions.
var IncomeCategories = []string{
	CategorySalary,
	CategoryBusiness,
	CategoryInvestment,
	CategoryFreelance,
	CategoryOther,
}

var (
	expenseCategorySet = toSet(ExpenseCategories)
	incomeCategorySet  = toSet(IncomeCategories)
)

// IsValidCategoryForKind checks that the category belongs to the set
// matching the transaction kind.
func IsValidCategoryForKind(kind, category string) bool {
	switch kind {
	case TransactionKindExpense:
		return expenseCategorySet[category]
	case TransactionKindIncome:
		return incomeCategorySet[category]
	default:
		return false
	}
}

// IsValidExpenseCategory checks membership in the expense category set.
func IsValidExpenseCategory(category string) bool {
	return expenseCategorySet[category]
}

// IsValidCategory checks membership in either category set.
func IsValidCategory(category string) bool {
	return expenseCategorySet[category] || incomeCategorySet[category]
}

func toSet(categories []string) map[string]bool {
	set := make(map[string]bool, len(categories))
	for _, c := range categories {
		set[c] = true
	}
	return set
}
