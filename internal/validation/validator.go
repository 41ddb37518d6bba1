package validation

import (
	"reflect"
	"strings"

	"pocket-ledger/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("txn_date", validateTransactionDate)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("transaction_kind", validateTransactionKind)
	_ = v.RegisterValidation("budget_period", validateBudgetPeriod)
	_ = v.RegisterValidation("expense_category", validateExpenseCategory)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateTransactionDate validates that a date is a real calendar day
// in YYYY-MM-DD form
func validateTransactionDate(fl validator.FieldLevel) bool {
	return models.IsValidDate(fl.Field().String())
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}

// validateTransactionKind validates that a kind is income or expense
func validateTransactionKind(fl validator.FieldLevel) bool {
	return models.IsValidTransactionKind(fl.Field().String())
}

// validateBudgetPeriod validates that a period is weekly or monthly
func validateBudgetPeriod(fl validator.FieldLevel) bool {
	period := fl.Field().String()
	return period == models.BudgetPeriodWeekly || period == models.BudgetPeriodMonthly
}

// validateExpenseCategory validates that a category can carry a budget
func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.IsValidExpenseCategory(fl.Field().String())
}
