package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	TransactionKindIncome  = "income"
	TransactionKindExpense = "expense"

	// DateLayout is the fixed textual format for transaction dates.
	// Dates carry no time-of-day component.
	DateLayout = "2006-01-02"
)

var (
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrEmptyDescription       = errors.New("transaction description is required")
	ErrInvalidDate            = errors.New("transaction date must match YYYY-MM-DD")
	ErrInvalidCategory        = errors.New("invalid category for transaction kind")
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Transaction represents a single recorded income or expense event.
type Transaction struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionInput holds the caller-supplied fields of a transaction.
// The store assigns the id.
type TransactionInput struct {
	Kind        string
	Amount      float64
	Category    string
	Description string
	Date        string
	Notes       string
}

// Validate checks the input against the persistence invariants: positive
// amount, non-empty description, well-formed date and a category that is
// legal for the kind.
func (in *TransactionInput) Validate() error {
	if !IsValidTransactionKind(in.Kind) {
		return ErrInvalidTransactionKind
	}

	if in.Amount <= 0 {
		return ErrInvalidAmount
	}

	if strings.TrimSpace(in.Description) == "" {
		return ErrEmptyDescription
	}

	if !IsValidDate(in.Date) {
		return ErrInvalidDate
	}

	if !IsValidCategoryForKind(in.Kind, in.Category) {
		return ErrInvalidCategory
	}

	return nil
}

// Transaction builds a persisted Transaction from the input, trimming the
// description and assigning the given id.
func (in *TransactionInput) Transaction(id uuid.UUID, now time.Time) Transaction {
	return Transaction{
		ID:          id,
		Kind:        in.Kind,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: strings.TrimSpace(in.Description),
		Date:        in.Date,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsIncome returns true for income transactions.
func (t *Transaction) IsIncome() bool {
	return t.Kind == TransactionKindIncome
}

// IsExpense returns true for expense transactions.
func (t *Transaction) IsExpense() bool {
	return t.Kind == TransactionKindExpense
}

// IsValidTransactionKind checks if the transaction kind is valid.
func IsValidTransactionKind(kind string) bool {
	switch kind {
	case TransactionKindIncome, TransactionKindExpense:
		return true
	default:
		return false
	}
}

// IsValidDate reports whether a date string matches the fixed YYYY-MM-DD
// format and denotes a real calendar date.
func IsValidDate(date string) bool {
	if !datePattern.MatchString(date) {
		return false
	}
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// TransactionFilters contains filtering options for transaction queries.
// Date bounds are inclusive; string comparison is valid because of the
// fixed YYYY-MM-DD format.
type TransactionFilters struct {
	StartDate string
	EndDate   string
	Kind      string
	Category  string
}

// Active reports whether any filter field is set.
func (f *TransactionFilters) Active() bool {
	return f.StartDate != "" || f.EndDate != "" || f.Kind != "" || f.Category != ""
}

// Matches reports whether a transaction passes every set filter field.
// Empty fields match everything; date bounds are inclusive.
func (f *TransactionFilters) Matches(t *Transaction) bool {
	if f.StartDate != "" && t.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && t.Date > f.EndDate {
		return false
	}
	if f.Kind != "" && t.Kind != f.Kind {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	return true
}
