package dto

import (
	"pocket-ledger/internal/models"
)

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	Kind        string  `json:"kind" validate:"required,transaction_kind"`
	Amount      float64 `json:"amount" validate:"required,positive_amount"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Date        string  `json:"date" validate:"required,txn_date"`
	Notes       string  `json:"notes" validate:"omitempty,max=500"`
}

// UpdateTransactionRequest represents the request payload for replacing a transaction
type UpdateTransactionRequest struct {
	Kind        string  `json:"kind" validate:"required,transaction_kind"`
	Amount      float64 `json:"amount" validate:"required,positive_amount"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Date        string  `json:"date" validate:"required,txn_date"`
	Notes       string  `json:"notes" validate:"omitempty,max=500"`
}

// Input converts the request into the domain input type.
func (r *CreateTransactionRequest) Input() models.TransactionInput {
	return models.TransactionInput{
		Kind:        r.Kind,
		Amount:      r.Amount,
		Category:    r.Category,
		Description: r.Description,
		Date:        r.Date,
		Notes:       r.Notes,
	}
}

// Input converts the request into the domain input type.
func (r *UpdateTransactionRequest) Input() models.TransactionInput {
	return models.TransactionInput{
		Kind:        r.Kind,
		Amount:      r.Amount,
		Category:    r.Category,
		Description: r.Description,
		Date:        r.Date,
		Notes:       r.Notes,
	}
}

// Transaction Response DTOs

// TransactionResponse represents a single transaction in API responses
type TransactionResponse struct {
	Transaction models.Transaction `json:"transaction"`
}

// TransactionListResponse represents the full transaction collection,
// optionally narrowed by the applied filters
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
	StartDate    string               `json:"start_date,omitempty"`
	EndDate      string               `json:"end_date,omitempty"`
	Kind         string               `json:"kind,omitempty"`
	Category     string               `json:"category,omitempty"`
}
