package dto

import (
	"pocket-ledger/internal/models"
)

// Budget Request DTOs

// CreateBudgetRequest represents the request payload for creating a spending ceiling
type CreateBudgetRequest struct {
	Category string  `json:"category" validate:"required,expense_category"`
	Amount   float64 `json:"amount" validate:"required,positive_amount"`
	Period   string  `json:"period" validate:"required,budget_period"`
}

// UpdateBudgetRequest represents the request payload for replacing a spending ceiling
type UpdateBudgetRequest struct {
	Category string  `json:"category" validate:"required,expense_category"`
	Amount   float64 `json:"amount" validate:"required,positive_amount"`
	Period   string  `json:"period" validate:"required,budget_period"`
}

// Input converts the request into the domain input type.
func (r *CreateBudgetRequest) Input() models.BudgetInput {
	return models.BudgetInput{
		Category: r.Category,
		Amount:   r.Amount,
		Period:   r.Period,
	}
}

// Input converts the request into the domain input type.
func (r *UpdateBudgetRequest) Input() models.BudgetInput {
	return models.BudgetInput{
		Category: r.Category,
		Amount:   r.Amount,
		Period:   r.Period,
	}
}

// Budget Response DTOs

// BudgetResponse represents a single budget in API responses
type BudgetResponse struct {
	Budget models.Budget `json:"budget"`
}

// BudgetListResponse represents the full budget collection
type BudgetListResponse struct {
	Budgets []models.Budget `json:"budgets"`
	Total   int             `json:"total"`
}

// BudgetStatus pairs a budget with its derived alert state
type BudgetStatus struct {
	Budget      models.Budget `json:"budget"`
	PercentUsed float64       `json:"percent_used"`
	AlertLevel  string        `json:"alert_level"`
	Overage     float64       `json:"overage"`
}

// BudgetStatusListResponse represents alert states for every budget
type BudgetStatusListResponse struct {
	Statuses []BudgetStatus `json:"statuses"`
	Total    int            `json:"total"`
}
