package handlers

import (
	"net/http"

	"pocket-ledger/internal/dto"
	"pocket-ledger/internal/errors"
	"pocket-ledger/internal/repositories"
	"pocket-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// CreateBudget creates a spending ceiling for a category
// @Summary Create budget
// @Description Create a weekly or monthly spending ceiling for an expense category
// @Tags Budgets
// @Accept json
// @Produce json
// @Param request body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse "Created budget"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 409 {object} errors.ErrorResponse "BUDGET_002 - Category already budgeted"
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	budget, err := h.budgetService.CreateBudget(c.Request().Context(), req.Input())
	if err != nil {
		if err == repositories.ErrDuplicateCategory {
			return SendError(c, errors.BudgetDuplicateCategory)
		}
		if code := inputErrorCode(err); code != errors.ValidationGeneral {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.BudgetResponse{Budget: budget})
}

// ListBudgets retrieves the budget collection
// @Summary List budgets
// @Description Retrieve all budgets with their stored spent figures
// @Tags Budgets
// @Produce json
// @Success 200 {object} dto.BudgetListResponse "Budget collection"
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	budgets := h.budgetService.ListBudgets()

	return c.JSON(http.StatusOK, dto.BudgetListResponse{
		Budgets: budgets,
		Total:   len(budgets),
	})
}

// GetBudget retrieves a single budget
// @Summary Get budget
// @Description Retrieve a single budget by id
// @Tags Budgets
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Success 200 {object} dto.BudgetResponse "Budget"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid id"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	budget, err := h.budgetService.GetBudget(id)
	if err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetResponse{Budget: budget})
}

// UpdateBudget replaces a budget's content
// @Summary Update budget
// @Description Replace a budget's category, amount and period while keeping its identity
// @Tags Budgets
// @Accept json
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Param request body dto.UpdateBudgetRequest true "Replacement details"
// @Success 200 {object} dto.BudgetResponse "Updated budget"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Failure 409 {object} errors.ErrorResponse "BUDGET_002 - Category already budgeted"
// @Router /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	budget, err := h.budgetService.UpdateBudget(c.Request().Context(), id, req.Input())
	if err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		if err == repositories.ErrDuplicateCategory {
			return SendError(c, errors.BudgetDuplicateCategory)
		}
		if code := inputErrorCode(err); code != errors.ValidationGeneral {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetResponse{Budget: budget})
}

// DeleteBudget removes a budget
// @Summary Delete budget
// @Description Remove a budget without touching its category's transactions
// @Tags Budgets
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Success 200 {object} SuccessResponse "Deletion confirmation"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid id"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	if err := h.budgetService.DeleteBudget(c.Request().Context(), id); err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Budget deleted"})
}

// BudgetStatuses reports every budget's alert state
// @Summary Budget statuses
// @Description Classify every budget as normal, near limit or over budget
// @Tags Budgets
// @Produce json
// @Success 200 {object} dto.BudgetStatusListResponse "Alert states"
// @Router /budgets/status [get]
func (h *BudgetHandler) BudgetStatuses(c echo.Context) error {
	statuses := h.budgetService.BudgetStatuses()

	return c.JSON(http.StatusOK, dto.BudgetStatusListResponse{
		Statuses: statuses,
		Total:    len(statuses),
	})
}
