package handlers

import (
	"net/http"

	"pocket-ledger/internal/dto"
	"pocket-ledger/internal/errors"
	"pocket-ledger/internal/repositories"
	"pocket-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction records a new transaction
// @Summary Record transaction
// @Description Record an income or expense entry in the ledger
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse "Recorded transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request().Context(), req.Input())
	if err != nil {
		if code := inputErrorCode(err); code != errors.ValidationGeneral {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.TransactionResponse{Transaction: transaction})
}

// ListTransactions retrieves the transaction collection
// @Summary List transactions
// @Description Retrieve all transactions, optionally narrowed to an inclusive date range, a kind or a category
// @Tags Transactions
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Param kind query string false "Transaction kind (income or expense)"
// @Param category query string false "Category name"
// @Success 200 {object} dto.TransactionListResponse "Transaction collection"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid filter parameters"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filters, code, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, code, errors.WithDetails(err.Error()))
	}

	transactions := h.transactionService.ListTransactions()
	if filters.Active() {
		transactions = h.transactionService.ListTransactionsFiltered(filters)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
		StartDate:    filters.StartDate,
		EndDate:      filters.EndDate,
		Kind:         filters.Kind,
		Category:     filters.Category,
	})
}

// GetTransaction retrieves a single transaction
// @Summary Get transaction
// @Description Retrieve a single transaction by id
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse "Transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid id"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionService.GetTransaction(id)
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{Transaction: transaction})
}

// UpdateTransaction replaces a transaction's content
// @Summary Update transaction
// @Description Replace every field of a transaction while keeping its identity
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Replacement details"
// @Success 200 {object} dto.TransactionResponse "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Request().Context(), id, req.Input())
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		if code := inputErrorCode(err); code != errors.ValidationGeneral {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{Transaction: transaction})
}

// DeleteTransaction removes a transaction
// @Summary Delete transaction
// @Description Remove a transaction from the ledger
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} SuccessResponse "Deletion confirmation"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid id"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.DeleteTransaction(c.Request().Context(), id); err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Transaction deleted"})
}
