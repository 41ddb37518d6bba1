package handlers

import (
	"fmt"

	"pocket-ledger/internal/errors"
	"pocket-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseIDParam parses the :id path parameter as a UUID.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// parseDateRangeParams validates the optional start_date/end_date query
// parameters. Both must be supplied together.
func parseDateRangeParams(c echo.Context) (startDate, endDate string, err error) {
	startDate = c.QueryParam("start_date")
	endDate = c.QueryParam("end_date")

	if startDate == "" && endDate == "" {
		return "", "", nil
	}
	if startDate == "" || endDate == "" {
		return "", "", fmt.Errorf("start_date and end_date must be supplied together")
	}
	if !models.IsValidDate(startDate) || !models.IsValidDate(endDate) {
		return "", "", fmt.Errorf("dates must be valid calendar days in YYYY-MM-DD form")
	}
	if startDate > endDate {
		return "", "", fmt.Errorf("start_date must not be after end_date")
	}
	return startDate, endDate, nil
}

// parseTransactionFilters parses and validates the optional list filter
// query parameters. The returned code picks the API error to surface
// when validation fails.
func parseTransactionFilters(c echo.Context) (models.TransactionFilters, errors.ErrorCode, error) {
	var filters models.TransactionFilters

	startDate, endDate, err := parseDateRangeParams(c)
	if err != nil {
		return filters, errors.ValidationInvalidDate, err
	}
	filters.StartDate = startDate
	filters.EndDate = endDate

	if kind := c.QueryParam("kind"); kind != "" {
		if !models.IsValidTransactionKind(kind) {
			return filters, errors.TransactionInvalidKind, fmt.Errorf("kind must be 'income' or 'expense'")
		}
		filters.Kind = kind
	}

	if category := c.QueryParam("category"); category != "" {
		if !models.IsValidCategory(category) {
			return filters, errors.ValidationInvalidCategory, fmt.Errorf("unknown category %q", category)
		}
		filters.Category = category
	}

	return filters, "", nil
}

// inputErrorCode maps domain validation sentinels to API error codes.
func inputErrorCode(err error) errors.ErrorCode {
	switch err {
	case models.ErrInvalidTransactionKind:
		return errors.TransactionInvalidKind
	case models.ErrInvalidAmount:
		return errors.TransactionInvalidAmount
	case models.ErrInvalidDate:
		return errors.ValidationInvalidDate
	case models.ErrInvalidCategory, models.ErrInvalidBudgetCategory:
		return errors.ValidationInvalidCategory
	case models.ErrEmptyDescription:
		return errors.ValidationRequiredField
	case models.ErrInvalidBudgetAmount:
		return errors.BudgetInvalidAmount
	case models.ErrInvalidBudgetPeriod:
		return errors.BudgetInvalidPeriod
	default:
		return errors.ValidationGeneral
	}
}
