package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Validation Invalid Date",
			code:     ValidationInvalidDate,
			expected: "Invalid date, expected YYYY-MM-DD",
		},
		{
			name:     "Transaction Not Found",
			code:     TransactionNotFound,
			expected: "Transaction not found",
		},
		{
			name:     "Transaction Invalid Amount",
			code:     TransactionInvalidAmount,
			expected: "Transaction amount must be greater than zero",
		},
		{
			name:     "Budget Duplicate Category",
			code:     BudgetDuplicateCategory,
			expected: "A budget for this category already exists",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage("INVALID_CODE")
	s.Equal("An error occurred", message)
}

// TestIsValidErrorCode_ValidCodes tests validation of valid error codes
func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	validCodes := []ErrorCode{
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationInvalidDate,
		ValidationInvalidCategory,
		TransactionNotFound,
		TransactionInvalidAmount,
		TransactionInvalidKind,
		BudgetNotFound,
		BudgetDuplicateCategory,
		BudgetInvalidAmount,
		BudgetInvalidPeriod,
		SystemInternalError,
		SystemPersistenceError,
		SystemRateLimitExceeded,
	}

	for _, code := range validCodes {
		s.True(IsValidErrorCode(code), "code %s should be valid", code)
	}
}

// TestIsValidErrorCode_InvalidCode tests validation of unknown error codes
func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCode() {
	s.False(IsValidErrorCode("NOPE_001"))
	s.False(IsValidErrorCode(""))
}
