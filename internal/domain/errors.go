package domain

import (
	"errors"
	"fmt"
)

// Expected failure classes. Callers match with errors.Is; the HTTP layer maps
// each class to a status code without leaking storage internals.
var (
	ErrPeriodNotFound    = errors.New("budget period not found")
	ErrDuplicatePeriod   = errors.New("budget period already exists for this month")
	ErrInsufficientFunds = errors.New("insufficient budget funds")

	ErrRequestNotFound    = errors.New("supply request not found")
	ErrRequestNotOpen     = errors.New("supply request is not open")
	ErrRequestClosed      = errors.New("supply request is already closed")
	ErrDeadlinePassed     = errors.New("application deadline has passed")
	ErrDeadlineNotReached = errors.New("application deadline has not been reached")
	ErrDuplicateBid       = errors.New("supplier already has a bid on this request")
	ErrBidNotFound        = errors.New("bid not found")
	ErrSupplierHasNoBid   = errors.New("supplier has no bid on this request")

	ErrSalaryNotFound  = errors.New("salary record not found")
	ErrSalaryFinalized = errors.New("salary has already been paid or rejected")

	ErrUserNotFound     = errors.New("user not found")
	ErrSupplierNotFound = errors.New("supplier not found")

	ErrUnauthorized       = errors.New("principal is not allowed to perform this action")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
