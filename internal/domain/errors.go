package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInactiveAccount   = errors.New("account is inactive")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDuplicateCPF      = errors.New("cpf already registered")
	ErrMissingField      = errors.New("required field missing")
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// InsufficientFundsError carries the available balance so callers can report
// it without a second lookup. errors.Is(err, ErrInsufficientFunds) matches.
type InsufficientFundsError struct {
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: available %s", e.Available)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
