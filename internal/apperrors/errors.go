package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller may not act on the requested entity.
var ErrForbidden = errors.New("forbidden")

// Ledger invariant kinds. Each one is also an ErrValidation.
var (
	ErrMissingAccountType     = errors.New("account type is required")
	ErrInvalidCategoryType    = errors.New("category type does not match account type")
	ErrHangingTransactions    = errors.New("account has hanging transactions")
	ErrPeriodNotFound         = errors.New("reporting period not found")
	ErrUnclearableTransaction = errors.New("transaction cannot be cleared")
)

// AppError carries an HTTP status hint together with the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewValidationError wraps ErrValidation with a message.
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}

// NewNotFoundError wraps ErrNotFound with a message.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// MissingAccountTypeError is raised when an account is saved without a classification.
type MissingAccountTypeError struct{}

func (MissingAccountTypeError) Error() string {
	return "an account must have a type"
}

func (MissingAccountTypeError) Is(target error) bool {
	return target == ErrMissingAccountType || target == ErrValidation
}

// InvalidCategoryTypeError is raised when an account's category belongs to a different account type.
type InvalidCategoryTypeError struct {
	AccountType  string
	CategoryType string
}

func (e *InvalidCategoryTypeError) Error() string {
	return fmt.Sprintf("cannot assign a %s account to a %s category", e.AccountType, e.CategoryType)
}

func (e *InvalidCategoryTypeError) Is(target error) bool {
	return target == ErrInvalidCategoryType || target == ErrValidation
}

// HangingTransactionsError is raised when deleting an account whose closing balance is not zero.
type HangingTransactionsError struct {
	AccountID string
	Balance   string
}

func (e *HangingTransactionsError) Error() string {
	if e.Balance == "" {
		return fmt.Sprintf("account %s cannot be deleted because it received postings during deletion", e.AccountID)
	}
	return fmt.Sprintf("account %s cannot be deleted because it has a closing balance of %s", e.AccountID, e.Balance)
}

func (e *HangingTransactionsError) Is(target error) bool {
	return target == ErrHangingTransactions || target == ErrValidation
}

// PeriodNotFoundError is raised when no reporting period exists for the requested year.
type PeriodNotFoundError struct {
	EntityID string
	Year     int
}

func (e *PeriodNotFoundError) Error() string {
	return fmt.Sprintf("no reporting period found for year %d", e.Year)
}

func (e *PeriodNotFoundError) Is(target error) bool {
	return target == ErrPeriodNotFound || target == ErrNotFound
}

// UnclearableTransactionError is raised when a clearing pair violates the type table.
// Both fields hold human readable labels.
type UnclearableTransactionError struct {
	TransactionType string
	Allowed         []string
}

func (e *UnclearableTransactionError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("%s transactions cannot be cleared", e.TransactionType)
	}
	return fmt.Sprintf("%s transaction cannot be cleared by this transaction type, only %s transactions may clear it",
		e.TransactionType, strings.Join(e.Allowed, ", "))
}

func (e *UnclearableTransactionError) Is(target error) bool {
	return target == ErrUnclearableTransaction || target == ErrValidation
}
