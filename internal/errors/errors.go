// Package errors provides custom error types for the Accrue backend.
// All service-layer errors use AppError so that callers can distinguish
// recoverable conditions (not found, invalid input) from fatal store
// failures without parsing message strings.
package errors

// Kind classifies an AppError for callers that branch on failure mode.
type Kind int

const (
	// KindValidation marks input that violates an enum constraint or a
	// business rule.
	KindValidation Kind = iota
	// KindNotFound marks a referenced id that does not exist.
	KindNotFound
	// KindConflict marks an operation rejected because of the current
	// state of another record.
	KindConflict
	// KindStorage marks an underlying store failure (constraint
	// violation, I/O error).
	KindStorage
	// KindUnavailable marks a failure to get exclusive access to the
	// store. It is fatal to the operation and never retried.
	KindUnavailable
)

// AppError represents a structured application error with a stable error
// code, a human-readable message, a failure kind, and an optional internal
// error.
type AppError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Kind     Kind   `json:"-"`
	Internal error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/kind but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  sentinel.Message,
		Kind:     sentinel.Kind,
		Internal: internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  message,
		Kind:     sentinel.Kind,
		Internal: sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput     = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", Kind: KindValidation}
	ErrNotFound         = &AppError{Code: "NOT_FOUND", Message: "Resource not found", Kind: KindNotFound}
	ErrStoreFailure     = &AppError{Code: "STORE_FAILURE", Message: "The store operation failed", Kind: KindStorage}
	ErrStoreUnavailable = &AppError{Code: "STORE_UNAVAILABLE", Message: "The store is locked by another operation", Kind: KindUnavailable}
)

// Account errors.
var (
	ErrAccountNotFound = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", Kind: KindNotFound}
)

// Category errors.
var (
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", Kind: KindNotFound}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", Kind: KindNotFound}
	ErrTransferLegLocked   = &AppError{Code: "TRANSFER_LEG_LOCKED", Message: "Transfer legs can only be changed through their transfer", Kind: KindConflict}
)

// Transfer errors.
var (
	ErrTransferNotFound    = &AppError{Code: "TRANSFER_NOT_FOUND", Message: "Transfer not found", Kind: KindNotFound}
	ErrSameAccountTransfer = &AppError{Code: "SAME_ACCOUNT_TRANSFER", Message: "Cannot transfer to the same account", Kind: KindValidation}
)
