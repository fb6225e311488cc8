package domain

import "errors"

var (
	// Directory errors
	ErrAccountNotFound = errors.New("account not found")
	ErrUserExists      = errors.New("user with this email already exists")

	// Operation errors
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidKind          = errors.New("unknown operation kind")
	ErrSameAccount          = errors.New("cannot transfer to same account")
	ErrCounterpartyMismatch = errors.New("counterparty must equal owner for self-funded operations")
	ErrOperationNotFound    = errors.New("operation not found")

	// ErrOperationFailed covers storage conflicts that survive retrying.
	ErrOperationFailed = errors.New("operation failed")
)
