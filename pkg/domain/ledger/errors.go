package ledger

import "errors"

var (
	// ErrAccountNotFound is returned when the referenced account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidKind is returned when an operation kind is neither credit nor debit.
	ErrInvalidKind = errors.New("invalid operation kind")

	// ErrInvalidAmount is returned when an operation amount is not a positive integer.
	ErrInvalidAmount = errors.New("operation amount must be positive")

	// ErrInvalidDescription is returned when an operation description is empty or
	// longer than MaxDescriptionLen.
	ErrInvalidDescription = errors.New("invalid operation description")

	// ErrLimitExceeded is returned when a debit would push the balance below the
	// account's credit floor. The request was well-formed; the business rule rejected it.
	ErrLimitExceeded = errors.New("operation exceeds account limit")

	// ErrStorage wraps any fault of the durable store. The outcome of the attempted
	// operation is indeterminate from the caller's point of view.
	ErrStorage = errors.New("storage error")
)
