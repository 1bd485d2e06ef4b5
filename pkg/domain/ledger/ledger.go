// Package ledger holds the domain rules of the ledger core: operation kinds,
// input bounds, and the error taxonomy the engine exposes.
//
// Invariants:
//   - An account's balance never drops below -limit after a committed operation.
//   - Operations are immutable once written; the log is append-only.
//   - Only the transaction engine mutates an account's balance.
package ledger

// Description length bounds, in bytes.
const (
	MinDescriptionLen = 1
	MaxDescriptionLen = 10
)

// Kind is the type of a ledger operation. The values are the single-letter codes
// used on the wire and in storage.
type Kind string

const (
	// KindCredit increases the account balance.
	KindCredit Kind = "c"
	// KindDebit decreases the account balance, bounded by the credit limit.
	KindDebit Kind = "d"
)

// ParseKind converts a wire code into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindCredit:
		return KindCredit, nil
	case KindDebit:
		return KindDebit, nil
	default:
		return "", ErrInvalidKind
	}
}

// Valid reports whether k is one of the known operation kinds.
func (k Kind) Valid() bool {
	return k == KindCredit || k == KindDebit
}

// Delta returns the signed balance change for an operation of this kind.
func (k Kind) Delta(amount int64) int64 {
	if k == KindDebit {
		return -amount
	}
	return amount
}

// ValidateAmount checks that amount is a strictly positive integer.
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateDescription checks the description length bounds.
func ValidateDescription(description string) error {
	if len(description) < MinDescriptionLen || len(description) > MaxDescriptionLen {
		return ErrInvalidDescription
	}
	return nil
}
