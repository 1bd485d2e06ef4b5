// Package dto defines the data transfer objects crossing the service and
// repository boundaries.
package dto

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/google/uuid"
)

// AccountCreate carries the fields needed to provision an account.
type AccountCreate struct {
	ID      int64
	Limit   int64
	Balance int64
}

// AccountRead is a read-optimized view of an account row.
type AccountRead struct {
	ID        int64
	Limit     int64
	Balance   int64
	CreatedAt time.Time
}

// Floor is the lowest balance the account may reach.
func (a AccountRead) Floor() int64 {
	return -a.Limit
}

// OperationCreate carries one accepted operation to the log.
type OperationCreate struct {
	ID          uuid.UUID
	AccountID   int64
	Kind        ledger.Kind
	Amount      int64
	Description string
	OccurredAt  time.Time
}

// OperationRead is a read-optimized view of one logged operation.
type OperationRead struct {
	Kind        ledger.Kind
	Amount      int64
	Description string
	OccurredAt  time.Time
}

// BalanceSnapshot is the state returned with every accepted operation.
type BalanceSnapshot struct {
	Balance int64
	Limit   int64
}

// StatementRead is a point-in-time view of an account: its balance and limit
// together with the most recent operations, newest first.
type StatementRead struct {
	Balance    int64
	Limit      int64
	QueriedAt  time.Time
	Operations []OperationRead
}
