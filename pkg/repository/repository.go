// Package repository defines the storage contracts of the transaction engine.
// Implementations live in infra; the engine only depends on these interfaces so
// it can be tested against an in-memory double.
package repository

import (
	"context"

	"github.com/amirasaad/ledger/pkg/dto"
)

// AccountRepository defines data access for the account store.
//
// GetForUpdate acquires the per-account write lock for the remainder of the
// enclosing unit of work; GetForShare acquires a read lock that excludes
// writers but admits other readers. Both return ledger.ErrAccountNotFound for
// an unknown id.
type AccountRepository interface {
	Get(ctx context.Context, id int64) (*dto.AccountRead, error)
	GetForUpdate(ctx context.Context, id int64) (*dto.AccountRead, error)
	GetForShare(ctx context.Context, id int64) (*dto.AccountRead, error)
	Create(ctx context.Context, create dto.AccountCreate) error
	UpdateBalance(ctx context.Context, id int64, balance int64) error
}

// OperationRepository defines data access for the append-only operation log.
type OperationRepository interface {
	Create(ctx context.Context, create dto.OperationCreate) error
	// ListRecent returns at most limit operations for the account, newest first.
	ListRecent(ctx context.Context, accountID int64, limit int) ([]dto.OperationRead, error)
}

// UnitOfWork provides a transaction boundary and repository access in one
// abstraction. All repositories obtained inside Do share the same storage
// transaction: either every write in fn commits, or none do. Locks taken by
// GetForUpdate/GetForShare are held until Do returns.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error
	AccountRepository() (AccountRepository, error)
	OperationRepository() (OperationRepository, error)
}
