// Package repository provides the gorm-backed unit of work and repository
// wiring for the ledger store.
package repository

import (
	"context"

	"github.com/amirasaad/ledger/infra/repository/account"
	"github.com/amirasaad/ledger/infra/repository/operation"
	"github.com/amirasaad/ledger/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories obtained inside Do are bound to the same database transaction,
// so the balance write and the log append commit together or not at all, and
// row locks taken by a repository hold until Do returns.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside a database transaction, providing a UoW whose
// repositories share that transaction. fn returning an error rolls back.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// AccountRepository implements repository.UnitOfWork.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return account.New(u.session()), nil
}

// OperationRepository implements repository.UnitOfWork.
func (u *UoW) OperationRepository() (repository.OperationRepository, error) {
	return operation.New(u.session()), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
