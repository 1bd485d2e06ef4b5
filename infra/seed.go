package infra

import (
	"context"

	"github.com/amirasaad/ledger/infra/repository/account"
	"github.com/amirasaad/ledger/infra/repository/operation"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"gorm.io/gorm"
)

// SeedAccounts are the accounts provisioned out-of-band before the engine
// starts. Limits are in the smallest currency unit.
var SeedAccounts = []dto.AccountCreate{
	{ID: 1, Limit: 100000},
	{ID: 2, Limit: 80000},
	{ID: 3, Limit: 1000000},
	{ID: 4, Limit: 10000000},
	{ID: 5, Limit: 500000},
}

// Migrate creates the accounts and operations tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&account.Account{}, &operation.Operation{})
}

// Seed provisions the seed accounts. It is idempotent: existing rows keep
// their balance.
func Seed(ctx context.Context, uow repository.UnitOfWork) error {
	return uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		for _, seed := range SeedAccounts {
			if err := accountRepo.Create(ctx, seed); err != nil {
				return err
			}
		}
		return nil
	})
}
