package account

import (
	"context"
	"errors"

	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/dto"
	repo "github.com/amirasaad/ledger/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository using the provided *gorm.DB. The session
// is expected to be the transaction of the enclosing unit of work, so any row
// lock taken here holds until that transaction ends.
func New(db *gorm.DB) repo.AccountRepository {
	return &repository{db: db}
}

// Get implements repository.AccountRepository.
func (r *repository) Get(ctx context.Context, id int64) (*dto.AccountRead, error) {
	return r.get(ctx, id)
}

// GetForUpdate reads the account row under FOR UPDATE, serializing all
// concurrent writers of the same account for the rest of the transaction.
func (r *repository) GetForUpdate(ctx context.Context, id int64) (*dto.AccountRead, error) {
	return r.get(ctx, id, clause.Locking{Strength: clause.LockingStrengthUpdate})
}

// GetForShare reads the account row under FOR SHARE: concurrent readers are
// admitted, writers are excluded until the transaction ends.
func (r *repository) GetForShare(ctx context.Context, id int64) (*dto.AccountRead, error) {
	return r.get(ctx, id, clause.Locking{Strength: clause.LockingStrengthShare})
}

func (r *repository) get(ctx context.Context, id int64, conds ...clause.Expression) (*dto.AccountRead, error) {
	tx := r.db.WithContext(ctx)
	for _, c := range conds {
		tx = tx.Clauses(c)
	}
	var acct Account
	if err := tx.First(&acct, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

// Create implements repository.AccountRepository. Provisioning is idempotent:
// an existing row is left untouched.
func (r *repository) Create(ctx context.Context, create dto.AccountCreate) error {
	acct := Account{ID: create.ID, Limit: create.Limit, Balance: create.Balance}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&acct).Error
}

// UpdateBalance implements repository.AccountRepository.
func (r *repository) UpdateBalance(ctx context.Context, id int64, balance int64) error {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Update("balance", balance)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ledger.ErrAccountNotFound
	}
	return nil
}

// mapModelToDTO maps a gorm model to a read-optimized DTO.
func mapModelToDTO(acct *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:        acct.ID,
		Limit:     acct.Limit,
		Balance:   acct.Balance,
		CreatedAt: acct.CreatedAt,
	}
}
