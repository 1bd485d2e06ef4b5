package operation

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/dto"
	repo "github.com/amirasaad/ledger/pkg/repository"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates an operation repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.OperationRepository {
	return &repository{db: db}
}

// Create implements repository.OperationRepository.
func (r *repository) Create(ctx context.Context, create dto.OperationCreate) error {
	op := Operation{
		ID:          create.ID,
		AccountID:   create.AccountID,
		Kind:        string(create.Kind),
		Amount:      create.Amount,
		Description: create.Description,
		OccurredAt:  create.OccurredAt,
	}
	return r.db.WithContext(ctx).Create(&op).Error
}

// ListRecent implements repository.OperationRepository.
func (r *repository) ListRecent(ctx context.Context, accountID int64, limit int) ([]dto.OperationRead, error) {
	var ops []Operation
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&ops).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.OperationRead, 0, len(ops))
	for i := range ops {
		out = append(out, dto.OperationRead{
			Kind:        ledger.Kind(ops[i].Kind),
			Amount:      ops[i].Amount,
			Description: ops[i].Description,
			OccurredAt:  ops[i].OccurredAt,
		})
	}
	return out, nil
}
