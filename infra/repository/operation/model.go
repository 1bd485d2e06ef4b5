package operation

import (
	"time"

	"github.com/google/uuid"
)

// Operation represents one persisted ledger operation. Rows are append-only:
// nothing updates or deletes them once written.
type Operation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID   int64     `gorm:"not null;index:idx_operations_account_occurred,priority:1"`
	Kind        string    `gorm:"type:varchar(1);not null"`
	Amount      int64     `gorm:"not null"`
	Description string    `gorm:"type:varchar(10);not null"`
	OccurredAt  time.Time `gorm:"not null;index:idx_operations_account_occurred,priority:2,sort:desc"`
}

// TableName specifies the table name for the Operation model.
func (Operation) TableName() string {
	return "operations"
}
