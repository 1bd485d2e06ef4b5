package account

import "time"

// Account represents an account row. Limit is immutable after provisioning;
// Balance is mutated only by the transaction engine under the row lock.
type Account struct {
	ID        int64 `gorm:"primaryKey"`
	Limit     int64 `gorm:"column:limit;not null"`
	Balance   int64 `gorm:"not null;default:0"`
	CreatedAt time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
