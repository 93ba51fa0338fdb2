package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unlock represents the unlocks table - at most one row per (drop, wallet)
// pair. The composite unique index is what makes recording an unlock
// idempotent under concurrent attempts.
type Unlock struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// DropID references the unlocked drop
	DropID string `gorm:"column:drop_id;not null;type:uuid;uniqueIndex:idx_unlocks_drop_wallet,priority:1"`
	// WalletAddress is the normalized wallet address of the unlocking viewer
	WalletAddress string `gorm:"column:wallet_address;not null;type:text;uniqueIndex:idx_unlocks_drop_wallet,priority:2"`
	// BalanceAtUnlock is the viewer's coin balance snapshot at unlock time,
	// recorded for audit and never recomputed
	BalanceAtUnlock decimal.Decimal `gorm:"column:balance_at_unlock;not null;type:numeric(38,18)"`
	// CreatedAt is the timestamp when the unlock was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Drop Drop `gorm:"foreignKey:DropID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Unlock model
func (Unlock) TableName() string {
	return "unlocks"
}
