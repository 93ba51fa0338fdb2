package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// Drop represents the drops table - one row per published piece of gated content.
// Gating parameters (coin + requirement) are frozen at creation; only status
// and the two counters change afterwards.
type Drop struct {
	// ID is the drop's public identifier
	ID string `gorm:"column:id;type:uuid;primaryKey"`
	// CreatorAddress is the normalized wallet address of the publishing creator
	CreatorAddress string `gorm:"column:creator_address;not null;type:text;index:idx_drops_creator"`
	// CreatorName is the creator's display name at creation time
	CreatorName string `gorm:"column:creator_name;not null;type:text"`
	// CreatorImage is an optional avatar URL
	CreatorImage *string `gorm:"column:creator_image;type:text"`
	// Title is the drop's display title
	Title string `gorm:"column:title;not null;type:text"`
	// Description is the drop's public description
	Description string `gorm:"column:description;not null;type:text;default:''"`
	// ContentType is the media kind of the gated content (video, audio, image, text)
	ContentType string `gorm:"column:content_type;not null;type:text"`
	// ContentURL points at the gated content itself
	ContentURL string `gorm:"column:content_url;not null;type:text"`
	// ThumbnailURL is an optional public preview image
	ThumbnailURL *string `gorm:"column:thumbnail_url;type:text"`
	// CoinAddress is the normalized contract address of the gating creator coin
	CoinAddress string `gorm:"column:coin_address;not null;type:text"`
	// CoinName and CoinSymbol are coin metadata snapshots from the registry
	CoinName   string `gorm:"column:coin_name;not null;type:text;default:''"`
	CoinSymbol string `gorm:"column:coin_symbol;not null;type:text;default:''"`
	// CoinDecimals is the coin's unit scale
	CoinDecimals int32 `gorm:"column:coin_decimals;not null;default:18"`
	// CoinPriceUSD is the USD price snapshot recorded at creation; null when
	// the registry had no price for the coin
	CoinPriceUSD decimal.NullDecimal `gorm:"column:coin_price_usd;type:numeric(38,18)"`
	// GatingMode denominates the requirement (token_count or usd_value)
	GatingMode string `gorm:"column:gating_mode;not null;type:text"`
	// GatingAmount is the required amount in the gating mode's denomination
	GatingAmount decimal.Decimal `gorm:"column:gating_amount;not null;type:numeric(38,18)"`
	// Status is the publication state (draft, active, archived)
	Status string `gorm:"column:status;not null;type:text;index:idx_drops_status"`
	// ViewCount is incremented once per view, not deduplicated by viewer
	ViewCount int64 `gorm:"column:view_count;not null;default:0"`
	// UnlockCount counts distinct viewers that unlocked the drop
	UnlockCount int64 `gorm:"column:unlock_count;not null;default:0"`
	// CreatedAt is the timestamp when this drop was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this drop was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Drop model
func (Drop) TableName() string {
	return "drops"
}
