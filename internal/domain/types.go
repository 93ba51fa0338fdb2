package domain

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// GatingMode selects how a drop's minimum holding is denominated
type GatingMode string

const (
	// GatingModeTokenCount gates on a fixed number of whole tokens
	GatingModeTokenCount GatingMode = "token_count"
	// GatingModeUSDValue gates on a USD amount converted into tokens at the
	// price recorded when the drop was created
	GatingModeUSDValue GatingMode = "usd_value"
)

// IsValidGatingMode checks if a gating mode is valid
func IsValidGatingMode(mode GatingMode) bool {
	return mode == GatingModeTokenCount || mode == GatingModeUSDValue
}

// DropStatus represents the publication state of a drop
type DropStatus string

const (
	DropStatusDraft    DropStatus = "draft"
	DropStatusActive   DropStatus = "active"
	DropStatusArchived DropStatus = "archived"
)

// IsValidDropStatus checks if a drop status is valid
func IsValidDropStatus(status DropStatus) bool {
	return status == DropStatusDraft ||
		status == DropStatusActive ||
		status == DropStatusArchived
}

// ContentType represents the media kind of a drop's gated content
type ContentType string

const (
	ContentTypeVideo ContentType = "video"
	ContentTypeAudio ContentType = "audio"
	ContentTypeImage ContentType = "image"
	ContentTypeText  ContentType = "text"
)

// IsValidContentType checks if a content type is valid
func IsValidContentType(ct ContentType) bool {
	return ct == ContentTypeVideo ||
		ct == ContentTypeAudio ||
		ct == ContentTypeImage ||
		ct == ContentTypeText
}

// requiredCountPrecision is the number of fractional digits kept when a USD
// gate is converted into a token count
const requiredCountPrecision = 18

// CreatorCoin holds the gating asset parameters frozen into a drop at creation.
// PriceUSD is the reference snapshot used to resolve USD-denominated gates;
// zero means no price was recorded.
type CreatorCoin struct {
	Address  string          `json:"address"`
	Name     string          `json:"name"`
	Symbol   string          `json:"symbol"`
	Decimals int32           `json:"decimals"`
	PriceUSD decimal.Decimal `json:"price_usd"`
}

// GatingRequirement is the minimum holding a viewer must have to unlock a drop
type GatingRequirement struct {
	Mode   GatingMode      `json:"mode"`
	Amount decimal.Decimal `json:"amount"`
}

// Validate checks the requirement fields
func (r GatingRequirement) Validate() error {
	if !IsValidGatingMode(r.Mode) {
		return ErrInvalidConfiguration
	}
	if r.Amount.IsNegative() {
		return ErrInvalidConfiguration
	}
	return nil
}

// RequiredTokenCount resolves the requirement into whole-token units.
// USD-denominated gates divide by the coin's recorded price snapshot and fail
// with ErrInvalidConfiguration when no positive price was recorded.
func (r GatingRequirement) RequiredTokenCount(coin CreatorCoin) (decimal.Decimal, error) {
	if err := r.Validate(); err != nil {
		return decimal.Zero, err
	}

	switch r.Mode {
	case GatingModeTokenCount:
		return r.Amount, nil
	case GatingModeUSDValue:
		if coin.PriceUSD.Sign() <= 0 {
			return decimal.Zero, ErrInvalidConfiguration
		}
		return r.Amount.DivRound(coin.PriceUSD, requiredCountPrecision), nil
	default:
		return decimal.Zero, ErrInvalidConfiguration
	}
}

// AccessDecision is the result of evaluating a viewer's balance against a
// drop's gating requirement. It is a value type and never persisted.
type AccessDecision struct {
	Granted            bool            `json:"granted"`
	ViewerBalance      decimal.Decimal `json:"viewer_balance"`
	RequiredTokenCount decimal.Decimal `json:"required_token_count"`
	Shortfall          decimal.Decimal `json:"shortfall"`
}

// UnlockOutcome reports whether an unlock attempt inserted a new record.
// A repeated unlock by the same viewer is a success with Created = false.
type UnlockOutcome struct {
	Created bool `json:"created"`
}

// UnlockResult pairs the access decision with the ledger outcome for a
// composed unlock call
type UnlockResult struct {
	Decision AccessDecision `json:"decision"`
	Created  bool           `json:"created"`
}

// Drop is a unit of gated content published by a creator
type Drop struct {
	ID             string            `json:"id"`
	CreatorAddress string            `json:"creator_address"`
	CreatorName    string            `json:"creator_name"`
	CreatorImage   string            `json:"creator_image,omitempty"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	ContentType    ContentType       `json:"content_type"`
	ContentURL     string            `json:"content_url"`
	ThumbnailURL   string            `json:"thumbnail_url,omitempty"`
	Coin           CreatorCoin       `json:"coin"`
	Requirement    GatingRequirement `json:"requirement"`
	Status         DropStatus        `json:"status"`
	ViewCount      int64             `json:"view_count"`
	UnlockCount    int64             `json:"unlock_count"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// UnlockRecord is an audit row from the unlock ledger
type UnlockRecord struct {
	DropID          string          `json:"drop_id"`
	WalletAddress   string          `json:"wallet_address"`
	BalanceAtUnlock decimal.Decimal `json:"balance_at_unlock"`
	RecordedAt      time.Time       `json:"recorded_at"`
}

// DropEventType represents the kind of drop activity event
type DropEventType string

const (
	DropEventView   DropEventType = "view"
	DropEventUnlock DropEventType = "unlock"
)

// DropEvent is the normalized drop activity event published to the event feed
type DropEvent struct {
	DropID        string          `json:"drop_id"`
	EventType     DropEventType   `json:"event_type"`
	WalletAddress string          `json:"wallet_address,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	Timestamp     time.Time       `json:"timestamp"`
}

// ValidAddress checks if an address is a valid hex wallet or contract address
func ValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// NormalizeAddress lower-cases an address so that case variants of the same
// wallet or contract compare and persist identically
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
