package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/revel-xyz/revel-gate/internal/domain"
)

// CoinResponse represents the coin snapshot embedded in a drop
type CoinResponse struct {
	Address  string          `json:"address"`
	Name     string          `json:"name,omitempty"`
	Symbol   string          `json:"symbol,omitempty"`
	Decimals int32           `json:"decimals"`
	PriceUSD decimal.Decimal `json:"price_usd"`
}

// DropResponse represents a drop in API responses
type DropResponse struct {
	ID             string          `json:"id"`
	CreatorAddress string          `json:"creator_address"`
	CreatorName    string          `json:"creator_name,omitempty"`
	CreatorImage   string          `json:"creator_image,omitempty"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	ContentType    string          `json:"content_type"`
	ContentURL     string          `json:"content_url"`
	ThumbnailURL   string          `json:"thumbnail_url,omitempty"`
	Coin           CoinResponse    `json:"coin"`
	GatingMode     string          `json:"gating_mode"`
	GatingAmount   decimal.Decimal `json:"gating_amount"`
	Status         string          `json:"status"`
	ViewCount      int64           `json:"view_count"`
	UnlockCount    int64           `json:"unlock_count"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewDropResponse maps a drop to its API representation
func NewDropResponse(drop *domain.Drop) *DropResponse {
	return &DropResponse{
		ID:             drop.ID,
		CreatorAddress: drop.CreatorAddress,
		CreatorName:    drop.CreatorName,
		CreatorImage:   drop.CreatorImage,
		Title:          drop.Title,
		Description:    drop.Description,
		ContentType:    string(drop.ContentType),
		ContentURL:     drop.ContentURL,
		ThumbnailURL:   drop.ThumbnailURL,
		Coin: CoinResponse{
			Address:  drop.Coin.Address,
			Name:     drop.Coin.Name,
			Symbol:   drop.Coin.Symbol,
			Decimals: drop.Coin.Decimals,
			PriceUSD: drop.Coin.PriceUSD,
		},
		GatingMode:   string(drop.Requirement.Mode),
		GatingAmount: drop.Requirement.Amount,
		Status:       string(drop.Status),
		ViewCount:    drop.ViewCount,
		UnlockCount:  drop.UnlockCount,
		CreatedAt:    drop.CreatedAt,
		UpdatedAt:    drop.UpdatedAt,
	}
}

// ListDropsResponse represents a page of drops
type ListDropsResponse struct {
	Drops []*DropResponse `json:"drops"`
}

// AccessResponse represents an access evaluation result
type AccessResponse struct {
	Granted            bool            `json:"granted"`
	ViewerBalance      decimal.Decimal `json:"viewer_balance"`
	RequiredTokenCount decimal.Decimal `json:"required_token_count"`
	Shortfall          decimal.Decimal `json:"shortfall"`
}

// NewAccessResponse maps an access decision to its API representation
func NewAccessResponse(decision domain.AccessDecision) *AccessResponse {
	return &AccessResponse{
		Granted:            decision.Granted,
		ViewerBalance:      decision.ViewerBalance,
		RequiredTokenCount: decision.RequiredTokenCount,
		Shortfall:          decision.Shortfall,
	}
}

// UnlockResponse represents the outcome of an unlock attempt
type UnlockResponse struct {
	Granted            bool            `json:"granted"`
	Created            bool            `json:"created"`
	ViewerBalance      decimal.Decimal `json:"viewer_balance"`
	RequiredTokenCount decimal.Decimal `json:"required_token_count"`
	Shortfall          decimal.Decimal `json:"shortfall"`
}

// NewUnlockResponse maps an unlock result to its API representation
func NewUnlockResponse(result domain.UnlockResult) *UnlockResponse {
	return &UnlockResponse{
		Granted:            result.Decision.Granted,
		Created:            result.Created,
		ViewerBalance:      result.Decision.ViewerBalance,
		RequiredTokenCount: result.Decision.RequiredTokenCount,
		Shortfall:          result.Decision.Shortfall,
	}
}

// UnlockStatusResponse represents whether a wallet has unlocked a drop
type UnlockStatusResponse struct {
	DropID        string `json:"drop_id"`
	WalletAddress string `json:"wallet_address"`
	Unlocked      bool   `json:"unlocked"`
}

// UnlockRecordResponse represents one row from a drop's unlock ledger
type UnlockRecordResponse struct {
	WalletAddress   string          `json:"wallet_address"`
	BalanceAtUnlock decimal.Decimal `json:"balance_at_unlock"`
	RecordedAt      time.Time       `json:"recorded_at"`
}

// ListUnlocksResponse represents a page of unlock records
type ListUnlocksResponse struct {
	DropID  string                  `json:"drop_id"`
	Unlocks []*UnlockRecordResponse `json:"unlocks"`
}
