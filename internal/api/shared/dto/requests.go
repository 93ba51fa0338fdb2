package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	apierrors "github.com/revel-xyz/revel-gate/internal/api/shared/errors"
	"github.com/revel-xyz/revel-gate/internal/domain"
)

// CreateDropRequest represents the request body for creating a drop
type CreateDropRequest struct {
	CreatorAddress string `json:"creator_address"`
	CreatorName    string `json:"creator_name"`
	CreatorImage   string `json:"creator_image,omitempty"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	ContentType    string `json:"content_type"`
	ContentURL     string `json:"content_url"`
	ThumbnailURL   string `json:"thumbnail_url,omitempty"`
	CoinAddress    string `json:"coin_address"`
	GatingMode     string `json:"gating_mode"`
	GatingAmount   string `json:"gating_amount"`
	Publish        bool   `json:"publish,omitempty"`
}

// Validate validates the request body
func (r *CreateDropRequest) Validate() error {
	if r.Title == "" {
		return apierrors.NewValidationError("title is required")
	}
	if r.ContentURL == "" {
		return apierrors.NewValidationError("content_url is required")
	}
	if !domain.ValidAddress(r.CreatorAddress) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid creator_address: %s", r.CreatorAddress))
	}
	if !domain.ValidAddress(r.CoinAddress) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid coin_address: %s", r.CoinAddress))
	}
	if !domain.IsValidContentType(domain.ContentType(r.ContentType)) {
		return apierrors.NewValidationError(fmt.Sprintf("unsupported content_type: %s", r.ContentType))
	}
	if !domain.IsValidGatingMode(domain.GatingMode(r.GatingMode)) {
		return apierrors.NewValidationError(fmt.Sprintf("unsupported gating_mode: %s", r.GatingMode))
	}

	amount, err := decimal.NewFromString(r.GatingAmount)
	if err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("malformed gating_amount: %s", r.GatingAmount))
	}
	if amount.IsNegative() {
		return apierrors.NewValidationError("gating_amount must be non-negative")
	}

	return nil
}

// UpdateDropStatusRequest represents the request body for transitioning a drop's status
type UpdateDropStatusRequest struct {
	Status string `json:"status"`
}

// Validate validates the request body
func (r *UpdateDropStatusRequest) Validate() error {
	if r.Status == "" {
		return apierrors.NewValidationError("status is required")
	}
	if !domain.IsValidDropStatus(domain.DropStatus(r.Status)) {
		return apierrors.NewValidationError(fmt.Sprintf("unsupported status: %s", r.Status))
	}
	return nil
}

// UnlockRequest represents the request body for unlocking a drop
type UnlockRequest struct {
	WalletAddress string `json:"wallet_address"`
}

// Validate validates the request body
func (r *UnlockRequest) Validate() error {
	if r.WalletAddress == "" {
		return apierrors.NewValidationError("wallet_address is required")
	}
	if !domain.ValidAddress(r.WalletAddress) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid wallet_address: %s", r.WalletAddress))
	}
	return nil
}
