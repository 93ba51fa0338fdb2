package store

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/revel-xyz/revel-gate/internal/domain"
	"github.com/revel-xyz/revel-gate/internal/store/schema"
)

// CreateDropInput carries the fields for a new drop. Counters start at zero
// and the gating parameters are frozen as given.
type CreateDropInput struct {
	ID             string
	CreatorAddress string
	CreatorName    string
	CreatorImage   string
	Title          string
	Description    string
	ContentType    domain.ContentType
	ContentURL     string
	ThumbnailURL   string
	Coin           domain.CreatorCoin
	Requirement    domain.GatingRequirement
	Status         domain.DropStatus
}

// CreateUnlockInput carries the fields for an unlock record
type CreateUnlockInput struct {
	DropID          string
	WalletAddress   string
	BalanceAtUnlock decimal.Decimal
}

// DropFilter narrows ListDrops results
type DropFilter struct {
	Status         domain.DropStatus
	CreatorAddress string
	Limit          int
	Offset         int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateDrop inserts a new drop row
	CreateDrop(ctx context.Context, input CreateDropInput) (*schema.Drop, error)
	// GetDropByID retrieves a drop by its identifier, nil when absent
	GetDropByID(ctx context.Context, dropID string) (*schema.Drop, error)
	// ListDrops retrieves drops matching the filter, newest first
	ListDrops(ctx context.Context, filter DropFilter) ([]*schema.Drop, error)
	// UpdateDropStatus transitions a drop's publication state
	UpdateDropStatus(ctx context.Context, dropID string, status domain.DropStatus) error
	// IncrementViewCount adds one view to the drop's counter. Views are not
	// deduplicated by viewer.
	IncrementViewCount(ctx context.Context, dropID string) error
	// CreateUnlock records an unlock for a (drop, wallet) pair exactly once
	// and increments the drop's unlock counter along with it. Returns false
	// without touching counters when the pair was already recorded.
	CreateUnlock(ctx context.Context, input CreateUnlockInput) (bool, error)
	// HasUnlocked checks whether a wallet has already unlocked a drop
	HasUnlocked(ctx context.Context, dropID, walletAddress string) (bool, error)
	// ListUnlocksByDrop retrieves a drop's unlock records, newest first
	ListUnlocksByDrop(ctx context.Context, dropID string, limit, offset int) ([]*schema.Unlock, error)
}
