package gate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/revel-xyz/revel-gate/internal/adapter"
	"github.com/revel-xyz/revel-gate/internal/coins"
	"github.com/revel-xyz/revel-gate/internal/domain"
	"github.com/revel-xyz/revel-gate/internal/events"
	"github.com/revel-xyz/revel-gate/internal/logger"
	"github.com/revel-xyz/revel-gate/internal/oracle"
	"github.com/revel-xyz/revel-gate/internal/store"
)

// CreateDropParams carries the caller-supplied fields for a new drop. The
// coin's metadata and price snapshot are resolved from the registry, not
// supplied by the caller.
type CreateDropParams struct {
	CreatorAddress string
	CreatorName    string
	CreatorImage   string
	Title          string
	Description    string
	ContentType    domain.ContentType
	ContentURL     string
	ThumbnailURL   string
	CoinAddress    string
	GatingMode     domain.GatingMode
	GatingAmount   string
	Publish        bool
}

// Service composes the balance oracle, the access evaluator, and the unlock
// ledger behind the operations the route layer calls. The viewer wallet is
// always an explicit argument; the service holds no ambient wallet state.
//
//go:generate mockgen -source=service.go -destination=../mocks/gate_service.go -package=mocks -mock_names=Service=MockGateService
type Service interface {
	// CreateDrop resolves the creator coin and creates a drop with the coin's
	// current price frozen into its gating parameters
	CreateDrop(ctx context.Context, params CreateDropParams) (*domain.Drop, error)
	// GetDrop retrieves a drop by ID
	GetDrop(ctx context.Context, dropID string) (*domain.Drop, error)
	// ListDrops retrieves drops matching the filter
	ListDrops(ctx context.Context, filter store.DropFilter) ([]*domain.Drop, error)
	// UpdateDropStatus transitions a drop's publication state
	UpdateDropStatus(ctx context.Context, dropID string, status domain.DropStatus) error
	// EvaluateAccess decides whether the wallet may see the drop's content.
	// An oracle failure surfaces as domain.ErrOracleUnavailable, distinct
	// from a denied decision.
	EvaluateAccess(ctx context.Context, dropID, wallet string) (domain.AccessDecision, error)
	// RecordView adds one view to the drop. Repeat views by the same wallet
	// all count.
	RecordView(ctx context.Context, dropID string) error
	// Unlock evaluates access and, when granted, records the unlock exactly
	// once per (drop, wallet) pair. A denied decision is returned without
	// touching the ledger.
	Unlock(ctx context.Context, dropID, wallet string) (domain.UnlockResult, error)
	// HasUnlocked checks whether the wallet already unlocked the drop
	HasUnlocked(ctx context.Context, dropID, wallet string) (bool, error)
	// ListUnlocks retrieves a drop's unlock records for creator audit
	ListUnlocks(ctx context.Context, dropID string, limit, offset int) ([]*domain.UnlockRecord, error)
}

type service struct {
	store     store.Store
	oracle    oracle.BalanceOracle
	registry  coins.Registry
	publisher events.Publisher
	clock     adapter.Clock
}

// NewService creates a gate service. The publisher may be nil when no event
// feed is configured.
func NewService(s store.Store, o oracle.BalanceOracle, r coins.Registry, p events.Publisher, clock adapter.Clock) Service {
	return &service{
		store:     s,
		oracle:    o,
		registry:  r,
		publisher: p,
		clock:     clock,
	}
}

// CreateDrop resolves the creator coin and creates the drop
func (s *service) CreateDrop(ctx context.Context, params CreateDropParams) (*domain.Drop, error) {
	if !domain.ValidAddress(params.CreatorAddress) {
		return nil, fmt.Errorf("%w: invalid creator address %q", domain.ErrInvalidConfiguration, params.CreatorAddress)
	}
	if !domain.ValidAddress(params.CoinAddress) {
		return nil, fmt.Errorf("%w: invalid coin address %q", domain.ErrInvalidConfiguration, params.CoinAddress)
	}
	if !domain.IsValidContentType(params.ContentType) {
		return nil, fmt.Errorf("%w: invalid content type %q", domain.ErrInvalidConfiguration, params.ContentType)
	}

	requirement, err := parseRequirement(params.GatingMode, params.GatingAmount)
	if err != nil {
		return nil, err
	}

	coin, err := s.registry.GetCoin(ctx, params.CoinAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve creator coin: %w", err)
	}

	// A USD gate is unresolvable without a price snapshot; refuse creation
	// rather than persisting a drop that can never be evaluated
	if _, err := requirement.RequiredTokenCount(*coin); err != nil {
		return nil, err
	}

	status := domain.DropStatusDraft
	if params.Publish {
		status = domain.DropStatusActive
	}

	row, err := s.store.CreateDrop(ctx, store.CreateDropInput{
		ID:             uuid.New().String(),
		CreatorAddress: params.CreatorAddress,
		CreatorName:    params.CreatorName,
		CreatorImage:   params.CreatorImage,
		Title:          params.Title,
		Description:    params.Description,
		ContentType:    params.ContentType,
		ContentURL:     params.ContentURL,
		ThumbnailURL:   params.ThumbnailURL,
		Coin:           *coin,
		Requirement:    requirement,
		Status:         status,
	})
	if err != nil {
		return nil, err
	}

	return store.ToDomainDrop(row), nil
}

// GetDrop retrieves a drop by ID
func (s *service) GetDrop(ctx context.Context, dropID string) (*domain.Drop, error) {
	row, err := s.store.GetDropByID(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrDropNotFound
	}
	return store.ToDomainDrop(row), nil
}

// ListDrops retrieves drops matching the filter
func (s *service) ListDrops(ctx context.Context, filter store.DropFilter) ([]*domain.Drop, error) {
	rows, err := s.store.ListDrops(ctx, filter)
	if err != nil {
		return nil, err
	}

	drops := make([]*domain.Drop, 0, len(rows))
	for _, row := range rows {
		drops = append(drops, store.ToDomainDrop(row))
	}
	return drops, nil
}

// UpdateDropStatus transitions a drop's publication state
func (s *service) UpdateDropStatus(ctx context.Context, dropID string, status domain.DropStatus) error {
	if !domain.IsValidDropStatus(status) {
		return fmt.Errorf("%w: invalid drop status %q", domain.ErrInvalidConfiguration, status)
	}
	return s.store.UpdateDropStatus(ctx, dropID, status)
}

// EvaluateAccess decides whether the wallet may see the drop's content
func (s *service) EvaluateAccess(ctx context.Context, dropID, wallet string) (domain.AccessDecision, error) {
	drop, err := s.gateableDrop(ctx, dropID)
	if err != nil {
		return domain.AccessDecision{}, err
	}

	balance, err := s.oracle.GetBalance(ctx, domain.NormalizeAddress(wallet), drop.Coin.Address)
	if err != nil {
		// Balance unknown is not balance zero; the caller must be able to
		// show "couldn't verify" instead of "locked"
		return domain.AccessDecision{}, err
	}

	return Evaluate(drop.Requirement, drop.Coin, balance)
}

// RecordView adds one view to the drop
func (s *service) RecordView(ctx context.Context, dropID string) error {
	drop, err := s.gateableDrop(ctx, dropID)
	if err != nil {
		return err
	}

	if err := s.store.IncrementViewCount(ctx, drop.ID); err != nil {
		return err
	}

	s.publish(ctx, &domain.DropEvent{
		DropID:    drop.ID,
		EventType: domain.DropEventView,
		Timestamp: s.clock.Now(),
	})

	return nil
}

// Unlock evaluates access and records the unlock when granted
func (s *service) Unlock(ctx context.Context, dropID, wallet string) (domain.UnlockResult, error) {
	wallet = domain.NormalizeAddress(wallet)

	decision, err := s.EvaluateAccess(ctx, dropID, wallet)
	if err != nil {
		return domain.UnlockResult{}, err
	}

	if !decision.Granted {
		return domain.UnlockResult{Decision: decision}, nil
	}

	created, err := s.store.CreateUnlock(ctx, store.CreateUnlockInput{
		DropID:          dropID,
		WalletAddress:   wallet,
		BalanceAtUnlock: decision.ViewerBalance,
	})
	if err != nil {
		return domain.UnlockResult{}, err
	}

	if created {
		s.publish(ctx, &domain.DropEvent{
			DropID:        dropID,
			EventType:     domain.DropEventUnlock,
			WalletAddress: wallet,
			Balance:       decision.ViewerBalance,
			Timestamp:     s.clock.Now(),
		})
	}

	return domain.UnlockResult{Decision: decision, Created: created}, nil
}

// HasUnlocked checks whether the wallet already unlocked the drop
func (s *service) HasUnlocked(ctx context.Context, dropID, wallet string) (bool, error) {
	drop, err := s.store.GetDropByID(ctx, dropID)
	if err != nil {
		return false, err
	}
	if drop == nil {
		return false, domain.ErrDropNotFound
	}
	return s.store.HasUnlocked(ctx, dropID, wallet)
}

// ListUnlocks retrieves a drop's unlock records for creator audit
func (s *service) ListUnlocks(ctx context.Context, dropID string, limit, offset int) ([]*domain.UnlockRecord, error) {
	drop, err := s.store.GetDropByID(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if drop == nil {
		return nil, domain.ErrDropNotFound
	}

	rows, err := s.store.ListUnlocksByDrop(ctx, dropID, limit, offset)
	if err != nil {
		return nil, err
	}

	records := make([]*domain.UnlockRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &domain.UnlockRecord{
			DropID:          row.DropID,
			WalletAddress:   row.WalletAddress,
			BalanceAtUnlock: row.BalanceAtUnlock,
			RecordedAt:      row.CreatedAt,
		})
	}
	return records, nil
}

// gateableDrop loads a drop and enforces the activity policy: missing drops
// and non-active drops are never gate-evaluated
func (s *service) gateableDrop(ctx context.Context, dropID string) (*domain.Drop, error) {
	row, err := s.store.GetDropByID(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrDropNotFound
	}

	drop := store.ToDomainDrop(row)
	if drop.Status != domain.DropStatusActive {
		return nil, domain.ErrDropInactive
	}

	return drop, nil
}

// publish sends a drop event to the feed, logging failures without
// propagating them to the originating request
func (s *service) publish(ctx context.Context, event *domain.DropEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishDropEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish drop event",
			zap.String("drop_id", event.DropID),
			zap.String("event_type", string(event.EventType)),
			zap.Error(err))
	}
}

// parseRequirement validates and parses the caller-supplied gating fields
func parseRequirement(mode domain.GatingMode, amount string) (domain.GatingRequirement, error) {
	if !domain.IsValidGatingMode(mode) {
		return domain.GatingRequirement{}, fmt.Errorf("%w: invalid gating mode %q", domain.ErrInvalidConfiguration, mode)
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.GatingRequirement{}, fmt.Errorf("%w: malformed gating amount %q", domain.ErrInvalidConfiguration, amount)
	}

	requirement := domain.GatingRequirement{Mode: mode, Amount: parsed}
	if err := requirement.Validate(); err != nil {
		return domain.GatingRequirement{}, fmt.Errorf("%w: gating amount must be non-negative", domain.ErrInvalidConfiguration)
	}

	return requirement, nil
}
