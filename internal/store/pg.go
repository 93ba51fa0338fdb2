package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/revel-xyz/revel-gate/internal/domain"
	"github.com/revel-xyz/revel-gate/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero settings fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings
// into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// storageErr wraps a database failure into the storage-unavailable taxonomy
// so callers can distinguish it from not-found and policy errors
func storageErr(action string, err error) error {
	return fmt.Errorf("%w: failed to %s: %v", domain.ErrStorageUnavailable, action, err)
}

// CreateDrop inserts a new drop row
func (s *pgStore) CreateDrop(ctx context.Context, input CreateDropInput) (*schema.Drop, error) {
	drop := schema.Drop{
		ID:             input.ID,
		CreatorAddress: domain.NormalizeAddress(input.CreatorAddress),
		CreatorName:    input.CreatorName,
		Title:          input.Title,
		Description:    input.Description,
		ContentType:    string(input.ContentType),
		ContentURL:     input.ContentURL,
		CoinAddress:    domain.NormalizeAddress(input.Coin.Address),
		CoinName:       input.Coin.Name,
		CoinSymbol:     input.Coin.Symbol,
		CoinDecimals:   input.Coin.Decimals,
		GatingMode:     string(input.Requirement.Mode),
		GatingAmount:   input.Requirement.Amount,
		Status:         string(input.Status),
	}

	if input.CreatorImage != "" {
		drop.CreatorImage = &input.CreatorImage
	}
	if input.ThumbnailURL != "" {
		drop.ThumbnailURL = &input.ThumbnailURL
	}
	if input.Coin.PriceUSD.Sign() > 0 {
		drop.CoinPriceUSD.Decimal = input.Coin.PriceUSD
		drop.CoinPriceUSD.Valid = true
	}

	if err := s.db.WithContext(ctx).Create(&drop).Error; err != nil {
		return nil, storageErr("create drop", err)
	}

	return &drop, nil
}

// GetDropByID retrieves a drop by its identifier
func (s *pgStore) GetDropByID(ctx context.Context, dropID string) (*schema.Drop, error) {
	var drop schema.Drop
	err := s.db.WithContext(ctx).Where("id = ?", dropID).First(&drop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr("get drop", err)
	}
	return &drop, nil
}

// ListDrops retrieves drops matching the filter, newest first
func (s *pgStore) ListDrops(ctx context.Context, filter DropFilter) ([]*schema.Drop, error) {
	query := s.db.WithContext(ctx).Model(&schema.Drop{})

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.CreatorAddress != "" {
		query = query.Where("creator_address = ?", domain.NormalizeAddress(filter.CreatorAddress))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var drops []*schema.Drop
	if err := query.Order("created_at DESC").Find(&drops).Error; err != nil {
		return nil, storageErr("list drops", err)
	}

	return drops, nil
}

// UpdateDropStatus transitions a drop's publication state
func (s *pgStore) UpdateDropStatus(ctx context.Context, dropID string, status domain.DropStatus) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Drop{}).
		Where("id = ?", dropID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return storageErr("update drop status", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDropNotFound
	}
	return nil
}

// IncrementViewCount adds one view to the drop's counter. The increment is a
// single SQL expression so concurrent views never lose updates.
func (s *pgStore) IncrementViewCount(ctx context.Context, dropID string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Drop{}).
		Where("id = ?", dropID).
		Update("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return storageErr("increment view count", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDropNotFound
	}
	return nil
}

// CreateUnlock records an unlock for a (drop, wallet) pair exactly once.
//
// The insert relies on the composite unique index with ON CONFLICT DO
// NOTHING: under concurrent attempts for the same pair the database admits
// exactly one row, and only the attempt that inserted it increments the
// drop's unlock counter. Record and counter move in one transaction, so a
// failed write leaves no half-applied state and the call is safe to retry.
func (s *pgStore) CreateUnlock(ctx context.Context, input CreateUnlockInput) (bool, error) {
	created := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		unlock := schema.Unlock{
			DropID:          input.DropID,
			WalletAddress:   domain.NormalizeAddress(input.WalletAddress),
			BalanceAtUnlock: input.BalanceAtUnlock,
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "drop_id"}, {Name: "wallet_address"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&unlock).Error; err != nil {
			return fmt.Errorf("failed to create unlock record: %w", err)
		}

		// If unlock.ID is 0 the pair already existed; leave counters alone
		if unlock.ID == 0 {
			return nil
		}

		if err := tx.Model(&schema.Drop{}).
			Where("id = ?", input.DropID).
			Update("unlock_count", gorm.Expr("unlock_count + ?", 1)).Error; err != nil {
			return fmt.Errorf("failed to increment unlock count: %w", err)
		}

		created = true
		return nil
	})
	if err != nil {
		return false, storageErr("record unlock", err)
	}

	return created, nil
}

// HasUnlocked checks whether a wallet has already unlocked a drop
func (s *pgStore) HasUnlocked(ctx context.Context, dropID, walletAddress string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Unlock{}).
		Where("drop_id = ? AND wallet_address = ?", dropID, domain.NormalizeAddress(walletAddress)).
		Count(&count).Error
	if err != nil {
		return false, storageErr("check unlock", err)
	}
	return count > 0, nil
}

// ListUnlocksByDrop retrieves a drop's unlock records, newest first
func (s *pgStore) ListUnlocksByDrop(ctx context.Context, dropID string, limit, offset int) ([]*schema.Unlock, error) {
	query := s.db.WithContext(ctx).Where("drop_id = ?", dropID)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var unlocks []*schema.Unlock
	if err := query.Order("created_at DESC").Find(&unlocks).Error; err != nil {
		return nil, storageErr("list unlocks", err)
	}

	return unlocks, nil
}
