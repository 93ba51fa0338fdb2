package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/revel-xyz/revel-gate/internal/domain"
	"github.com/revel-xyz/revel-gate/internal/logger"
)

// RetryConfig holds retry/backoff settings for a wrapped oracle.
// Zero values fall back to the defaults below.
type RetryConfig struct {
	MaxAttempts     uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

const (
	defaultMaxAttempts     = 3
	defaultInitialInterval = 250 * time.Millisecond
	defaultMaxInterval     = 4 * time.Second
	retryJitter            = 0.2
)

type retryingOracle struct {
	inner BalanceOracle
	cfg   RetryConfig
}

// WithRetry wraps an oracle with exponential backoff for transient failures.
// Balance APIs in this domain are rate-limited and flaky, so a bounded number
// of retries happens here rather than in evaluation logic. Once attempts are
// exhausted the error still wraps domain.ErrOracleUnavailable.
func WithRetry(inner BalanceOracle, cfg RetryConfig) BalanceOracle {
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.InitialInterval == 0 {
		cfg.InitialInterval = defaultInitialInterval
	}
	if cfg.MaxInterval == 0 {
		cfg.MaxInterval = defaultMaxInterval
	}
	return &retryingOracle{inner: inner, cfg: cfg}
}

// GetBalance retries the wrapped oracle on failure
func (o *retryingOracle) GetBalance(ctx context.Context, wallet, coinAddress string) (decimal.Decimal, error) {
	var balance decimal.Decimal

	attempt := 0
	operation := func() error {
		attempt++
		var err error
		balance, err = o.inner.GetBalance(ctx, wallet, coinAddress)
		if err != nil {
			logger.WarnCtx(ctx, "balance lookup failed",
				zap.Int("attempt", attempt),
				zap.String("wallet", wallet),
				zap.String("coin_address", coinAddress),
				zap.Error(err))
		}
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = o.cfg.InitialInterval
	b.MaxInterval = o.cfg.MaxInterval
	b.RandomizationFactor = retryJitter
	b.MaxElapsedTime = 0 // bounded by attempt count, not wall clock

	err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.WithContext(b, ctx), o.cfg.MaxAttempts-1))
	if err != nil {
		if !errors.Is(err, domain.ErrOracleUnavailable) {
			err = fmt.Errorf("%w: %v", domain.ErrOracleUnavailable, err)
		}
		return decimal.Zero, err
	}

	return balance, nil
}
