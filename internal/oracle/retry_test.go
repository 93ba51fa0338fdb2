package oracle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revel-xyz/revel-gate/internal/domain"
	"github.com/revel-xyz/revel-gate/internal/mocks"
	"github.com/revel-xyz/revel-gate/internal/oracle"
)

const (
	testWallet = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	testCoin   = "0x1111111111111111111111111111111111111111"
)

// fastRetry keeps test backoff intervals tiny
var fastRetry = oracle.RetryConfig{
	MaxAttempts:     3,
	InitialInterval: time.Millisecond,
	MaxInterval:     2 * time.Millisecond,
}

func TestWithRetry_SucceedsFirstAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mocks.NewMockBalanceOracle(ctrl)
	ctx := context.Background()

	inner.EXPECT().
		GetBalance(ctx, testWallet, testCoin).
		Return(decimal.NewFromInt(42), nil).
		Times(1)

	wrapped := oracle.WithRetry(inner, fastRetry)
	balance, err := wrapped.GetBalance(ctx, testWallet, testCoin)

	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(42)))
}

func TestWithRetry_RecoversAfterTransientFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mocks.NewMockBalanceOracle(ctrl)
	ctx := context.Background()

	transient := errors.New("HTTP 429 Too Many Requests")
	gomock.InOrder(
		inner.EXPECT().GetBalance(ctx, testWallet, testCoin).Return(decimal.Zero, transient),
		inner.EXPECT().GetBalance(ctx, testWallet, testCoin).Return(decimal.Zero, transient),
		inner.EXPECT().GetBalance(ctx, testWallet, testCoin).Return(decimal.NewFromInt(42), nil),
	)

	wrapped := oracle.WithRetry(inner, fastRetry)
	balance, err := wrapped.GetBalance(ctx, testWallet, testCoin)

	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(42)))
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mocks.NewMockBalanceOracle(ctrl)
	ctx := context.Background()

	inner.EXPECT().
		GetBalance(ctx, testWallet, testCoin).
		Return(decimal.Zero, errors.New("connection refused")).
		Times(3)

	wrapped := oracle.WithRetry(inner, fastRetry)
	_, err := wrapped.GetBalance(ctx, testWallet, testCoin)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOracleUnavailable), "got %v", err)
}

func TestWithRetry_PreservesOracleUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mocks.NewMockBalanceOracle(ctrl)
	ctx := context.Background()

	inner.EXPECT().
		GetBalance(ctx, testWallet, testCoin).
		Return(decimal.Zero, domain.ErrOracleUnavailable).
		Times(3)

	wrapped := oracle.WithRetry(inner, fastRetry)
	_, err := wrapped.GetBalance(ctx, testWallet, testCoin)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOracleUnavailable))
}

func TestWithRetry_SingleAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mocks.NewMockBalanceOracle(ctrl)
	ctx := context.Background()

	inner.EXPECT().
		GetBalance(ctx, testWallet, testCoin).
		Return(decimal.Zero, errors.New("connection refused")).
		Times(1)

	wrapped := oracle.WithRetry(inner, oracle.RetryConfig{
		MaxAttempts:     1,
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
	})
	_, err := wrapped.GetBalance(ctx, testWallet, testCoin)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOracleUnavailable))
}

func TestWithRetry_ContextCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mocks.NewMockBalanceOracle(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	inner.EXPECT().
		GetBalance(ctx, testWallet, testCoin).
		DoAndReturn(func(context.Context, string, string) (decimal.Decimal, error) {
			cancel()
			return decimal.Zero, errors.New("connection refused")
		})

	wrapped := oracle.WithRetry(inner, fastRetry)
	_, err := wrapped.GetBalance(ctx, testWallet, testCoin)

	// Cancellation stops the retry loop before the attempt budget is spent
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOracleUnavailable))
}
