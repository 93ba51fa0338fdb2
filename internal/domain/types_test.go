package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revel-xyz/revel-gate/internal/domain"
)

func TestGatingRequirement_RequiredTokenCount(t *testing.T) {
	tests := []struct {
		name        string
		requirement domain.GatingRequirement
		coin        domain.CreatorCoin
		expected    string
		expectedErr error
	}{
		{
			name: "token count mode returns amount unchanged",
			requirement: domain.GatingRequirement{
				Mode:   domain.GatingModeTokenCount,
				Amount: decimal.RequireFromString("100"),
			},
			coin:     domain.CreatorCoin{Decimals: 18},
			expected: "100",
		},
		{
			name: "usd mode divides by reference price",
			requirement: domain.GatingRequirement{
				Mode:   domain.GatingModeUSDValue,
				Amount: decimal.RequireFromString("10"),
			},
			coin: domain.CreatorCoin{
				Decimals: 18,
				PriceUSD: decimal.RequireFromString("2"),
			},
			expected: "5",
		},
		{
			name: "usd mode keeps fractional precision",
			requirement: domain.GatingRequirement{
				Mode:   domain.GatingModeUSDValue,
				Amount: decimal.RequireFromString("1"),
			},
			coin: domain.CreatorCoin{
				Decimals: 18,
				PriceUSD: decimal.RequireFromString("3"),
			},
			expected: "0.333333333333333333",
		},
		{
			name: "usd mode with zero price fails",
			requirement: domain.GatingRequirement{
				Mode:   domain.GatingModeUSDValue,
				Amount: decimal.RequireFromString("10"),
			},
			coin:        domain.CreatorCoin{Decimals: 18},
			expectedErr: domain.ErrInvalidConfiguration,
		},
		{
			name: "usd mode with negative price fails",
			requirement: domain.GatingRequirement{
				Mode:   domain.GatingModeUSDValue,
				Amount: decimal.RequireFromString("10"),
			},
			coin: domain.CreatorCoin{
				Decimals: 18,
				PriceUSD: decimal.RequireFromString("-1"),
			},
			expectedErr: domain.ErrInvalidConfiguration,
		},
		{
			name: "negative amount fails",
			requirement: domain.GatingRequirement{
				Mode:   domain.GatingModeTokenCount,
				Amount: decimal.RequireFromString("-5"),
			},
			coin:        domain.CreatorCoin{Decimals: 18},
			expectedErr: domain.ErrInvalidConfiguration,
		},
		{
			name: "unknown mode fails",
			requirement: domain.GatingRequirement{
				Mode:   domain.GatingMode("percentage"),
				Amount: decimal.RequireFromString("5"),
			},
			coin:        domain.CreatorCoin{Decimals: 18},
			expectedErr: domain.ErrInvalidConfiguration,
		},
		{
			name: "zero amount is a valid requirement",
			requirement: domain.GatingRequirement{
				Mode:   domain.GatingModeTokenCount,
				Amount: decimal.Zero,
			},
			coin:     domain.CreatorCoin{Decimals: 18},
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := tt.requirement.RequiredTokenCount(tt.coin)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedErr))
				return
			}

			require.NoError(t, err)
			assert.True(t, count.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, count.String())
		})
	}
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "mixed case checksum address",
			input:    "0xAbC1234567890123456789012345678901234567",
			expected: "0xabc1234567890123456789012345678901234567",
		},
		{
			name:     "already lower case",
			input:    "0xabc1234567890123456789012345678901234567",
			expected: "0xabc1234567890123456789012345678901234567",
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "  0xABC1234567890123456789012345678901234567 ",
			expected: "0xabc1234567890123456789012345678901234567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.NormalizeAddress(tt.input))
		})
	}
}

func TestValidAddress(t *testing.T) {
	assert.True(t, domain.ValidAddress("0xAbC1234567890123456789012345678901234567"))
	assert.False(t, domain.ValidAddress("0x123"))
	assert.False(t, domain.ValidAddress("not-an-address"))
	assert.False(t, domain.ValidAddress(""))
}

func TestIsValidDropStatus(t *testing.T) {
	assert.True(t, domain.IsValidDropStatus(domain.DropStatusDraft))
	assert.True(t, domain.IsValidDropStatus(domain.DropStatusActive))
	assert.True(t, domain.IsValidDropStatus(domain.DropStatusArchived))
	assert.False(t, domain.IsValidDropStatus(domain.DropStatus("published")))
}
