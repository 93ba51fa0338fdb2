package gate_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revel-xyz/revel-gate/internal/domain"
	"github.com/revel-xyz/revel-gate/internal/gate"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEvaluate_TokenCountMode(t *testing.T) {
	coin := domain.CreatorCoin{
		Address:  "0x1111111111111111111111111111111111111111",
		Symbol:   "CREATOR",
		Decimals: 18,
	}

	tests := []struct {
		name          string
		required      string
		balance       string
		wantGranted   bool
		wantShortfall string
	}{
		{
			name:          "balance above threshold",
			required:      "100",
			balance:       "150",
			wantGranted:   true,
			wantShortfall: "0",
		},
		{
			name:          "balance exactly at threshold",
			required:      "100",
			balance:       "100",
			wantGranted:   true,
			wantShortfall: "0",
		},
		{
			name:          "balance below threshold",
			required:      "100",
			balance:       "42.5",
			wantGranted:   false,
			wantShortfall: "57.5",
		},
		{
			name:          "zero balance",
			required:      "100",
			balance:       "0",
			wantGranted:   false,
			wantShortfall: "100",
		},
		{
			name:          "zero requirement always grants",
			required:      "0",
			balance:       "0",
			wantGranted:   true,
			wantShortfall: "0",
		},
		{
			name:          "fractional boundary",
			required:      "0.000000000000000001",
			balance:       "0.000000000000000001",
			wantGranted:   true,
			wantShortfall: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requirement := domain.GatingRequirement{
				Mode:   domain.GatingModeTokenCount,
				Amount: dec(tt.required),
			}

			decision, err := gate.Evaluate(requirement, coin, dec(tt.balance))

			require.NoError(t, err)
			assert.Equal(t, tt.wantGranted, decision.Granted)
			assert.True(t, decision.ViewerBalance.Equal(dec(tt.balance)),
				"viewer balance %s", decision.ViewerBalance)
			assert.True(t, decision.RequiredTokenCount.Equal(dec(tt.required)),
				"required %s", decision.RequiredTokenCount)
			assert.True(t, decision.Shortfall.Equal(dec(tt.wantShortfall)),
				"shortfall %s, want %s", decision.Shortfall, tt.wantShortfall)
		})
	}
}

func TestEvaluate_USDValueMode(t *testing.T) {
	tests := []struct {
		name          string
		priceUSD      string
		usdAmount     string
		balance       string
		wantGranted   bool
		wantRequired  string
		wantShortfall string
	}{
		{
			name:          "price divides evenly",
			priceUSD:      "2",
			usdAmount:     "10",
			balance:       "5",
			wantGranted:   true,
			wantRequired:  "5",
			wantShortfall: "0",
		},
		{
			name:          "just under the converted threshold",
			priceUSD:      "2",
			usdAmount:     "10",
			balance:       "4.999999999999999999",
			wantGranted:   false,
			wantRequired:  "5",
			wantShortfall: "0.000000000000000001",
		},
		{
			name:          "sub-dollar price",
			priceUSD:      "0.04",
			usdAmount:     "1",
			balance:       "30",
			wantGranted:   true,
			wantRequired:  "25",
			wantShortfall: "0",
		},
		{
			name:          "repeating division rounds at 18 digits",
			priceUSD:      "3",
			usdAmount:     "1",
			balance:       "0.333333333333333333",
			wantGranted:   true,
			wantRequired:  "0.333333333333333333",
			wantShortfall: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requirement := domain.GatingRequirement{
				Mode:   domain.GatingModeUSDValue,
				Amount: dec(tt.usdAmount),
			}
			coin := domain.CreatorCoin{
				Address:  "0x1111111111111111111111111111111111111111",
				Symbol:   "CREATOR",
				Decimals: 18,
				PriceUSD: dec(tt.priceUSD),
			}

			decision, err := gate.Evaluate(requirement, coin, dec(tt.balance))

			require.NoError(t, err)
			assert.Equal(t, tt.wantGranted, decision.Granted)
			assert.True(t, decision.RequiredTokenCount.Equal(dec(tt.wantRequired)),
				"required %s, want %s", decision.RequiredTokenCount, tt.wantRequired)
			assert.True(t, decision.Shortfall.Equal(dec(tt.wantShortfall)),
				"shortfall %s, want %s", decision.Shortfall, tt.wantShortfall)
		})
	}
}

func TestEvaluate_USDValueModeWithoutPrice(t *testing.T) {
	requirement := domain.GatingRequirement{
		Mode:   domain.GatingModeUSDValue,
		Amount: dec("10"),
	}
	coin := domain.CreatorCoin{
		Address:  "0x1111111111111111111111111111111111111111",
		Symbol:   "CREATOR",
		Decimals: 18,
		// no price snapshot
	}

	_, err := gate.Evaluate(requirement, coin, dec("1000000"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfiguration))
}
