package zora_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revel-xyz/revel-gate/internal/domain"
	"github.com/revel-xyz/revel-gate/internal/mocks"
	"github.com/revel-xyz/revel-gate/internal/oracle/zora"
)

const (
	testBaseURL = "https://api-sdk.zora.engineering"
	testWallet  = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	testCoin    = "0x1111111111111111111111111111111111111111"
)

// respondWith returns a DoAndReturn func that fills the result from raw JSON
func respondWith(payload string) func(context.Context, string, interface{}) error {
	return func(_ context.Context, _ string, result interface{}) error {
		return json.Unmarshal([]byte(payload), result)
	}
}

func TestZoraClient_GetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := zora.NewClient(testBaseURL, mockHTTP)
	ctx := context.Background()

	payload := `{
		"profile": {
			"coinBalances": {
				"edges": [
					{
						"node": {
							"token": {
								"address": "0x2222222222222222222222222222222222222222",
								"name": "Other Coin",
								"symbol": "OTHER"
							},
							"amount": {"amountDecimal": "9000"},
							"valueUsd": "12.50"
						}
					},
					{
						"node": {
							"token": {
								"address": "0x1111111111111111111111111111111111111111",
								"name": "Creator Coin",
								"symbol": "CREATOR"
							},
							"amount": {"amountDecimal": "42.5"},
							"valueUsd": "85.00"
						}
					}
				]
			}
		}
	}`

	expectedURL := testBaseURL + "/profile/" + testWallet + "/balances?count=100"
	mockHTTP.EXPECT().
		Get(ctx, expectedURL, gomock.Any()).
		DoAndReturn(respondWith(payload))

	balance, err := client.GetBalance(ctx, testWallet, testCoin)

	require.NoError(t, err)
	assert.Equal(t, "42.5", balance.String())
}

func TestZoraClient_GetBalance_NormalizesAddresses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := zora.NewClient(testBaseURL, mockHTTP)
	ctx := context.Background()

	// The API reports checksummed addresses; matching must be
	// case-insensitive and the request URL lowercased
	payload := `{
		"profile": {
			"coinBalances": {
				"edges": [
					{
						"node": {
							"token": {
								"address": "0x1111111111111111111111111111111111111111",
								"symbol": "CREATOR"
							},
							"amount": {"amountDecimal": "7"}
						}
					}
				]
			}
		}
	}`

	expectedURL := testBaseURL + "/profile/" + testWallet + "/balances?count=100"
	mockHTTP.EXPECT().
		Get(ctx, expectedURL, gomock.Any()).
		DoAndReturn(respondWith(payload))

	balance, err := client.GetBalance(ctx,
		"0xBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBb",
		"0x1111111111111111111111111111111111111111")

	require.NoError(t, err)
	assert.Equal(t, "7", balance.String())
}

func TestZoraClient_GetBalance_CoinNotHeld(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := zora.NewClient(testBaseURL, mockHTTP)
	ctx := context.Background()

	payload := `{
		"profile": {
			"coinBalances": {
				"edges": [
					{
						"node": {
							"token": {
								"address": "0x2222222222222222222222222222222222222222",
								"symbol": "OTHER"
							},
							"amount": {"amountDecimal": "9000"}
						}
					}
				]
			}
		}
	}`

	mockHTTP.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(payload))

	balance, err := client.GetBalance(ctx, testWallet, testCoin)

	// A balance list without the coin is a verifiable zero, not an error
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestZoraClient_GetBalance_EmptyProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := zora.NewClient(testBaseURL, mockHTTP)
	ctx := context.Background()

	mockHTTP.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(`{"profile": {"coinBalances": {"edges": []}}}`))

	balance, err := client.GetBalance(ctx, testWallet, testCoin)

	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestZoraClient_GetBalance_HTTPError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := zora.NewClient(testBaseURL, mockHTTP)
	ctx := context.Background()

	mockHTTP.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any()).
		Return(errors.New("HTTP error 502: Bad Gateway"))

	_, err := client.GetBalance(ctx, testWallet, testCoin)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOracleUnavailable), "got %v", err)
}

func TestZoraClient_GetBalance_MalformedAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := zora.NewClient(testBaseURL, mockHTTP)
	ctx := context.Background()

	payload := `{
		"profile": {
			"coinBalances": {
				"edges": [
					{
						"node": {
							"token": {
								"address": "0x1111111111111111111111111111111111111111",
								"symbol": "CREATOR"
							},
							"amount": {"amountDecimal": "not-a-number"}
						}
					}
				]
			}
		}
	}`

	mockHTTP.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(payload))

	_, err := client.GetBalance(ctx, testWallet, testCoin)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOracleUnavailable))
}
