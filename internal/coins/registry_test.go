package coins_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revel-xyz/revel-gate/internal/coins"
	"github.com/revel-xyz/revel-gate/internal/mocks"
)

const testBaseURL = "https://api-sdk.zora.engineering"

func TestRegistry_GetCoin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	registry := coins.NewRegistry(testBaseURL, mockHTTP)
	ctx := context.Background()

	payload := `{
		"coin": {
			"address": "0x1111111111111111111111111111111111111111",
			"name": "Creator Coin",
			"symbol": "CREATOR",
			"decimals": 18,
			"priceUsd": "0.042"
		}
	}`

	expectedURL := testBaseURL + "/coin/0x1111111111111111111111111111111111111111"
	mockHTTP.EXPECT().
		Get(ctx, expectedURL, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, result interface{}) error {
			return json.Unmarshal([]byte(payload), result)
		})

	// Mixed-case input address must be normalized before the request
	coin, err := registry.GetCoin(ctx, "0x1111111111111111111111111111111111111111")

	require.NoError(t, err)
	assert.Equal(t, "0x1111111111111111111111111111111111111111", coin.Address)
	assert.Equal(t, "Creator Coin", coin.Name)
	assert.Equal(t, "CREATOR", coin.Symbol)
	assert.Equal(t, int32(18), coin.Decimals)
	assert.Equal(t, "0.042", coin.PriceUSD.String())
}

func TestRegistry_GetCoin_NoPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	registry := coins.NewRegistry(testBaseURL, mockHTTP)
	ctx := context.Background()

	payload := `{
		"coin": {
			"address": "0x1111111111111111111111111111111111111111",
			"name": "Creator Coin",
			"symbol": "CREATOR",
			"decimals": 18
		}
	}`

	mockHTTP.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, result interface{}) error {
			return json.Unmarshal([]byte(payload), result)
		})

	coin, err := registry.GetCoin(ctx, "0x1111111111111111111111111111111111111111")

	require.NoError(t, err)
	assert.True(t, coin.PriceUSD.IsZero())
}

func TestRegistry_GetCoin_NormalizesAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	registry := coins.NewRegistry(testBaseURL, mockHTTP)
	ctx := context.Background()

	expectedURL := testBaseURL + "/coin/0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"
	mockHTTP.EXPECT().
		Get(ctx, expectedURL, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, result interface{}) error {
			return json.Unmarshal([]byte(`{"coin": {"symbol": "CREATOR"}}`), result)
		})

	coin, err := registry.GetCoin(ctx, "0xABCDEFabcdefABCDEFabcdefabcdefABCDEFabcd")

	require.NoError(t, err)
	// Address falls back to the requested one when the payload omits it
	assert.Equal(t, "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd", coin.Address)
}

func TestRegistry_GetCoin_HTTPError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	registry := coins.NewRegistry(testBaseURL, mockHTTP)
	ctx := context.Background()

	mockHTTP.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any()).
		Return(errors.New("HTTP error 404: Not Found"))

	_, err := registry.GetCoin(ctx, "0x1111111111111111111111111111111111111111")

	require.Error(t, err)
}

func TestRegistry_GetCoin_MalformedPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	registry := coins.NewRegistry(testBaseURL, mockHTTP)
	ctx := context.Background()

	mockHTTP.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, result interface{}) error {
			return json.Unmarshal([]byte(`{"coin": {"symbol": "CREATOR", "priceUsd": "n/a"}}`), result)
		})

	_, err := registry.GetCoin(ctx, "0x1111111111111111111111111111111111111111")

	require.Error(t, err)
}
