package erc20_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	go_ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revel-xyz/revel-gate/internal/domain"
	"github.com/revel-xyz/revel-gate/internal/mocks"
	"github.com/revel-xyz/revel-gate/internal/oracle/erc20"
)

const (
	testWallet = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	testCoin   = "0x1111111111111111111111111111111111111111"
)

// encodeUint256 produces a 32-byte big-endian ABI word
func encodeUint256(v *big.Int) []byte {
	return common.LeftPadBytes(v.Bytes(), 32)
}

func TestERC20Client_GetBalance(t *testing.T) {
	tests := []struct {
		name     string
		decimals int32
		raw      string
		want     string
	}{
		{
			name:     "whole tokens at 18 decimals",
			decimals: 18,
			raw:      "1500000000000000000", // 1.5 tokens
			want:     "1.5",
		},
		{
			name:     "zero balance",
			decimals: 18,
			raw:      "0",
			want:     "0",
		},
		{
			name:     "one base unit",
			decimals: 18,
			raw:      "1",
			want:     "0.000000000000000001",
		},
		{
			name:     "default decimals when zero configured",
			decimals: 0,
			raw:      "2000000000000000000", // still divided by 1e18
			want:     "2",
		},
		{
			name:     "six decimal coin",
			decimals: 6,
			raw:      "2500000", // 2.5 tokens
			want:     "2.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockEth := mocks.NewMockEthClient(ctrl)
			client := erc20.NewClient(mockEth, tt.decimals)
			ctx := context.Background()

			raw, ok := new(big.Int).SetString(tt.raw, 10)
			require.True(t, ok)

			mockEth.EXPECT().
				CallContract(ctx, gomock.Any(), gomock.Nil()).
				DoAndReturn(func(_ context.Context, msg go_ethereum.CallMsg, _ *big.Int) ([]byte, error) {
					require.NotNil(t, msg.To)
					assert.Equal(t, common.HexToAddress(testCoin), *msg.To)
					// balanceOf selector followed by the padded wallet argument
					require.Len(t, msg.Data, 36)
					assert.Equal(t, []byte{0x70, 0xa0, 0x82, 0x31}, msg.Data[:4])
					assert.Equal(t, encodeUint256(common.HexToAddress(testWallet).Big()), msg.Data[4:])
					return encodeUint256(raw), nil
				})

			balance, err := client.GetBalance(ctx, testWallet, testCoin)

			require.NoError(t, err)
			assert.Equal(t, tt.want, balance.String())
		})
	}
}

func TestERC20Client_GetBalance_RPCError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEth := mocks.NewMockEthClient(ctrl)
	client := erc20.NewClient(mockEth, 18)
	ctx := context.Background()

	mockEth.EXPECT().
		CallContract(ctx, gomock.Any(), gomock.Nil()).
		Return(nil, errors.New("connection refused"))

	_, err := client.GetBalance(ctx, testWallet, testCoin)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOracleUnavailable), "got %v", err)
}

func TestERC20Client_GetBalance_MalformedResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEth := mocks.NewMockEthClient(ctrl)
	client := erc20.NewClient(mockEth, 18)
	ctx := context.Background()

	mockEth.EXPECT().
		CallContract(ctx, gomock.Any(), gomock.Nil()).
		Return([]byte{0x01, 0x02}, nil)

	_, err := client.GetBalance(ctx, testWallet, testCoin)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOracleUnavailable))
}
