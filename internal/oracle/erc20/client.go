package erc20

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/revel-xyz/revel-gate/internal/adapter"
	"github.com/revel-xyz/revel-gate/internal/domain"
	"github.com/revel-xyz/revel-gate/internal/oracle"
)

// balanceOfABI is the ERC-20 balanceOf function signature: balanceOf(address) returns (uint256)
const balanceOfABI = `[{"constant":true,"inputs":[{"name":"_owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"balance","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"}]`

// defaultCoinDecimals is the unit scale assumed for creator coins
const defaultCoinDecimals = 18

type client struct {
	eth      adapter.EthClient
	decimals int32
}

// NewClient creates a balance oracle that reads ERC-20 balances directly from
// the chain over RPC. Creator coins share a fixed decimal scale, so the
// divisor is configured once; pass 0 to use the default of 18.
func NewClient(eth adapter.EthClient, decimals int32) oracle.BalanceOracle {
	if decimals == 0 {
		decimals = defaultCoinDecimals
	}
	return &client{eth: eth, decimals: decimals}
}

// GetBalance fetches the wallet's ERC-20 balance via a balanceOf contract
// call and converts raw units into whole tokens
func (c *client) GetBalance(ctx context.Context, wallet, coinAddress string) (decimal.Decimal, error) {
	wallet = domain.NormalizeAddress(wallet)
	coinAddress = domain.NormalizeAddress(coinAddress)

	parsedABI, err := abi.JSON(strings.NewReader(balanceOfABI))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse ABI: %w", err)
	}

	data, err := parsedABI.Pack("balanceOf", common.HexToAddress(wallet))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to pack data: %w", err)
	}

	contractAddr := common.HexToAddress(coinAddress)
	result, err := c.eth.CallContract(ctx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to call contract: %v", domain.ErrOracleUnavailable, err)
	}

	var raw *big.Int
	if err := parsedABI.UnpackIntoInterface(&raw, "balanceOf", result); err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to unpack result: %v", domain.ErrOracleUnavailable, err)
	}

	return decimal.NewFromBigInt(raw, -c.decimals), nil
}
