package zora

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/revel-xyz/revel-gate/internal/adapter"
	"github.com/revel-xyz/revel-gate/internal/domain"
	"github.com/revel-xyz/revel-gate/internal/oracle"
)

// balancePageSize is the number of coin balances requested per profile lookup
const balancePageSize = 100

// profileBalancesResponse mirrors the coin API's profile balances payload
type profileBalancesResponse struct {
	Profile struct {
		CoinBalances struct {
			Edges []balanceEdge `json:"edges"`
		} `json:"coinBalances"`
	} `json:"profile"`
}

type balanceEdge struct {
	Node struct {
		Token struct {
			Address string `json:"address"`
			Name    string `json:"name"`
			Symbol  string `json:"symbol"`
		} `json:"token"`
		Amount struct {
			AmountDecimal string `json:"amountDecimal"`
		} `json:"amount"`
		ValueUSD string `json:"valueUsd"`
	} `json:"node"`
}

type client struct {
	baseURL string
	http    adapter.HTTPClient
}

// NewClient creates a balance oracle backed by the hosted coin profile API
func NewClient(baseURL string, httpClient adapter.HTTPClient) oracle.BalanceOracle {
	return &client{baseURL: baseURL, http: httpClient}
}

// GetBalance looks up the wallet's holdings of the given coin among its
// profile balances. A wallet whose balance list does not include the coin
// verifiably holds zero; a failed or timed-out lookup is an oracle error,
// never a zero.
func (c *client) GetBalance(ctx context.Context, wallet, coinAddress string) (decimal.Decimal, error) {
	wallet = domain.NormalizeAddress(wallet)
	coinAddress = domain.NormalizeAddress(coinAddress)

	endpoint := fmt.Sprintf("%s/profile/%s/balances?count=%d", c.baseURL, url.PathEscape(wallet), balancePageSize)

	var response profileBalancesResponse
	if err := c.http.Get(ctx, endpoint, &response); err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to fetch profile balances: %v", domain.ErrOracleUnavailable, err)
	}

	for _, edge := range response.Profile.CoinBalances.Edges {
		if domain.NormalizeAddress(edge.Node.Token.Address) != coinAddress {
			continue
		}

		amount := edge.Node.Amount.AmountDecimal
		if amount == "" {
			return decimal.Zero, nil
		}

		balance, err := decimal.NewFromString(amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: malformed balance amount %q: %v", domain.ErrOracleUnavailable, amount, err)
		}
		return balance, nil
	}

	// The coin is not among the wallet's balances
	return decimal.Zero, nil
}
