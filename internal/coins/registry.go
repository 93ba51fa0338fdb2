package coins

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/revel-xyz/revel-gate/internal/adapter"
	"github.com/revel-xyz/revel-gate/internal/domain"
)

// Registry resolves creator coin metadata from the external coin registry.
// It is consulted once at drop creation; the returned price snapshot is
// frozen into the drop's gating parameters and never re-fetched per view.
//
//go:generate mockgen -source=registry.go -destination=../mocks/coin_registry.go -package=mocks -mock_names=Registry=MockCoinRegistry
type Registry interface {
	// GetCoin fetches the coin's metadata and current USD price
	GetCoin(ctx context.Context, coinAddress string) (*domain.CreatorCoin, error)
}

// coinResponse mirrors the coin API's single-coin payload
type coinResponse struct {
	Coin struct {
		Address  string `json:"address"`
		Name     string `json:"name"`
		Symbol   string `json:"symbol"`
		Decimals int32  `json:"decimals"`
		PriceUSD string `json:"priceUsd"`
	} `json:"coin"`
}

type registry struct {
	baseURL string
	http    adapter.HTTPClient
}

// NewRegistry creates a coin registry backed by the hosted coin API
func NewRegistry(baseURL string, httpClient adapter.HTTPClient) Registry {
	return &registry{baseURL: baseURL, http: httpClient}
}

// GetCoin fetches coin metadata by contract address
func (r *registry) GetCoin(ctx context.Context, coinAddress string) (*domain.CreatorCoin, error) {
	coinAddress = domain.NormalizeAddress(coinAddress)

	endpoint := fmt.Sprintf("%s/coin/%s", r.baseURL, url.PathEscape(coinAddress))

	var response coinResponse
	if err := r.http.Get(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch coin %s: %w", coinAddress, err)
	}

	coin := &domain.CreatorCoin{
		Address:  domain.NormalizeAddress(response.Coin.Address),
		Name:     response.Coin.Name,
		Symbol:   response.Coin.Symbol,
		Decimals: response.Coin.Decimals,
	}
	if coin.Address == "" {
		coin.Address = coinAddress
	}

	if response.Coin.PriceUSD != "" {
		price, err := decimal.NewFromString(response.Coin.PriceUSD)
		if err != nil {
			return nil, fmt.Errorf("malformed coin price %q: %w", response.Coin.PriceUSD, err)
		}
		coin.PriceUSD = price
	}

	return coin, nil
}
