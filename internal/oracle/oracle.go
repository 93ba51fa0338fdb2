package oracle

import (
	"context"

	"github.com/shopspring/decimal"
)

// BalanceOracle abstracts the external source of truth for how many whole
// tokens of a creator coin a wallet currently holds.
//
// Implementations must normalize wallet and coin addresses before any
// comparison or external call, and must surface failures as errors wrapping
// domain.ErrOracleUnavailable. A failed lookup is never reported as a zero
// balance: zero means the wallet verifiably holds nothing.
//
//go:generate mockgen -source=oracle.go -destination=../mocks/oracle.go -package=mocks -mock_names=BalanceOracle=MockBalanceOracle
type BalanceOracle interface {
	// GetBalance returns the wallet's balance of the given coin in
	// whole-token decimal units
	GetBalance(ctx context.Context, wallet, coinAddress string) (decimal.Decimal, error)
}
