package gate

import (
	"github.com/shopspring/decimal"

	"github.com/revel-xyz/revel-gate/internal/domain"
)

// Evaluate converts a drop's gating parameters and a viewer balance into an
// access decision. It is pure and deterministic: safe to call both for the
// actual access check and for "how much more do you need" displays.
//
// The threshold is inclusive: holding exactly the required amount grants
// access. A requirement amount of zero always grants. All arithmetic is
// decimal so boundary comparisons never suffer float rounding.
func Evaluate(requirement domain.GatingRequirement, coin domain.CreatorCoin, viewerBalance decimal.Decimal) (domain.AccessDecision, error) {
	required, err := requirement.RequiredTokenCount(coin)
	if err != nil {
		return domain.AccessDecision{}, err
	}

	shortfall := required.Sub(viewerBalance)
	if shortfall.IsNegative() {
		shortfall = decimal.Zero
	}

	return domain.AccessDecision{
		Granted:            viewerBalance.GreaterThanOrEqual(required),
		ViewerBalance:      viewerBalance,
		RequiredTokenCount: required,
		Shortfall:          shortfall,
	}, nil
}
