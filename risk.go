package leverage

import "github.com/shopspring/decimal"

// RiskTier is the classification of a leverage ratio.
type RiskTier int

const (
	Stable RiskTier = iota
	Moderate
	HighRisk
	// Danger is reserved for a non positive capital, where leverage is meaningless.
	Danger
)

func (r RiskTier) String() string {
	switch r {
	case Stable:
		return "Stable"
	case Moderate:
		return "Moderate"
	case HighRisk:
		return "High risk"
	case Danger:
		return "Danger (capital ≤ 0)"
	default:
		return "unknown"
	}
}

var (
	stableLimit   = decimal.NewFromInt(1)
	moderateLimit = decimal.NewFromInt(2)
)

// Classify computes the leverage exposure/capital and its tier.
//
// Tiers have a closed upper bound: exactly 1 is Stable, exactly 2 is Moderate.
// A capital <= 0 is Danger with a leverage forced to 0.
func Classify(exposure, capital Money) (decimal.Decimal, RiskTier) {
	if capital.value.Sign() <= 0 {
		return decimal.Zero, Danger
	}
	leverage := exposure.value.Div(capital.value)
	switch {
	case leverage.LessThanOrEqual(stableLimit):
		return leverage, Stable
	case leverage.LessThanOrEqual(moderateLimit):
		return leverage, Moderate
	default:
		return leverage, HighRisk
	}
}
