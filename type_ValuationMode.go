package leverage

import "fmt"

// ValuationMode defines how equity profit/loss is obtained, and therefore which
// aggregation policy rolls the equities up.
type ValuationMode int

const (
	// CostBasis derives profit/loss from the total cost of each position.
	// Totals use the cost-basis policy: cost is summed, P/L is value - cost.
	CostBasis ValuationMode = iota
	// ManualOverride uses the broker reported profit/loss and return typed by the user.
	// Totals use the sum-of-manual-inputs policy: P/L is summed, cost is value - P/L.
	ManualOverride
)

func (m ValuationMode) String() string {
	switch m {
	case CostBasis:
		return "cost-basis"
	case ManualOverride:
		return "manual"
	default:
		return "unknown"
	}
}

// ParseValuationMode parses a string into a ValuationMode.
func ParseValuationMode(s string) (ValuationMode, error) {
	switch s {
	case "cost-basis", "cost":
		return CostBasis, nil
	case "manual":
		return ManualOverride, nil
	default:
		return 0, fmt.Errorf("unknown valuation mode: %q", s)
	}
}

// TotalsPolicy decides the fate of a stock totals override when the book is
// recomputed.
type TotalsPolicy int

const (
	// AutoSum discards the override on the next recompute, whatever triggered it.
	AutoSum TotalsPolicy = iota
	// KeepOverride keeps the override across mutations, until an explicit
	// Recompute or ClearOverride.
	KeepOverride
)

func (p TotalsPolicy) String() string {
	switch p {
	case AutoSum:
		return "auto-sum"
	case KeepOverride:
		return "keep-override"
	default:
		return "unknown"
	}
}

// ParseTotalsPolicy parses a string into a TotalsPolicy.
func ParseTotalsPolicy(s string) (TotalsPolicy, error) {
	switch s {
	case "auto-sum":
		return AutoSum, nil
	case "keep-override":
		return KeepOverride, nil
	default:
		return 0, fmt.Errorf("unknown totals policy: %q", s)
	}
}
