package leverage

import "github.com/shopspring/decimal"

// TWD is a helper for test to create money in the default book currency.
func TWD[T float64 | int | decimal.Decimal](v T) Money { return M(v, "TWD") }

// dec is a helper for test to parse a decimal literal.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testOptions() Options {
	return Options{Currency: "TWD", Mode: CostBasis, Policy: AutoSum, TrackFutures: true}
}
