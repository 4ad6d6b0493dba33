package leverage

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Rate is a return rate stored as a fraction: 0.015 means 1.5%.
type Rate float64

// Percent converts the stored fraction to whole-percent units for display.
//
// The result is rounded to 6 decimals so that 0.0087 shows as 0.87 and not
// 0.8699999999999999. The receiver is left untouched. Values that do not fit
// a finite float are returned unrounded.
func (r Rate) Percent() Percent {
	v := float64(r) * 100
	if !finite(v) {
		return Percent(v)
	}
	return Percent(decimal.NewFromFloat(v).Round(6).InexactFloat64())
}

var hundred = decimal.NewFromInt(100)

// PercentRate converts whole-percent units, as typed by a user, to a Rate.
// 16.67 becomes 0.1667, not 0.16670000000000001. NaN and infinities are
// not rates and become 0.
func PercentRate(p Percent) Rate {
	if !finite(float64(p)) {
		return 0
	}
	return Rate(decimal.NewFromFloat(float64(p)).Div(hundred).InexactFloat64())
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Percent is a display value in whole-percent units: 1.5 means 1.5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
