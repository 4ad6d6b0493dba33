package renderer

import (
	"fmt"
	"strconv"

	"github.com/etnz/leverage"
)

// signed formats a P/L, with an explicit sign.
func signed(m leverage.Money) string { return m.SignedString() }

// rate formats a return rate in whole-percent units, with an explicit sign.
func rate(r leverage.Rate) string { return r.Percent().SignedString() }

// ratio formats a leverage ratio.
func ratio(t leverage.Totals) string { return fmt.Sprintf("%.2fx", t.LeverageFloat()) }

// index formats a 1-based position number, as used on the command line.
func index(i int) string { return strconv.Itoa(i + 1) }

// side formats a futures direction.
func side(d leverage.Direction) string {
	if d == leverage.Short {
		return "Short"
	}
	return "Long"
}
