package cmd

import (
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/etnz/leverage"
	"github.com/shopspring/decimal"
)

// amountFlag is a decimal flag. Thousands separators are accepted: 1,200,000.
type amountFlag struct {
	value decimal.Decimal
	set   bool
}

func (a *amountFlag) String() string { return a.value.String() }
func (a *amountFlag) Set(s string) error {
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return fmt.Errorf("invalid amount %q", s)
	}
	a.value, a.set = d, true
	return nil
}

func (a *amountFlag) money(currency string) leverage.Money { return leverage.M(a.value, currency) }

// percentFlag is a return in whole-percent units: 1.5 is 1.5%.
type percentFlag struct {
	value leverage.Percent
	set   bool
}

func (p *percentFlag) String() string { return strconv.FormatFloat(float64(p.value), 'f', -1, 64) }
func (p *percentFlag) Set(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid percent %q", s)
	}
	p.value, p.set = leverage.Percent(v), true
	return nil
}

type directionFlag struct {
	value leverage.Direction
	set   bool
}

func (d *directionFlag) String() string { return d.value.String() }
func (d *directionFlag) Set(s string) error {
	v, err := leverage.ParseDirection(s)
	if err != nil {
		return err
	}
	d.value, d.set = v, true
	return nil
}

// visited returns the names of the flags set on the command line.
func visited(f *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}
