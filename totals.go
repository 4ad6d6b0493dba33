package leverage

import "github.com/shopspring/decimal"

// Inputs is everything the totals depend on.
type Inputs struct {
	Currency     string
	Mode         ValuationMode
	TrackFutures bool

	Stocks  []*EquityPosition
	Futures []*DerivativePosition // both contract sizes

	BankCash        Money
	StockSettlement Money
	FuturesEquity   Money
}

// Totals holds the portfolio level figures. They are never stored, always
// derived from Inputs.
type Totals struct {
	Currency string

	StockValue  Money
	StockCost   Money
	StockGain   Money
	StockReturn Rate
	// StockOverridden is true when StockGain and StockReturn were typed by the
	// user instead of being summed.
	StockOverridden bool

	FuturesExposure      Money
	FuturesSmallExposure Money
	FuturesLargeExposure Money
	FuturesCost          Money
	FuturesGain          Money
	FuturesReturn        Rate

	TotalExposure Money
	TotalCapital  Money
	Leverage      decimal.Decimal
	Risk          RiskTier
}

// LeverageFloat is the leverage ratio for display.
func (t Totals) LeverageFloat() float64 { return t.Leverage.InexactFloat64() }

// Aggregate computes the Totals from scratch.
//
// The equity policy follows in.Mode: ManualOverride sums the user typed P/L
// and back-derives the cost, CostBasis sums the cost and derives the P/L.
// When futures are not tracked, every futures term, including the futures
// account equity, counts as 0.
func Aggregate(in Inputs) Totals {
	zero := M(0, in.Currency)
	t := Totals{
		Currency:             in.Currency,
		StockValue:           zero,
		StockCost:            zero,
		StockGain:            zero,
		FuturesExposure:      zero,
		FuturesSmallExposure: zero,
		FuturesLargeExposure: zero,
		FuturesCost:          zero,
		FuturesGain:          zero,
	}

	for _, s := range in.Stocks {
		t.StockValue = t.StockValue.Add(s.Value())
	}
	switch in.Mode {
	case ManualOverride:
		for _, s := range in.Stocks {
			t.StockGain = t.StockGain.Add(s.f.ProfitLoss)
		}
		t.StockCost = t.StockValue.Sub(t.StockGain)
	default:
		for _, s := range in.Stocks {
			t.StockCost = t.StockCost.Add(s.f.TotalCost)
		}
		t.StockGain = t.StockValue.Sub(t.StockCost)
	}
	t.StockReturn = t.StockGain.Ratio(t.StockCost)

	futuresEquity := zero
	if in.TrackFutures {
		for _, f := range in.Futures {
			exposure := f.Exposure()
			t.FuturesExposure = t.FuturesExposure.Add(exposure)
			if f.Small() {
				t.FuturesSmallExposure = t.FuturesSmallExposure.Add(exposure)
			} else {
				t.FuturesLargeExposure = t.FuturesLargeExposure.Add(exposure)
			}
			t.FuturesCost = t.FuturesCost.Add(f.CostValue())
			t.FuturesGain = t.FuturesGain.Add(f.Gain())
		}
		t.FuturesReturn = t.FuturesGain.Ratio(t.FuturesCost)
		futuresEquity = in.FuturesEquity
	}

	t.TotalExposure = t.StockValue.Add(t.FuturesExposure)
	t.TotalCapital = t.StockValue.Add(in.BankCash).Add(in.StockSettlement).Add(futuresEquity)
	t.Leverage, t.Risk = Classify(t.TotalExposure, t.TotalCapital)
	return t
}

// StockOverride is a portfolio level stock P/L and return typed by the user.
type StockOverride struct {
	Gain   Money
	Return Rate
}

func (t Totals) withOverride(o *StockOverride) Totals {
	if o == nil {
		return t
	}
	t.StockGain = o.Gain
	t.StockReturn = o.Return
	t.StockOverridden = true
	return t
}
