package leverage

// EquityFields are the user editable fields of a stock holding.
//
// Which fields are meaningful depends on the ValuationMode of the book:
// CostBasis reads TotalCost and MarketValue, ManualOverride reads
// MarketValue, ProfitLoss and ReturnRate. The unused fields are persisted
// as-is so that switching mode does not lose user input.
type EquityFields struct {
	Name        string // display only, not unique
	Shares      int
	TotalCost   Money
	MarketValue Money
	ProfitLoss  Money // as reported by the broker
	ReturnRate  Rate  // as reported by the broker
}

// SetReturnPercent stores a return typed in whole-percent units.
func (f *EquityFields) SetReturnPercent(p Percent) { f.ReturnRate = PercentRate(p) }

// negative reports whether a count or amount the mode relies on is negative.
func (f *EquityFields) negative(mode ValuationMode) bool {
	if f.Shares < 0 || f.MarketValue.IsNegative() {
		return true
	}
	return mode == CostBasis && f.TotalCost.IsNegative()
}

// inCurrency tags every amount with the book currency.
func (f *EquityFields) inCurrency(cur string) {
	f.TotalCost = f.TotalCost.In(cur)
	f.MarketValue = f.MarketValue.In(cur)
	f.ProfitLoss = f.ProfitLoss.In(cur)
}

// EquityPosition is a stock holding.
//
// Its fields are read only: a position held by a Book is changed with
// Book.EditStock, so that the totals follow.
type EquityPosition struct {
	f EquityFields
}

// NewEquityPosition creates a position outside of any book, for Aggregate.
func NewEquityPosition(f EquityFields) *EquityPosition { return &EquityPosition{f: f} }

// Fields returns a copy of the position fields.
func (e *EquityPosition) Fields() EquityFields { return e.f }

func (e *EquityPosition) Name() string       { return e.f.Name }
func (e *EquityPosition) Shares() int        { return e.f.Shares }
func (e *EquityPosition) TotalCost() Money   { return e.f.TotalCost }
func (e *EquityPosition) MarketValue() Money { return e.f.MarketValue }
func (e *EquityPosition) ProfitLoss() Money  { return e.f.ProfitLoss }
func (e *EquityPosition) ReturnRate() Rate   { return e.f.ReturnRate }

// Value returns the market value, which is also the position's exposure.
func (e *EquityPosition) Value() Money { return e.f.MarketValue }

// Cost returns the cost basis of the position under mode.
//
// In ManualOverride mode the cost is unknown and is back-derived as value - P/L.
func (e *EquityPosition) Cost(mode ValuationMode) Money {
	if mode == ManualOverride {
		return e.f.MarketValue.Sub(e.f.ProfitLoss)
	}
	return e.f.TotalCost
}

// Gain returns the profit/loss of the position under mode.
func (e *EquityPosition) Gain(mode ValuationMode) Money {
	if mode == ManualOverride {
		return e.f.ProfitLoss
	}
	return e.f.MarketValue.Sub(e.f.TotalCost)
}

// Return returns the return rate of the position under mode.
// In CostBasis mode a zero cost yields a zero return.
func (e *EquityPosition) Return(mode ValuationMode) Rate {
	if mode == ManualOverride {
		return e.f.ReturnRate
	}
	return e.Gain(mode).Ratio(e.f.TotalCost)
}

// ReturnPercent returns the return in whole-percent units, as shown to the user.
func (e *EquityPosition) ReturnPercent(mode ValuationMode) Percent {
	return e.Return(mode).Percent()
}
