package leverage

// EquityDraft holds the staged input of a stock about to be added.
//
// The return is staged in whole-percent units, as the user types it, and is
// converted to a fraction when the position is created.
type EquityDraft struct {
	Name          string
	Shares        int
	TotalCost     Money
	MarketValue   Money
	ProfitLoss    Money
	ReturnPercent Percent
}

func (d *EquityDraft) fields(currency string) EquityFields {
	f := EquityFields{
		Name:        d.Name,
		Shares:      d.Shares,
		TotalCost:   d.TotalCost,
		MarketValue: d.MarketValue,
		ProfitLoss:  d.ProfitLoss,
		ReturnRate:  PercentRate(d.ReturnPercent),
	}
	f.inCurrency(currency)
	return f
}

// DerivativeDraft holds the staged input of a futures position about to be added.
type DerivativeDraft struct {
	Name         string
	Lots         int
	Direction    Direction
	CostPrice    Money
	CurrentPrice Money
	Small        bool
}

func (d *DerivativeDraft) fields(currency string) DerivativeFields {
	f := DerivativeFields(*d)
	f.inCurrency(currency)
	return f
}
