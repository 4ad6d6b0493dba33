package leverage

import "github.com/shopspring/decimal"

// Record is the flat, persisted form of a Book. Totals are not part of it.
//
// Older files may lack the futures fields, or the manual P/L fields on
// stocks: missing fields decode as zero.
type Record struct {
	Stocks                []StockRecord   `json:"stocks"`
	Futures               []FutureRecord  `json:"futures"`
	BankCash              decimal.Decimal `json:"bankCash"`
	StockSettlementAmount decimal.Decimal `json:"stockSettlementAmount"`
	FuturesEquity         decimal.Decimal `json:"futuresEquity"`
	// StockOverride holds the stock totals typed by the user, if any.
	StockOverride *OverrideRecord `json:"stockOverride"`
}

// StockRecord is the persisted form of an EquityPosition.
type StockRecord struct {
	Name        string          `json:"name"`
	Shares      int             `json:"shares"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	MarketValue decimal.Decimal `json:"marketValue"`
	ProfitLoss  decimal.Decimal `json:"profitLoss"`
	// ProfitLossPercentage is a fraction despite its name: 0.015 is 1.5%.
	ProfitLossPercentage float64 `json:"profitLossPercentage"`
}

// FutureRecord is the persisted form of a DerivativePosition.
type FutureRecord struct {
	Name            string          `json:"name"`
	Lots            int             `json:"lots"`
	Position        Direction       `json:"position"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	CurrentPrice    decimal.Decimal `json:"currentPrice"`
	IsSmallContract bool            `json:"isSmallContract"`
}

// OverrideRecord is the persisted form of a StockOverride.
type OverrideRecord struct {
	ProfitLoss decimal.Decimal `json:"profitLoss"`
	ReturnRate float64         `json:"returnRate"` // a fraction
}

// Record returns the persisted form of the book: stocks, small then large
// futures, account figures and the stock totals override.
func (b *Book) Record() *Record {
	r := &Record{
		Stocks:                make([]StockRecord, 0, len(b.stocks)),
		Futures:               make([]FutureRecord, 0, len(b.small)+len(b.large)),
		BankCash:              b.bankCash.Decimal(),
		StockSettlementAmount: b.stockSettlement.Decimal(),
		FuturesEquity:         b.futuresEquity.Decimal(),
	}
	for _, s := range b.stocks {
		r.Stocks = append(r.Stocks, StockRecord{
			Name:                 s.f.Name,
			Shares:               s.f.Shares,
			TotalCost:            s.f.TotalCost.Decimal(),
			MarketValue:          s.f.MarketValue.Decimal(),
			ProfitLoss:           s.f.ProfitLoss.Decimal(),
			ProfitLossPercentage: float64(s.f.ReturnRate),
		})
	}
	for _, f := range b.Futures() {
		r.Futures = append(r.Futures, FutureRecord{
			Name:            f.f.Name,
			Lots:            f.f.Lots,
			Position:        f.f.Direction,
			CostPrice:       f.f.CostPrice.Decimal(),
			CurrentPrice:    f.f.CurrentPrice.Decimal(),
			IsSmallContract: f.f.Small,
		})
	}
	if b.override != nil {
		r.StockOverride = &OverrideRecord{
			ProfitLoss: b.override.Gain.Decimal(),
			ReturnRate: float64(b.override.Return),
		}
	}
	return r
}

// Restore creates a book from a record. A nil record yields an empty book.
//
// Futures are restored even when opts does not track them, so that saving
// the book again does not lose them; they just do not count in the totals.
// A saved override is restored whatever the policy: auto-sum drops it on the
// next mutation.
func Restore(r *Record, opts Options) *Book {
	b := NewBook(opts)
	if r == nil {
		return b
	}
	cur := opts.Currency
	for _, s := range r.Stocks {
		b.stocks = append(b.stocks, &EquityPosition{f: EquityFields{
			Name:        s.Name,
			Shares:      s.Shares,
			TotalCost:   M(s.TotalCost, cur),
			MarketValue: M(s.MarketValue, cur),
			ProfitLoss:  M(s.ProfitLoss, cur),
			ReturnRate:  Rate(s.ProfitLossPercentage),
		}})
	}
	for _, f := range r.Futures {
		b.place(&DerivativePosition{f: DerivativeFields{
			Name:         f.Name,
			Lots:         f.Lots,
			Direction:    f.Position,
			CostPrice:    M(f.CostPrice, cur),
			CurrentPrice: M(f.CurrentPrice, cur),
			Small:        f.IsSmallContract,
		}})
	}
	b.bankCash = M(r.BankCash, cur)
	b.stockSettlement = M(r.StockSettlementAmount, cur)
	b.futuresEquity = M(r.FuturesEquity, cur)
	if o := r.StockOverride; o != nil {
		b.override = &StockOverride{Gain: M(o.ProfitLoss, cur), Return: Rate(o.ReturnRate)}
	}
	b.recompute(Load)
	return b
}
