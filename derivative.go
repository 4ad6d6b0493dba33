package leverage

const (
	// SmallContractUnits is the number of underlying units per lot of a small contract.
	SmallContractUnits = 100
	// LargeContractUnits is the number of underlying units per lot of a large contract.
	LargeContractUnits = 2000
)

// SharesPerLot returns the per lot multiplier of a contract size.
func SharesPerLot(small bool) int {
	if small {
		return SmallContractUnits
	}
	return LargeContractUnits
}

// DerivativeFields are the user editable fields of a futures holding.
type DerivativeFields struct {
	Name         string
	Lots         int
	Direction    Direction
	CostPrice    Money // per unit
	CurrentPrice Money // per unit
	Small        bool  // small contracts are 100 units per lot, large ones 2000
}

func (f *DerivativeFields) negative() bool {
	return f.Lots < 0 || f.CostPrice.IsNegative() || f.CurrentPrice.IsNegative()
}

// inCurrency tags every amount with the book currency.
func (f *DerivativeFields) inCurrency(cur string) {
	f.CostPrice = f.CostPrice.In(cur)
	f.CurrentPrice = f.CurrentPrice.In(cur)
}

// DerivativePosition is a futures holding.
//
// Its fields are read only: a position held by a Book is changed with
// Book.EditFuture, so that the totals and the contract size bucket follow.
type DerivativePosition struct {
	f DerivativeFields
}

// NewDerivativePosition creates a position outside of any book, for Aggregate.
func NewDerivativePosition(f DerivativeFields) *DerivativePosition {
	return &DerivativePosition{f: f}
}

// Fields returns a copy of the position fields.
func (d *DerivativePosition) Fields() DerivativeFields { return d.f }

func (d *DerivativePosition) Name() string         { return d.f.Name }
func (d *DerivativePosition) Lots() int            { return d.f.Lots }
func (d *DerivativePosition) Direction() Direction { return d.f.Direction }
func (d *DerivativePosition) CostPrice() Money     { return d.f.CostPrice }
func (d *DerivativePosition) CurrentPrice() Money  { return d.f.CurrentPrice }
func (d *DerivativePosition) Small() bool          { return d.f.Small }

// SharesPerLot is entirely determined by the contract size flag.
func (d *DerivativePosition) SharesPerLot() int { return SharesPerLot(d.f.Small) }

// units returns the total number of underlying units covered.
func (d *DerivativePosition) units() Quantity { return Q(d.SharesPerLot()).Mul(Q(d.f.Lots)) }

// Exposure returns the notional value at the current price.
func (d *DerivativePosition) Exposure() Money { return d.f.CurrentPrice.Mul(d.units()) }

// CostValue returns the notional value at the cost price.
func (d *DerivativePosition) CostValue() Money { return d.f.CostPrice.Mul(d.units()) }

// Gain returns the unrealized profit/loss, signed by direction.
func (d *DerivativePosition) Gain() Money {
	diff := d.f.CurrentPrice.Sub(d.f.CostPrice)
	if d.f.Direction == Short {
		diff = d.f.CostPrice.Sub(d.f.CurrentPrice)
	}
	return diff.Mul(d.units())
}

// Return returns Gain over CostValue, or 0 for a zero cost value.
func (d *DerivativePosition) Return() Rate { return d.Gain().Ratio(d.CostValue()) }
