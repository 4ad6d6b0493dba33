package leverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addStock(t *testing.T, b *Book, name string, cost, value float64) *EquityPosition {
	t.Helper()
	d := b.StockDraft()
	d.Name = name
	d.Shares = 1000
	d.TotalCost = TWD(cost)
	d.MarketValue = TWD(value)
	p, err := b.AddStock()
	require.NoError(t, err)
	return p
}

func addFuture(t *testing.T, b *Book, name string, small bool) *DerivativePosition {
	t.Helper()
	d := b.FutureDraft()
	d.Name = name
	d.Lots = 1
	d.CostPrice = TWD(17000)
	d.CurrentPrice = TWD(17500)
	d.Small = small
	p, err := b.AddFuture()
	require.NoError(t, err)
	return p
}

func TestBook_AddStock(t *testing.T) {
	b := NewBook(testOptions())
	p := addStock(t, b, "TSMC", 100000, 120000)

	assert.Equal(t, EquityDraft{}, *b.StockDraft(), "draft must be cleared")
	assert.Equal(t, []*EquityPosition{p}, b.Stocks())
	assert.Equal(t, "TWD", p.MarketValue().Currency())
	assert.True(t, b.Totals().StockGain.Equal(TWD(20000)))
}

func TestBook_AddStock_untypedCurrency(t *testing.T) {
	b := NewBook(testOptions())
	b.StockDraft().MarketValue = M(100, "")
	p, err := b.AddStock()
	require.NoError(t, err)
	assert.Equal(t, "TWD", p.MarketValue().Currency())
	assert.Equal(t, "TWD", p.TotalCost().Currency())
}

func TestBook_RemoveStock_identity(t *testing.T) {
	b := NewBook(testOptions())
	first := addStock(t, b, "TSMC", 100, 120)
	twin := addStock(t, b, "TSMC", 100, 120)
	require.Equal(t, first.Fields(), twin.Fields())

	assert.True(t, b.RemoveStock(twin))
	require.Len(t, b.Stocks(), 1)
	assert.Same(t, first, b.Stocks()[0])
	assert.False(t, b.RemoveStock(twin), "already removed")
	assert.True(t, b.Totals().StockValue.Equal(TWD(120)))
}

func TestBook_Stock(t *testing.T) {
	b := NewBook(testOptions())
	p := addStock(t, b, "TSMC", 100, 120)

	got, err := b.Stock(0)
	require.NoError(t, err)
	assert.Same(t, p, got)

	_, err = b.Stock(1)
	assert.ErrorIs(t, err, ErrNoSuchPosition)
	_, err = b.Stock(-1)
	assert.ErrorIs(t, err, ErrNoSuchPosition)
}

func TestBook_EditStock(t *testing.T) {
	b := NewBook(testOptions())
	p := addStock(t, b, "TSMC", 100000, 120000)

	err := b.EditStock(p, func(f *EquityFields) { f.MarketValue = TWD(130000) })
	require.NoError(t, err)
	assert.Same(t, p, b.Stocks()[0], "identity is preserved")
	assert.True(t, p.MarketValue().Equal(TWD(130000)))
	assert.True(t, b.Totals().StockGain.Equal(TWD(30000)))
}

func TestBook_EditStock_notInBook(t *testing.T) {
	tests := []struct {
		name string
		pos  *EquityPosition
	}{
		{name: "nil", pos: nil},
		{name: "foreign", pos: NewEquityPosition(EquityFields{Name: "ghost"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBook(testOptions())
			called := false
			err := b.EditStock(tt.pos, func(*EquityFields) { called = true })
			assert.ErrorIs(t, err, ErrNoSuchPosition)
			assert.False(t, called)
		})
	}
}

func TestBook_EditFuture_notInBook(t *testing.T) {
	tests := []struct {
		name string
		pos  *DerivativePosition
	}{
		{name: "nil", pos: nil},
		{name: "foreign", pos: NewDerivativePosition(DerivativeFields{Name: "ghost"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBook(testOptions())
			called := false
			err := b.EditFuture(tt.pos, func(*DerivativeFields) { called = true })
			assert.ErrorIs(t, err, ErrNoSuchPosition)
			assert.False(t, called)
		})
	}
}

func TestBook_positionsAreReadOnly(t *testing.T) {
	b := NewBook(testOptions())
	p := addStock(t, b, "TSMC", 100000, 120000)
	f := addFuture(t, b, "TX", false)
	before := b.Totals()

	// Fields hands out copies: changing them affects neither the position
	// nor the totals.
	sf := p.Fields()
	sf.MarketValue = TWD(1)
	ff := f.Fields()
	ff.Lots = 50
	ff.Small = true

	assert.True(t, p.MarketValue().Equal(TWD(120000)))
	assert.Equal(t, 1, f.Lots())
	assert.Equal(t, []*DerivativePosition{f}, b.LargeFutures())
	assert.Equal(t, before, b.Totals())

	// The same change through the book is applied and totalled.
	require.NoError(t, b.EditStock(p, func(e *EquityFields) { *e = sf }))
	require.NoError(t, b.EditFuture(f, func(d *DerivativeFields) { *d = ff }))
	assert.True(t, p.MarketValue().Equal(TWD(1)))
	assert.Equal(t, []*DerivativePosition{f}, b.SmallFutures())
	assert.True(t, b.Totals().StockValue.Equal(TWD(1)))
	assert.True(t, b.Totals().FuturesSmallExposure.Equal(TWD(87500000)))
}

func TestBook_Strict(t *testing.T) {
	opts := testOptions()
	opts.Strict = true
	b := NewBook(opts)

	t.Run("add rejects and keeps the draft", func(t *testing.T) {
		d := b.StockDraft()
		d.Name = "oops"
		d.Shares = -10
		_, err := b.AddStock()
		assert.ErrorIs(t, err, ErrNegative)
		assert.Empty(t, b.Stocks())
		assert.Equal(t, "oops", b.StockDraft().Name)
		*d = EquityDraft{}
	})

	t.Run("edit rejects and leaves the position untouched", func(t *testing.T) {
		p := addStock(t, b, "TSMC", 100, 120)
		err := b.EditStock(p, func(f *EquityFields) { f.MarketValue = TWD(-1) })
		assert.ErrorIs(t, err, ErrNegative)
		assert.True(t, p.MarketValue().Equal(TWD(120)))
	})

	t.Run("futures", func(t *testing.T) {
		b.FutureDraft().Lots = -1
		_, err := b.AddFuture()
		assert.ErrorIs(t, err, ErrNegative)
		assert.Empty(t, b.Futures())
	})
}

func TestBook_Permissive(t *testing.T) {
	b := NewBook(testOptions())
	b.StockDraft().Shares = -10
	b.StockDraft().MarketValue = TWD(-500)
	_, err := b.AddStock()
	require.NoError(t, err)
	assert.True(t, b.Totals().StockValue.Equal(TWD(-500)))
}

func TestBook_FuturesBuckets(t *testing.T) {
	b := NewBook(testOptions())
	large := addFuture(t, b, "TX", false)
	small := addFuture(t, b, "MTX", true)

	assert.Equal(t, []*DerivativePosition{small}, b.SmallFutures())
	assert.Equal(t, []*DerivativePosition{large}, b.LargeFutures())
	assert.Equal(t, []*DerivativePosition{small, large}, b.Futures(), "small contracts first")
	assert.Equal(t, DerivativeDraft{}, *b.FutureDraft())

	got, err := b.Future(1)
	require.NoError(t, err)
	assert.Same(t, large, got)

	t.Run("edit moves to the other bucket", func(t *testing.T) {
		err := b.EditFuture(small, func(f *DerivativeFields) { f.Small = false })
		require.NoError(t, err)
		assert.Empty(t, b.SmallFutures())
		assert.Equal(t, []*DerivativePosition{large, small}, b.LargeFutures())
		assert.True(t, b.Totals().FuturesLargeExposure.Equal(TWD(70000000)))
		assert.True(t, b.Totals().FuturesSmallExposure.IsZero())
	})

	t.Run("remove looks in both buckets", func(t *testing.T) {
		removed, err := b.RemoveFuture(small)
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, []*DerivativePosition{large}, b.Futures())
		removed, err = b.RemoveFuture(small)
		require.NoError(t, err)
		assert.False(t, removed, "already removed")
	})
}

func TestBook_FuturesDisabled(t *testing.T) {
	opts := testOptions()
	opts.TrackFutures = false
	b := NewBook(opts)

	_, err := b.AddFuture()
	assert.ErrorIs(t, err, ErrFuturesDisabled)
	assert.ErrorIs(t, b.SetFuturesEquity(TWD(100)), ErrFuturesDisabled)
	assert.ErrorIs(t, b.EditFuture(&DerivativePosition{}, func(*DerivativeFields) {}), ErrFuturesDisabled)
	removed, err := b.RemoveFuture(&DerivativePosition{})
	assert.ErrorIs(t, err, ErrFuturesDisabled)
	assert.False(t, removed)
	assert.True(t, b.FuturesEquity().IsZero())
}

func TestBook_OnChange(t *testing.T) {
	b := NewBook(testOptions())
	var kinds []Mutation
	var last Totals
	b.OnChange(func(m Mutation, t Totals) {
		kinds = append(kinds, m)
		last = t
	})

	p := addStock(t, b, "TSMC", 100, 120)
	require.NoError(t, b.EditStock(p, func(f *EquityFields) { f.Shares = 2000 }))
	b.SetBankCash(TWD(50))
	b.SetStockSettlement(TWD(-20))
	require.NoError(t, b.SetFuturesEquity(TWD(10)))
	b.OverrideStockTotals(TWD(1), 0.01)
	b.RemoveStock(p)
	b.RemoveStock(p) // not in the book, no recompute
	b.Recompute()

	assert.Equal(t, []Mutation{Add, FieldEdit, AccountEdit, AccountEdit, AccountEdit, Override, Remove, Refresh}, kinds)
	assert.Equal(t, b.Totals(), last)
	assert.True(t, last.TotalCapital.Equal(TWD(40)))
}

func TestBook_Recompute_idempotent(t *testing.T) {
	b := NewBook(testOptions())
	addStock(t, b, "TSMC", 100000, 120000)
	addFuture(t, b, "TX", false)
	b.SetBankCash(TWD(50000))

	first := b.Recompute()
	second := b.Recompute()
	assert.Equal(t, first, second)
	assert.Equal(t, first, b.Totals())
}

func TestBook_Override(t *testing.T) {
	t.Run("auto-sum drops the override on the next change", func(t *testing.T) {
		b := NewBook(testOptions())
		addStock(t, b, "TSMC", 100000, 120000)

		b.OverrideStockTotals(TWD(15000), 0.15)
		assert.True(t, b.Totals().StockOverridden)
		assert.True(t, b.Totals().StockGain.Equal(TWD(15000)))
		_, ok := b.StockOverride()
		assert.True(t, ok)

		b.SetBankCash(TWD(1))
		assert.False(t, b.Totals().StockOverridden)
		assert.True(t, b.Totals().StockGain.Equal(TWD(20000)))
		_, ok = b.StockOverride()
		assert.False(t, ok)
	})

	t.Run("keep-override survives changes until recompute", func(t *testing.T) {
		opts := testOptions()
		opts.Policy = KeepOverride
		b := NewBook(opts)
		p := addStock(t, b, "TSMC", 100000, 120000)

		b.OverrideStockTotals(TWD(15000), 0.15)
		require.NoError(t, b.EditStock(p, func(f *EquityFields) { f.MarketValue = TWD(200000) }))
		assert.True(t, b.Totals().StockOverridden)
		assert.True(t, b.Totals().StockGain.Equal(TWD(15000)))
		assert.True(t, b.Totals().TotalExposure.Equal(TWD(200000)), "exposure still follows the positions")

		got := b.Recompute()
		assert.False(t, got.StockOverridden)
		assert.True(t, got.StockGain.Equal(TWD(100000)))
	})

	t.Run("clear", func(t *testing.T) {
		opts := testOptions()
		opts.Policy = KeepOverride
		b := NewBook(opts)
		b.OverrideStockTotals(TWD(15000), 0.15)
		b.ClearOverride()
		assert.False(t, b.Totals().StockOverridden)
	})
}

func TestMutation_String(t *testing.T) {
	assert.Equal(t, "edit", FieldEdit.String())
	assert.Equal(t, "refresh", Refresh.String())
	assert.Equal(t, "load", Load.String())
	assert.Equal(t, "unknown", Mutation(42).String())
}
