package leverage

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// Mutation tags what triggered a recompute. The book always recomputes
// everything, the tag is only informative.
type Mutation int

const (
	FieldEdit Mutation = iota
	Add
	Remove
	AccountEdit
	Override
	Refresh
	// Load publishes the totals of a restored book, override included.
	Load
)

func (m Mutation) String() string {
	switch m {
	case FieldEdit:
		return "edit"
	case Add:
		return "add"
	case Remove:
		return "remove"
	case AccountEdit:
		return "account"
	case Override:
		return "override"
	case Refresh:
		return "refresh"
	case Load:
		return "load"
	default:
		return "unknown"
	}
}

// Options configure a Book. They are fixed for the book's lifetime.
type Options struct {
	Currency     string
	Mode         ValuationMode
	Policy       TotalsPolicy
	TrackFutures bool
	// Strict rejects negative share counts, lots and prices. The default is to
	// accept them, as a short equity or a data entry in progress can be negative.
	Strict bool
	Logger *zerolog.Logger // nil to discard logs
}

// Book is the working set of positions and account figures.
//
// Every mutation goes through a Book method that recomputes the Totals
// before returning, so Totals is never stale. Positions are identified by
// pointer: two positions with identical fields are still distinct.
//
// A Book is not safe for concurrent use.
type Book struct {
	opts Options
	log  zerolog.Logger

	stocks []*EquityPosition
	small  []*DerivativePosition
	large  []*DerivativePosition

	bankCash        Money
	stockSettlement Money
	futuresEquity   Money

	stockDraft  EquityDraft
	futureDraft DerivativeDraft

	override  *StockOverride
	totals    Totals
	listeners []func(Mutation, Totals)
}

// NewBook creates an empty book.
func NewBook(opts Options) *Book {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	zero := M(0, opts.Currency)
	b := &Book{
		opts:            opts,
		log:             log.With().Str("component", "book").Logger(),
		stocks:          make([]*EquityPosition, 0),
		small:           make([]*DerivativePosition, 0),
		large:           make([]*DerivativePosition, 0),
		bankCash:        zero,
		stockSettlement: zero,
		futuresEquity:   zero,
	}
	b.recompute(Refresh)
	return b
}

func (b *Book) Currency() string    { return b.opts.Currency }
func (b *Book) Mode() ValuationMode { return b.opts.Mode }
func (b *Book) Policy() TotalsPolicy {
	return b.opts.Policy
}
func (b *Book) TracksFutures() bool { return b.opts.TrackFutures }

// Totals returns the totals published by the last mutation.
func (b *Book) Totals() Totals { return b.totals }

// OnChange registers f to be called after every recompute, with the totals just published.
func (b *Book) OnChange(f func(Mutation, Totals)) { b.listeners = append(b.listeners, f) }

// Stocks returns the stock positions in insertion order.
func (b *Book) Stocks() []*EquityPosition { return slices.Clone(b.stocks) }

// SmallFutures returns the futures positions on small contracts.
func (b *Book) SmallFutures() []*DerivativePosition { return slices.Clone(b.small) }

// LargeFutures returns the futures positions on large contracts.
func (b *Book) LargeFutures() []*DerivativePosition { return slices.Clone(b.large) }

// Futures returns all futures positions, small contracts first.
func (b *Book) Futures() []*DerivativePosition {
	return append(slices.Clone(b.small), b.large...)
}

// Stock returns the i-th stock position (0-based).
func (b *Book) Stock(i int) (*EquityPosition, error) {
	if i < 0 || i >= len(b.stocks) {
		return nil, fmt.Errorf("%w: stock #%d", ErrNoSuchPosition, i+1)
	}
	return b.stocks[i], nil
}

// Future returns the i-th futures position (0-based) in the Futures order.
func (b *Book) Future(i int) (*DerivativePosition, error) {
	all := b.Futures()
	if i < 0 || i >= len(all) {
		return nil, fmt.Errorf("%w: future #%d", ErrNoSuchPosition, i+1)
	}
	return all[i], nil
}

func (b *Book) BankCash() Money        { return b.bankCash }
func (b *Book) StockSettlement() Money { return b.stockSettlement }
func (b *Book) FuturesEquity() Money   { return b.futuresEquity }

// StockDraft returns the staged stock input, to be filled before AddStock.
func (b *Book) StockDraft() *EquityDraft { return &b.stockDraft }

// FutureDraft returns the staged futures input, to be filled before AddFuture.
func (b *Book) FutureDraft() *DerivativeDraft { return &b.futureDraft }

// AddStock creates a stock position from the staged draft, appends it, and
// clears the draft.
//
// A strict book rejects negative values and keeps the draft for correction.
func (b *Book) AddStock() (*EquityPosition, error) {
	f := b.stockDraft.fields(b.opts.Currency)
	if b.opts.Strict && f.negative(b.opts.Mode) {
		return nil, fmt.Errorf("cannot add stock %q: %w", f.Name, ErrNegative)
	}
	p := &EquityPosition{f: f}
	b.stocks = append(b.stocks, p)
	b.stockDraft = EquityDraft{}
	b.recompute(Add)
	return p, nil
}

// AddFuture creates a futures position from the staged draft, routes it to the
// bucket of its contract size, and clears the draft.
func (b *Book) AddFuture() (*DerivativePosition, error) {
	if !b.opts.TrackFutures {
		return nil, ErrFuturesDisabled
	}
	f := b.futureDraft.fields(b.opts.Currency)
	if b.opts.Strict && f.negative() {
		return nil, fmt.Errorf("cannot add future %q: %w", f.Name, ErrNegative)
	}
	p := &DerivativePosition{f: f}
	b.place(p)
	b.futureDraft = DerivativeDraft{}
	b.recompute(Add)
	return p, nil
}

// RemoveStock removes p from the book. It reports false, and does nothing, if
// p is not in the book.
func (b *Book) RemoveStock(p *EquityPosition) bool {
	i := slices.Index(b.stocks, p)
	if i < 0 {
		return false
	}
	b.stocks = slices.Delete(b.stocks, i, i+1)
	b.recompute(Remove)
	return true
}

// RemoveFuture removes p from whichever bucket holds it. It reports false,
// and does nothing, if p is not in the book. Like every futures mutation it
// fails with ErrFuturesDisabled when the book does not track futures.
func (b *Book) RemoveFuture(p *DerivativePosition) (bool, error) {
	if !b.opts.TrackFutures {
		return false, ErrFuturesDisabled
	}
	if !b.unplace(p) {
		return false, nil
	}
	b.recompute(Remove)
	return true, nil
}

// EditStock applies edit to the fields of p and recomputes. It is the only
// way to change a position held by the book.
//
// The edit is applied on a copy first so that a strict book can reject it
// without altering p.
func (b *Book) EditStock(p *EquityPosition, edit func(*EquityFields)) error {
	if p == nil || !slices.Contains(b.stocks, p) {
		return fmt.Errorf("%w: stock is not in the book", ErrNoSuchPosition)
	}
	f := p.f
	edit(&f)
	f.inCurrency(b.opts.Currency)
	if b.opts.Strict && f.negative(b.opts.Mode) {
		return fmt.Errorf("cannot edit stock %q: %w", p.f.Name, ErrNegative)
	}
	p.f = f
	b.recompute(FieldEdit)
	return nil
}

// EditFuture applies edit to p and recomputes. A change of contract size moves
// p to the other bucket.
func (b *Book) EditFuture(p *DerivativePosition, edit func(*DerivativeFields)) error {
	if !b.opts.TrackFutures {
		return ErrFuturesDisabled
	}
	if p == nil || (!slices.Contains(b.small, p) && !slices.Contains(b.large, p)) {
		return fmt.Errorf("%w: future is not in the book", ErrNoSuchPosition)
	}
	f := p.f
	edit(&f)
	f.inCurrency(b.opts.Currency)
	if b.opts.Strict && f.negative() {
		return fmt.Errorf("cannot edit future %q: %w", p.f.Name, ErrNegative)
	}
	moved := f.Small != p.f.Small
	if moved {
		b.unplace(p)
	}
	p.f = f
	if moved {
		b.place(p)
	}
	b.recompute(FieldEdit)
	return nil
}

// SetBankCash sets the cash available at the bank.
func (b *Book) SetBankCash(m Money) {
	b.bankCash = m.In(b.opts.Currency)
	b.recompute(AccountEdit)
}

// SetStockSettlement sets the stock settlement receivable of the last days.
func (b *Book) SetStockSettlement(m Money) {
	b.stockSettlement = m.In(b.opts.Currency)
	b.recompute(AccountEdit)
}

// SetFuturesEquity sets the equity of the futures account.
func (b *Book) SetFuturesEquity(m Money) error {
	if !b.opts.TrackFutures {
		return ErrFuturesDisabled
	}
	b.futuresEquity = m.In(b.opts.Currency)
	b.recompute(AccountEdit)
	return nil
}

// OverrideStockTotals replaces the summed stock P/L and return by values typed
// by the user. The book's TotalsPolicy decides how long the override lasts;
// it is part of the Record, so it lasts across sessions too.
func (b *Book) OverrideStockTotals(gain Money, ret Rate) {
	b.override = &StockOverride{Gain: gain.In(b.opts.Currency), Return: ret}
	b.recompute(Override)
}

// StockOverride returns the current override, if any.
func (b *Book) StockOverride() (StockOverride, bool) {
	if b.override == nil {
		return StockOverride{}, false
	}
	return *b.override, true
}

// ClearOverride drops the stock totals override.
func (b *Book) ClearOverride() {
	b.override = nil
	b.recompute(Override)
}

// Recompute explicitly recomputes the totals from the positions. It drops
// any override.
func (b *Book) Recompute() Totals {
	b.recompute(Refresh)
	return b.totals
}

// Inputs returns a view of the book as aggregation inputs.
func (b *Book) Inputs() Inputs {
	return Inputs{
		Currency:        b.opts.Currency,
		Mode:            b.opts.Mode,
		TrackFutures:    b.opts.TrackFutures,
		Stocks:          b.Stocks(),
		Futures:         b.Futures(),
		BankCash:        b.bankCash,
		StockSettlement: b.stockSettlement,
		FuturesEquity:   b.futuresEquity,
	}
}

func (b *Book) recompute(kind Mutation) {
	if kind == Refresh || (kind != Override && kind != Load && b.opts.Policy == AutoSum) {
		b.override = nil
	}
	b.totals = Aggregate(b.Inputs()).withOverride(b.override)

	b.log.Debug().
		Stringer("mutation", kind).
		Int("stocks", len(b.stocks)).
		Int("futures", len(b.small)+len(b.large)).
		Str("exposure", b.totals.TotalExposure.Decimal().String()).
		Str("capital", b.totals.TotalCapital.Decimal().String()).
		Str("leverage", b.totals.Leverage.StringFixed(4)).
		Stringer("risk", b.totals.Risk).
		Msg("recomputed")

	for _, f := range b.listeners {
		f(kind, b.totals)
	}
}

// bucket returns the bucket for a contract size.
func (b *Book) bucket(small bool) *[]*DerivativePosition {
	if small {
		return &b.small
	}
	return &b.large
}

func (b *Book) place(p *DerivativePosition) {
	bk := b.bucket(p.f.Small)
	*bk = append(*bk, p)
}

// unplace looks in both buckets, the caller may not know which holds p.
func (b *Book) unplace(p *DerivativePosition) bool {
	for _, bk := range []*[]*DerivativePosition{&b.small, &b.large} {
		if i := slices.Index(*bk, p); i >= 0 {
			*bk = slices.Delete(*bk, i, i+1)
			return true
		}
	}
	return false
}
