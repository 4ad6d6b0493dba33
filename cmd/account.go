package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/leverage"
	"github.com/etnz/leverage/renderer"
	"github.com/google/subcommands"
)

// setCmd holds the flags for the 'set' subcommand.
type setCmd struct {
	cash          amountFlag
	settlement    amountFlag
	futuresEquity amountFlag
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set the account figures" }
func (*setCmd) Usage() string {
	return `lev set [-cash <amount>] [-settlement <amount>] [-futures-equity <amount>]

  Sets the bank cash, the stock settlement receivable of the last days, or
  the futures account equity. Only the given figures are changed.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.cash, "cash", "Cash available at the bank")
	f.Var(&c.settlement, "settlement", "Stock settlement receivable")
	f.Var(&c.futuresEquity, "futures-equity", "Equity of the futures account")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := OpenSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	cur := session.Currency()
	if c.cash.set {
		session.SetBankCash(c.cash.money(cur))
	}
	if c.settlement.set {
		session.SetStockSettlement(c.settlement.money(cur))
	}
	if c.futuresEquity.set {
		if err := session.SetFuturesEquity(c.futuresEquity.money(cur)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	printMarkdown(renderer.SummaryMarkdown(session.Totals(), session.TracksFutures()))
	return SaveSession(session)
}

// overrideCmd holds the flags for the 'override' subcommand.
type overrideCmd struct {
	profitLoss amountFlag
	ret        percentFlag
	clear      bool
}

func (*overrideCmd) Name() string     { return "override" }
func (*overrideCmd) Synopsis() string { return "type the portfolio stock P/L and return" }
func (*overrideCmd) Usage() string {
	return `lev override -pl <p/l> -r <return%>
lev override -clear

  Displays the given stock P/L and return instead of the summed ones. The
  override is saved; how long it lasts depends on the configured policy
  (auto-sum drops it on the next change, keep-override keeps it until
  -clear).
`
}

func (c *overrideCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.profitLoss, "pl", "Total stock profit/loss")
	f.Var(&c.ret, "r", "Total stock return, in percent")
	f.BoolVar(&c.clear, "clear", false, "Drop the typed totals and show the sums again")
}

func (c *overrideCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.clear == (c.profitLoss.set || c.ret.set) {
		fmt.Fprintln(os.Stderr, "Error: either -clear or at least one of -pl or -r is required")
		return subcommands.ExitUsageError
	}
	session, err := OpenSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.clear {
		session.ClearOverride()
	} else {
		t := session.Totals()
		gain, ret := t.StockGain, t.StockReturn
		if c.profitLoss.set {
			gain = c.profitLoss.money(session.Currency())
		}
		if c.ret.set {
			ret = leverage.PercentRate(c.ret.value)
		}
		session.OverrideStockTotals(gain, ret)
	}
	printMarkdown(renderer.BookMarkdown(session.Book))
	return SaveSession(session)
}
