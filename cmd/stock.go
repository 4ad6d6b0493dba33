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

// stockFlags are the stock fields shared by add-stock and edit-stock.
type stockFlags struct {
	name       string
	shares     int
	cost       amountFlag
	value      amountFlag
	profitLoss amountFlag
	ret        percentFlag
}

func (s *stockFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.name, "n", "", "Name of the stock")
	f.IntVar(&s.shares, "s", 0, "Number of shares held")
	f.Var(&s.cost, "c", "Total cost (cost-basis mode)")
	f.Var(&s.value, "v", "Total market value")
	f.Var(&s.profitLoss, "pl", "Profit/loss reported by the broker (manual mode)")
	f.Var(&s.ret, "r", "Return reported by the broker, in percent: 1.5 for 1.5% (manual mode)")
}

// addStockCmd holds the flags for the 'add-stock' subcommand.
type addStockCmd struct {
	stockFlags
}

func (*addStockCmd) Name() string     { return "add-stock" }
func (*addStockCmd) Synopsis() string { return "add a stock position" }
func (*addStockCmd) Usage() string {
	return `lev add-stock -n <name> -s <shares> -v <value> [-c <cost>] [-pl <p/l> -r <return%>]

  Adds a stock position. In cost-basis mode the P/L is derived from -c and -v,
  in manual mode it is taken from -pl and -r.

Usage Examples:
$ lev add-stock -n TSMC -s 1000 -v 1,050,000 -pl 150000 -r 16.67
`
}

func (c *addStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := OpenSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	cur := session.Currency()
	draft := session.StockDraft()
	draft.Name = c.name
	draft.Shares = c.shares
	draft.TotalCost = c.cost.money(cur)
	draft.MarketValue = c.value.money(cur)
	draft.ProfitLoss = c.profitLoss.money(cur)
	draft.ReturnPercent = c.ret.value

	p, err := session.AddStock()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Added stock %q\n", p.Name())
	printMarkdown(renderer.SummaryMarkdown(session.Totals(), session.TracksFutures()))
	return SaveSession(session)
}

// editStockCmd holds the flags for the 'edit-stock' subcommand.
type editStockCmd struct {
	stockFlags
}

func (*editStockCmd) Name() string     { return "edit-stock" }
func (*editStockCmd) Synopsis() string { return "edit fields of a stock position" }
func (*editStockCmd) Usage() string {
	return `lev edit-stock [-n <name>] [-s <shares>] [-c <cost>] [-v <value>] [-pl <p/l>] [-r <return%>] <#>

  Edits the stock position numbered <#> in the summary. Only the given fields
  are changed.
`
}

func (c *editStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	i, err := positionArg(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	session, err := OpenSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	p, err := session.Stock(i)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	set := visited(f)
	cur := session.Currency()
	err = session.EditStock(p, func(e *leverage.EquityFields) {
		if set["n"] {
			e.Name = c.name
		}
		if set["s"] {
			e.Shares = c.shares
		}
		if c.cost.set {
			e.TotalCost = c.cost.money(cur)
		}
		if c.value.set {
			e.MarketValue = c.value.money(cur)
		}
		if c.profitLoss.set {
			e.ProfitLoss = c.profitLoss.money(cur)
		}
		if c.ret.set {
			e.SetReturnPercent(c.ret.value)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(session.Totals(), session.TracksFutures()))
	return SaveSession(session)
}

// rmStockCmd holds the flags for the 'rm-stock' subcommand.
type rmStockCmd struct{}

func (*rmStockCmd) Name() string     { return "rm-stock" }
func (*rmStockCmd) Synopsis() string { return "remove a stock position" }
func (*rmStockCmd) Usage() string {
	return `lev rm-stock <#>

  Removes the stock position numbered <#> in the summary.
`
}

func (*rmStockCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	i, err := positionArg(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	session, err := OpenSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	p, err := session.Stock(i)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	session.RemoveStock(p)
	fmt.Fprintf(os.Stderr, "Removed stock %q\n", p.Name())
	printMarkdown(renderer.SummaryMarkdown(session.Totals(), session.TracksFutures()))
	return SaveSession(session)
}
