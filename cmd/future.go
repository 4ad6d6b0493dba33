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

// futureFlags are the futures fields shared by add-future and edit-future.
type futureFlags struct {
	name      string
	lots      int
	direction directionFlag
	cost      amountFlag
	price     amountFlag
	small     bool
}

func (c *futureFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Name of the underlying")
	f.IntVar(&c.lots, "l", 0, "Number of lots")
	f.Var(&c.direction, "side", "Direction: long or short")
	f.Var(&c.cost, "c", "Cost price per unit")
	f.Var(&c.price, "p", "Current price per unit")
	f.BoolVar(&c.small, "small", false, "Small contract (100 units per lot) instead of large (2000 units per lot)")
}

// addFutureCmd holds the flags for the 'add-future' subcommand.
type addFutureCmd struct {
	futureFlags
}

func (*addFutureCmd) Name() string     { return "add-future" }
func (*addFutureCmd) Synopsis() string { return "add a futures position" }
func (*addFutureCmd) Usage() string {
	return `lev add-future -n <name> -l <lots> [-side long|short] -c <cost price> -p <price> [-small]

  Adds a futures position. Large contracts cover 2000 units per lot, small
  ones 100.

Usage Examples:
$ lev add-future -n TX -l 2 -side long -c 17000 -p 17500
`
}

func (c *addFutureCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := OpenSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	cur := session.Currency()
	draft := session.FutureDraft()
	draft.Name = c.name
	draft.Lots = c.lots
	draft.Direction = c.direction.value
	draft.CostPrice = c.cost.money(cur)
	draft.CurrentPrice = c.price.money(cur)
	draft.Small = c.small

	p, err := session.AddFuture()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Added future %q\n", p.Name())
	printMarkdown(renderer.SummaryMarkdown(session.Totals(), session.TracksFutures()))
	return SaveSession(session)
}

// editFutureCmd holds the flags for the 'edit-future' subcommand.
type editFutureCmd struct {
	futureFlags
}

func (*editFutureCmd) Name() string     { return "edit-future" }
func (*editFutureCmd) Synopsis() string { return "edit fields of a futures position" }
func (*editFutureCmd) Usage() string {
	return `lev edit-future [-n <name>] [-l <lots>] [-side long|short] [-c <cost price>] [-p <price>] [-small=true|false] <#>

  Edits the futures position numbered <#> in the summary. Only the given
  fields are changed. Changing -small moves the position to the other
  contract size.
`
}

func (c *editFutureCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	p, err := session.Future(i)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	set := visited(f)
	cur := session.Currency()
	err = session.EditFuture(p, func(d *leverage.DerivativeFields) {
		if set["n"] {
			d.Name = c.name
		}
		if set["l"] {
			d.Lots = c.lots
		}
		if c.direction.set {
			d.Direction = c.direction.value
		}
		if c.cost.set {
			d.CostPrice = c.cost.money(cur)
		}
		if c.price.set {
			d.CurrentPrice = c.price.money(cur)
		}
		if set["small"] {
			d.Small = c.small
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(session.Totals(), session.TracksFutures()))
	return SaveSession(session)
}

// rmFutureCmd holds the flags for the 'rm-future' subcommand.
type rmFutureCmd struct{}

func (*rmFutureCmd) Name() string     { return "rm-future" }
func (*rmFutureCmd) Synopsis() string { return "remove a futures position" }
func (*rmFutureCmd) Usage() string {
	return `lev rm-future <#>

  Removes the futures position numbered <#> in the summary.
`
}

func (*rmFutureCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmFutureCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	p, err := session.Future(i)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if _, err := session.RemoveFuture(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Removed future %q\n", p.Name())
	printMarkdown(renderer.SummaryMarkdown(session.Totals(), session.TracksFutures()))
	return SaveSession(session)
}
