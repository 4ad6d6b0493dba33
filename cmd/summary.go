package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/leverage/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	totalsOnly bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the positions, the leverage and the risk tier" }
func (*summaryCmd) Usage() string {
	return `lev summary [-totals]

  Displays every position with its P/L and return, the account figures, and
  the portfolio summary: exposure, capital, leverage and risk tier.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.totalsOnly, "totals", false, "Only display the portfolio summary")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := OpenSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.totalsOnly {
		printMarkdown(renderer.SummaryMarkdown(session.Totals(), session.TracksFutures()))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.BookMarkdown(session.Book))
	return subcommands.ExitSuccess
}
