// Command lev computes the leverage and the risk tier of a portfolio of
// stocks and futures.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/leverage/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	cmd.Completion().Complete("lev")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
