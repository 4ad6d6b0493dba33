package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/leverage"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the portfolio snapshot as JSON" }
func (*exportCmd) Usage() string {
	return `lev export [-o <file>]

  Writes the portfolio snapshot in its JSON format, to stdout by default.
  The output can be used as a -snapshot file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, stdout if empty")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := OpenSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	w := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}
	if err := leverage.EncodeRecord(w, session.Record()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// configCmd holds the flags for the 'config' subcommand.
type configCmd struct{}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "print the effective configuration" }
func (*configCmd) Usage() string {
	return `lev config

  Prints the configuration in effect, after the configuration file and the
  LEV_* environment variables have been applied.
`
}

func (*configCmd) SetFlags(f *flag.FlagSet) {}

func (*configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	out, err := cfg.YAML()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(out)
	return subcommands.ExitSuccess
}
