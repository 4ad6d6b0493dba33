// Package cmd implements the CLI application to compute a portfolio leverage.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/leverage"
	"github.com/etnz/leverage/config"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "lev.yaml", "Path to the YAML configuration file")
var snapshotFile = flag.String("snapshot", "", "Path to the portfolio file, overrides the configuration")
var plain = flag.Bool("plain", false, "print raw markdown instead of rendering it for the terminal")

// Commands lists all the subcommands, in display order.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&addStockCmd{},
	&addFutureCmd{},
	&editStockCmd{},
	&editFutureCmd{},
	&rmStockCmd{},
	&rmFutureCmd{},
	&setCmd{},
	&overrideCmd{},
	&exportCmd{},
	&configCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		group := "positions"
		switch cmd.Name() {
		case "summary", "export", "config":
			group = "reports"
		case "set", "override":
			group = "accounts"
		case "topic":
			group = "help"
		}
		c.Register(cmd, group)
	}
}

// LoadConfig loads the app configuration. A missing default configuration
// file is not an error, the built-in defaults are used instead.
func LoadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFile)
	if errors.Is(err, fs.ErrNotExist) && !isFlagSet("config") {
		cfg, err = config.Load("")
	}
	if err != nil {
		return cfg, err
	}
	if *snapshotFile != "" {
		cfg.Snapshot = *snapshotFile
	}
	return cfg, nil
}

// OpenSession loads the configuration and opens the book it points to.
func OpenSession() (*leverage.Session, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("cannot load configuration: %w", err)
	}
	log := config.NewLogger(cfg.Log, os.Stderr)
	opts, err := cfg.Options(&log)
	if err != nil {
		return nil, err
	}
	store := leverage.NewFileStore(cfg.Snapshot, log)
	return leverage.Open(store, opts), nil
}

// SaveSession persists the session, and reports the outcome as an exit status.
func SaveSession(s *leverage.Session) subcommands.ExitStatus {
	if err := s.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal, or prints it as-is with -plain.
func printMarkdown(md string) {
	if *plain {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

// positionArg parses the 1-based position number in the first argument.
func positionArg(f *flag.FlagSet) (int, error) {
	if f.NArg() != 1 {
		return 0, errors.New("expected exactly one position number")
	}
	n, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		return 0, fmt.Errorf("invalid position number %q: %w", f.Arg(0), err)
	}
	return n - 1, nil
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
