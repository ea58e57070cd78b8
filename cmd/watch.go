package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/pranavk/papertrade/renderer"
)

type watchCmd struct{}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "add or remove a security from the watchlist" }
func (*watchCmd) Usage() string {
	return `ppt watch <ticker>

  Toggles the watchlist membership of a security: adds it when absent,
  removes it when present.

Usage Examples:
$ ppt watch Infosys
`
}

func (*watchCmd) SetFlags(f *flag.FlagSet) {}

func (p *watchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ticker, status := tickerArg(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	session, err := OpenSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	watched, err := session.ToggleWatch(ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if watched {
		fmt.Printf("Added %s to the watchlist.\n", ticker)
	} else {
		fmt.Printf("Removed %s from the watchlist.\n", ticker)
	}
	return subcommands.ExitSuccess
}

type watchlistCmd struct{}

func (*watchlistCmd) Name() string     { return "watchlist" }
func (*watchlistCmd) Synopsis() string { return "display the watchlist with current prices" }
func (*watchlistCmd) Usage() string {
	return `ppt watchlist

  Displays the watched securities with their current prices, in the
  order they were added.
`
}

func (*watchlistCmd) SetFlags(f *flag.FlagSet) {}

func (p *watchlistCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := OpenSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Watchlist(session.Watchlist(), session.Quote))
	return subcommands.ExitSuccess
}
