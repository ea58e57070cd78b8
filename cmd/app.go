// Package cmd implements the CLI application to run a paper trading session.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/pranavk/papertrade"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&marketCmd{}, "market")
	c.Register(&tickCmd{}, "market")
	c.Register(&runCmd{}, "market")
	c.Register(&newsCmd{}, "market")

	c.Register(&buyCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")
	c.Register(&holdingsCmd{}, "trading")
	c.Register(&txCmd{}, "trading")

	c.Register(&watchCmd{}, "watchlist")
	c.Register(&watchlistCmd{}, "watchlist")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// Names returns the names of all registered subcommands, for shell completion.
func Names() []string {
	return []string{
		"market", "tick", "run", "news",
		"buy", "sell", "holdings", "tx",
		"watch", "watchlist",
		"topic", "assist",
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storePath = flag.String("store-path", ".papertrade", "Path to the folder holding the session state")

// OpenSession is the central function to open the trading session.
// A missing or empty store folder starts a fresh session with the
// seeded market and the opening balance.
func OpenSession() (*papertrade.Session, error) {
	store, err := papertrade.NewDirStore(*storePath)
	if err != nil {
		return nil, fmt.Errorf("cannot open session store %q: %w", *storePath, err)
	}
	return papertrade.NewSession(store), nil
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Fprint(os.Stdout, out)
}
