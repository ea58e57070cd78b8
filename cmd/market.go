package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/pranavk/papertrade/renderer"
)

type marketCmd struct {
	query string
}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "display the market board with current prices" }
func (*marketCmd) Usage() string {
	return `ppt market [-q <query>]

  Displays the market board: every security with its current price, the
  direction of the last move, and the wallet balance. Use -q to narrow
  the board to securities whose ticker contains the query.

Usage Examples:
$ ppt market
$ ppt market -q bank
`
}

func (p *marketCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.query, "q", "", "Show only securities whose ticker contains this text.")
}

func (p *marketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := OpenSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	securities := session.Securities()
	if q := strings.TrimSpace(p.query); q != "" {
		securities = session.Search(q)
		if len(securities) == 0 {
			fmt.Printf("No results found for %q.\n", q)
			return subcommands.ExitSuccess
		}
	}

	printMarkdown(renderer.Market(securities, session.Balance(), session.Watched))
	return subcommands.ExitSuccess
}
