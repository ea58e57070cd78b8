package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/pranavk/papertrade/renderer"
)

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the portfolio positions and their gains" }
func (*holdingsCmd) Usage() string {
	return `ppt holdings

  Displays every open position with its quantity, average cost, current
  market value and unrealized gain, plus the wallet balance.
`
}

func (*holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (p *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := OpenSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var holdings []renderer.Holding
	for _, pos := range session.Positions() {
		sec, ok := session.Quote(pos.Ticker())
		if !ok {
			// a position on a delisted security keeps its cost as value
			holdings = append(holdings, renderer.Holding{Position: pos, Price: pos.AverageCost()})
			continue
		}
		holdings = append(holdings, renderer.Holding{Position: pos, Price: sec.LastPrice()})
	}

	printMarkdown(renderer.Holdings(holdings, session.Balance()))
	return subcommands.ExitSuccess
}
