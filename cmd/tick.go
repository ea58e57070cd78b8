package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/pranavk/papertrade/renderer"
)

type tickCmd struct {
	count int
}

func (*tickCmd) Name() string     { return "tick" }
func (*tickCmd) Synopsis() string { return "advance the market by one or more price ticks" }
func (*tickCmd) Usage() string {
	return `ppt tick [-n <count>]

  Moves every security's price by a random amount within its tier and
  displays the resulting market board.

Usage Examples:
$ ppt tick
$ ppt tick -n 10
`
}

func (p *tickCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.count, "n", 1, "Number of ticks to apply.")
}

func (p *tickCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.count <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -n must be a positive number of ticks.")
		return subcommands.ExitUsageError
	}

	session, err := OpenSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	for range p.count {
		session.Tick()
	}

	printMarkdown(renderer.Market(session.Securities(), session.Balance(), session.Watched))
	return subcommands.ExitSuccess
}
