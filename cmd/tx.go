package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/pranavk/papertrade"
	"github.com/pranavk/papertrade/renderer"
)

type txCmd struct {
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the trades recorded in the journal" }
func (*txCmd) Usage() string {
	return `ppt tx [-head <n>] [-tail <n>]

  Lists the executed trades in chronological order, with options for
  limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.head, "head", 0, "Show only the first N trades.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N trades.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	session, err := OpenSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var trades []papertrade.Trade = session.Journal()
	if p.head > 0 && len(trades) > p.head {
		trades = trades[:p.head]
	}
	if p.tail > 0 && len(trades) > p.tail {
		trades = trades[len(trades)-p.tail:]
	}

	printMarkdown(renderer.Transactions(trades))
	return subcommands.ExitSuccess
}
