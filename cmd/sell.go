package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/pranavk/papertrade/renderer"
)

type sellCmd struct {
	quantity int64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares of a held security at the current price" }
func (*sellCmd) Usage() string {
	return `ppt sell -n <quantity> <ticker>

  Sells shares at the current market price. The proceeds are credited to
  the wallet and the realized gain against the average cost is reported.

Usage Examples:
$ ppt sell -n 2 TCS
`
}

func (p *sellCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.quantity, "n", 1, "Number of shares to sell.")
}

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ticker, status := tickerArg(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	session, err := OpenSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	trade, err := session.Sell(ticker, p.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Transaction(trade))
	fmt.Printf("Realized: %s, wallet balance: %s\n", trade.Realized.SignedString(), session.Balance())
	return subcommands.ExitSuccess
}
