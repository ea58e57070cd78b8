package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/pranavk/papertrade/renderer"
)

type buyCmd struct {
	quantity int64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy shares of a security at the current price" }
func (*buyCmd) Usage() string {
	return `ppt buy -n <quantity> <ticker>

  Buys shares at the current market price. The total cost is debited
  from the wallet and the position's average cost is updated.

Usage Examples:
$ ppt buy -n 2 TCS
$ ppt buy -n 10 "HDFC Bank"
`
}

func (p *buyCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.quantity, "n", 1, "Number of shares to buy.")
}

func (p *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ticker, status := tickerArg(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	session, err := OpenSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	trade, err := session.Buy(ticker, p.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Transaction(trade))
	fmt.Printf("Wallet balance: %s\n", session.Balance())
	return subcommands.ExitSuccess
}

// tickerArg reads the positional ticker argument shared by the trading
// commands. A quantity passed as a trailing bare number is a common
// mistake, report it instead of treating it as a ticker.
func tickerArg(f *flag.FlagSet) (string, subcommands.ExitStatus) {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a ticker is required.")
		return "", subcommands.ExitUsageError
	}
	ticker := strings.Join(f.Args(), " ")
	if _, err := strconv.ParseInt(ticker, 10, 64); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %q looks like a quantity, pass it with -n.\n", ticker)
		return "", subcommands.ExitUsageError
	}
	return ticker, subcommands.ExitSuccess
}
