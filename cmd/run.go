package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/pranavk/papertrade"
)

type runCmd struct {
	interval time.Duration
	addr     string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "run a live market session with an HTTP and websocket API" }
func (*runCmd) Usage() string {
	return `ppt run [-interval <duration>] [-addr <address>]

  Ticks the market on a fixed interval and serves the session state over
  HTTP: the market board, holdings and watchlist as JSON, and a
  websocket stream of price updates on /ws. Stop with Ctrl-C.

Usage Examples:
$ ppt run
$ ppt run -interval 500ms -addr :9000
`
}

func (p *runCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&p.interval, "interval", time.Second, "Time between two market ticks.")
	f.StringVar(&p.addr, "addr", ":8080", "Address to serve the session API on.")
}

func (p *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.interval <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -interval must be positive.")
		return subcommands.ExitUsageError
	}

	session, err := OpenSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	go session.Run(ctx, p.interval)

	server := &http.Server{
		Addr:    p.addr,
		Handler: papertrade.NewServer(session).Handler(),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	log.Printf("serving session on %s, ticking every %s", p.addr, p.interval)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
