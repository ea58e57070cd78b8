package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/pranavk/papertrade"
	"github.com/pranavk/papertrade/renderer"
)

type newsCmd struct{}

func (*newsCmd) Name() string     { return "news" }
func (*newsCmd) Synopsis() string { return "search financial news for a keyword" }
func (*newsCmd) Usage() string {
	return `ppt news <keyword>

  Searches NewsAPI for articles matching the keyword and displays the
  illustrated results. Requires a NewsAPI key, passed with the global
  -news-api-key flag or the NEWSAPI_KEY environment variable.

Usage Examples:
$ ppt news reliance
`
}

func (*newsCmd) SetFlags(f *flag.FlagSet) {}

func (p *newsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search keyword is required.")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	client := papertrade.NewNewsClient(papertrade.NewsAPIKey())
	articles, err := client.Search(ctx, query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load news. Please try again later. (%v)\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.News(query, articles))
	return subcommands.ExitSuccess
}
