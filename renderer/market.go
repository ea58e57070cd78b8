package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/pranavk/papertrade"
)

// Market renders the price board to a markdown string. watched reports
// whether a ticker is on the watchlist; it may be nil.
func Market(securities []papertrade.Security, wallet papertrade.Money, watched func(string) bool) string {
	if watched == nil {
		watched = func(string) bool { return false }
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market")
	doc.PlainText(fmt.Sprintf("Wallet: %s", wallet))

	if len(securities) == 0 {
		doc.PlainText("No securities match.")
		return doc.String()
	}

	rows := make([][]string, 0, len(securities))
	for _, sec := range securities {
		rows = append(rows, []string{
			sec.Ticker(),
			sec.LastPrice().String(),
			direction(sec),
			watchMark(watched(sec.Ticker())),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Security", "Price", "", "Watch"},
		Rows:   rows,
	})

	return doc.String()
}

// Watchlist renders the watched tickers with their current listings.
// Tickers without a listing are skipped.
func Watchlist(tickers []string, quote func(string) (papertrade.Security, bool)) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Watchlist")

	var rows [][]string
	for _, ticker := range tickers {
		sec, ok := quote(ticker)
		if !ok {
			continue
		}
		rows = append(rows, []string{sec.Ticker(), sec.LastPrice().String(), direction(sec)})
	}
	if len(rows) == 0 {
		doc.PlainText("No stocks in watchlist.")
		return doc.String()
	}
	doc.Table(md.TableSet{
		Header: []string{"Security", "Price", ""},
		Rows:   rows,
	})

	return doc.String()
}
