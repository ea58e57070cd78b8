package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/pranavk/papertrade"
)

func TestMarketBoard(t *testing.T) {
	securities := []papertrade.Security{
		papertrade.NewSecurity("TCS", papertrade.Rupees(3500)),
		papertrade.NewSecurity("SBI", papertrade.Rupees(600)),
	}
	watched := func(ticker string) bool { return ticker == "TCS" }

	got := Market(securities, papertrade.Rupees(100_000), watched)

	for _, want := range []string{
		"# Market",
		"TCS",
		papertrade.Rupees(3500).String(),
		papertrade.Rupees(100_000).String(),
		"👁",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("board is missing %q:\n%s", want, got)
		}
	}
}

func TestMarketBoardNilWatched(t *testing.T) {
	securities := []papertrade.Security{papertrade.NewSecurity("TCS", papertrade.Rupees(3500))}
	if got := Market(securities, papertrade.Rupees(100_000), nil); !strings.Contains(got, "TCS") {
		t.Errorf("board is missing the security:\n%s", got)
	}
}

func TestWatchlistEmpty(t *testing.T) {
	quote := func(string) (papertrade.Security, bool) { return papertrade.Security{}, false }
	got := Watchlist(nil, quote)
	if !strings.Contains(got, "No stocks in watchlist.") {
		t.Errorf("missing empty-list message:\n%s", got)
	}
}

func TestHoldingsTotals(t *testing.T) {
	pf := papertrade.NewPortfolio()
	pf.Buy("TCS", papertrade.Rupees(3500), 2)
	pos, _ := pf.Position("TCS")

	wallet := papertrade.Rupees(93_000)
	got := Holdings([]Holding{{Position: pos, Price: papertrade.Rupees(3600)}}, wallet)

	// total = wallet + 2 * 3600
	want := papertrade.Rupees(100_200).String()
	if !strings.Contains(got, want) {
		t.Errorf("report is missing the total %q:\n%s", want, got)
	}
	if !strings.Contains(got, papertrade.Rupees(200).SignedString()) {
		t.Errorf("report is missing the unrealized gain:\n%s", got)
	}
}

func TestHoldingsEmpty(t *testing.T) {
	got := Holdings(nil, papertrade.Rupees(100_000))
	if !strings.Contains(got, "No open positions.") {
		t.Errorf("missing empty-portfolio message:\n%s", got)
	}
}

func TestTransactionLine(t *testing.T) {
	buy := papertrade.Trade{
		Command:  papertrade.CmdBuy,
		Time:     time.Date(2024, 6, 3, 10, 30, 0, 0, time.UTC),
		Security: "TCS",
		Quantity: 2,
		Price:    papertrade.Rupees(3500),
		Amount:   papertrade.Rupees(7000),
	}
	if got := Transaction(buy); !strings.HasPrefix(got, "Bought 2 of TCS") {
		t.Errorf("Transaction = %q", got)
	}

	sell := buy
	sell.Command = papertrade.CmdSell
	sell.Realized = papertrade.Rupees(100)
	got := Transaction(sell)
	if !strings.HasPrefix(got, "Sold 2 of TCS") || !strings.Contains(got, papertrade.Rupees(100).SignedString()) {
		t.Errorf("Transaction = %q", got)
	}
}

func TestNewsFallback(t *testing.T) {
	got := News("xyzzy", nil)
	if !strings.Contains(got, "No results found. Try a different keyword.") {
		t.Errorf("missing fallback message:\n%s", got)
	}
}

func TestNewsCards(t *testing.T) {
	articles := []papertrade.Article{
		{Title: "Quarterly results", Description: "Earnings beat estimates.", URL: "https://example.com/a", ImageURL: "https://example.com/a.png"},
		{Title: "No description", URL: "https://example.com/b", ImageURL: "https://example.com/b.png"},
	}
	got := News("results", articles)

	for _, want := range []string{
		"Quarterly results",
		"Earnings beat estimates.",
		"No description available.",
		"https://example.com/a",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("cards are missing %q:\n%s", want, got)
		}
	}
}
