package papertrade

import "slices"

// Watchlist is the set of tickers flagged for monitoring, independent of
// ownership. Iteration order is the order tickers were added, which keeps
// the display stable across toggles of other entries.
type Watchlist struct {
	tickers []string
}

// NewWatchlist creates an empty watchlist.
func NewWatchlist(tickers ...string) *Watchlist {
	w := &Watchlist{}
	for _, t := range tickers {
		if !w.Has(t) {
			w.tickers = append(w.tickers, t)
		}
	}
	return w
}

// Has reports whether ticker is on the watchlist.
func (w *Watchlist) Has(ticker string) bool {
	return slices.Contains(w.tickers, ticker)
}

// Toggle adds ticker if absent and removes it if present. It returns true
// when the ticker ends up on the list. Toggle is its own inverse.
func (w *Watchlist) Toggle(ticker string) bool {
	if i := slices.Index(w.tickers, ticker); i >= 0 {
		w.tickers = slices.Delete(w.tickers, i, i+1)
		return false
	}
	w.tickers = append(w.tickers, ticker)
	return true
}

// Len returns the number of watched tickers.
func (w *Watchlist) Len() int { return len(w.tickers) }

// Tickers returns a copy of the watched tickers in insertion order.
func (w *Watchlist) Tickers() []string {
	return slices.Clone(w.tickers)
}
