// Package papertrade implements a paper stock-trading simulator.
//
// A synthetic market advances randomly fluctuating prices for a fixed list
// of securities on every tick. A Session routes buy and sell orders against
// a virtual cash wallet, maintains average-cost positions and a watchlist,
// records executed trades in a journal, and persists its whole state through
// a string-keyed store after every mutation.
//
// The package is the pure domain core: presentation lives in the ppt CLI
// (cmd/) and in the Server streaming adapter.
package papertrade
