// Package renderer turns session state into markdown for terminal display.
package renderer

import (
	"github.com/pranavk/papertrade"
)

// direction returns the display marker for the last price move.
func direction(sec papertrade.Security) string {
	switch {
	case sec.LastPrice().GreaterThan(sec.PreviousPrice()):
		return "▲"
	case sec.LastPrice().LessThan(sec.PreviousPrice()):
		return "▼"
	default:
		return " "
	}
}

// watchMark returns the display marker for a watched ticker.
func watchMark(watched bool) string {
	if watched {
		return "👁"
	}
	return ""
}
