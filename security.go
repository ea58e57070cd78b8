package papertrade

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Security represents one tradeable instrument on the simulated market.
//
// Its price is advanced by the price engine on every tick; the pre-tick price
// is kept so callers can derive the direction of the last change for display.
type Security struct {
	ticker        string // unique, stable identifier, e.g. "HDFC Bank"
	lastPrice     Money
	previousPrice Money
}

// NewSecurity lists a security at an initial price. The previous price starts
// equal to the initial price, so a fresh listing shows no direction of change.
func NewSecurity(ticker string, price Money) Security {
	return Security{ticker: ticker, lastPrice: price, previousPrice: price}
}

// Ticker returns the security's unique identifier.
func (s Security) Ticker() string { return s.ticker }

// LastPrice returns the current price.
func (s Security) LastPrice() Money { return s.lastPrice }

// PreviousPrice returns the price before the last tick.
func (s Security) PreviousPrice() Money { return s.previousPrice }

// Rising reports whether the last tick moved the price up.
func (s Security) Rising() bool { return s.lastPrice.GreaterThan(s.previousPrice) }

// setPrice records a new price, demoting the current one to previous.
func (s *Security) setPrice(price Money) {
	s.previousPrice = s.lastPrice
	s.lastPrice = price
}

// MarshalJSON implements the json.Marshaler interface for Security.
func (s Security) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ticker", s.ticker)
	w.Append("price", s.lastPrice.value)
	w.Append("prevPrice", s.previousPrice.value)
	w.Optional("currency", s.lastPrice.cur)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Security.
func (s *Security) UnmarshalJSON(data []byte) error {
	var temp struct {
		Ticker    string          `json:"ticker"`
		Price     decimal.Decimal `json:"price"`
		PrevPrice decimal.Decimal `json:"prevPrice"`
		Currency  string          `json:"currency"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("invalid security: %w", err)
	}
	if temp.Currency == "" {
		temp.Currency = DefaultCurrency
	}
	s.ticker = temp.Ticker
	s.lastPrice = M(temp.Price, temp.Currency)
	s.previousPrice = M(temp.PrevPrice, temp.Currency)
	return nil
}
