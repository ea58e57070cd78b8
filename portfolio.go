package papertrade

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/shopspring/decimal"
)

// Position is a held quantity of one security plus its weighted average
// acquisition cost. A position only exists while its quantity is positive.
type Position struct {
	ticker      string
	quantity    int64
	averageCost Money // per share, full decimal precision
}

// Ticker returns the security the position is in.
func (p Position) Ticker() string { return p.ticker }

// Quantity returns the number of shares held.
func (p Position) Quantity() int64 { return p.quantity }

// AverageCost returns the running weighted average purchase price per share.
func (p Position) AverageCost() Money { return p.averageCost }

// CostBasis returns the total acquisition cost of the position.
func (p Position) CostBasis() Money { return p.averageCost.Mul(p.quantity) }

// MarketValue returns the position value at the given unit price.
func (p Position) MarketValue(price Money) Money { return price.Mul(p.quantity) }

// UnrealizedGain returns the profit or loss if the position were closed at
// the given unit price.
func (p Position) UnrealizedGain(price Money) Money {
	return price.Sub(p.averageCost).Mul(p.quantity)
}

// MarshalJSON implements the json.Marshaler interface for Position.
func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ticker", p.ticker)
	w.Append("quantity", p.quantity)
	w.Append("avgCost", p.averageCost.value)
	w.Optional("currency", p.averageCost.cur)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Position.
func (p *Position) UnmarshalJSON(data []byte) error {
	var temp struct {
		Ticker   string          `json:"ticker"`
		Quantity int64           `json:"quantity"`
		AvgCost  decimal.Decimal `json:"avgCost"`
		Currency string          `json:"currency"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}
	if temp.Currency == "" {
		temp.Currency = DefaultCurrency
	}
	p.ticker = temp.Ticker
	p.quantity = temp.Quantity
	p.averageCost = M(temp.AvgCost, temp.Currency)
	return nil
}

// Portfolio maintains at most one position per security.
//
// It has no wallet awareness: affordability of a buy is the session's check.
// Its own invariants are that quantities are always positive and that a fully
// exited position is removed rather than kept at zero, because an average
// cost is meaningless once the position is closed.
type Portfolio struct {
	positions map[string]*Position
	order     []string // tickers in first-buy order, for stable display
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{positions: make(map[string]*Position)}
}

// Position returns the held position for ticker, or a zero Position and
// false when none is held.
func (pf *Portfolio) Position(ticker string) (Position, bool) {
	p, ok := pf.positions[ticker]
	if !ok {
		return Position{}, false
	}
	return *p, true
}

// Len returns the number of open positions.
func (pf *Portfolio) Len() int { return len(pf.positions) }

// All iterates over open positions in first-buy order.
func (pf *Portfolio) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, ticker := range pf.order {
			if p, ok := pf.positions[ticker]; ok {
				if !yield(*p) {
					return
				}
			}
		}
	}
}

// Positions returns a copy of all open positions in first-buy order.
func (pf *Portfolio) Positions() []Position {
	out := make([]Position, 0, len(pf.positions))
	for p := range pf.All() {
		out = append(out, p)
	}
	return out
}

// Buy records the purchase of qty shares at the given unit price.
//
// A first buy opens the position at averageCost = price. Subsequent buys
// recompute the weighted average cost
//
//	avg' = (avg*qOld + price*qNew) / (qOld + qNew)
//
// in decimal arithmetic, so repeated small buys stay numerically stable.
func (pf *Portfolio) Buy(ticker string, price Money, qty int64) error {
	if qty <= 0 {
		return fmt.Errorf("buy %s: %w", ticker, ErrInvalidQuantity)
	}
	p, ok := pf.positions[ticker]
	if !ok {
		pf.positions[ticker] = &Position{ticker: ticker, quantity: qty, averageCost: price}
		pf.order = append(pf.order, ticker)
		return nil
	}
	total := p.averageCost.Mul(p.quantity).Add(price.Mul(qty))
	p.quantity += qty
	p.averageCost = total.Div(p.quantity)
	return nil
}

// Sell records the sale of qty shares at the given unit price and returns
// the realized gain (sellPrice - averageCost) * qty.
//
// It fails with ErrInsufficientShares when no position exists or qty exceeds
// the held quantity, leaving the portfolio untouched. Selling the whole
// position removes it; the average cost is never changed by a sell.
func (pf *Portfolio) Sell(ticker string, price Money, qty int64) (realized Money, err error) {
	if qty <= 0 {
		return Money{}, fmt.Errorf("sell %s: %w", ticker, ErrInvalidQuantity)
	}
	p, ok := pf.positions[ticker]
	if !ok || qty > p.quantity {
		return Money{}, fmt.Errorf("sell %s: %w", ticker, ErrInsufficientShares)
	}
	realized = price.Sub(p.averageCost).Mul(qty)
	p.quantity -= qty
	if p.quantity == 0 {
		delete(pf.positions, ticker)
		pf.order = removeString(pf.order, ticker)
	}
	return realized, nil
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
