package papertrade

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jsonMarshalString marshals v, falling back to an empty JSON array; it is
// only used for values (string slices) that cannot fail to marshal.
func jsonMarshalString(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func jsonUnmarshal(s string, v any) error {
	return json.Unmarshal([]byte(s), v)
}

// EncodeJournal writes trades as JSONL, one trade per line, oldest first.
func EncodeJournal(w io.Writer, trades []Trade) error {
	enc := json.NewEncoder(w)
	for _, t := range trades {
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("could not encode trade: %w", err)
		}
	}
	return nil
}

// DecodeJournal reads a JSONL stream of trades. Empty lines are skipped; a
// malformed line fails the whole decode, the caller falls back to an empty
// journal.
func DecodeJournal(r io.Reader) ([]Trade, error) {
	var trades []Trade
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var t Trade
		if err := json.Unmarshal(line, &t); err != nil {
			return nil, fmt.Errorf("could not decode journal line %q: %w", string(line), err)
		}
		trades = append(trades, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read journal: %w", err)
	}
	return trades, nil
}

// EncodeSecurities writes the market board as JSONL in listing order.
func EncodeSecurities(w io.Writer, m *Market) error {
	enc := json.NewEncoder(w)
	for sec := range m.All() {
		if err := enc.Encode(sec); err != nil {
			return fmt.Errorf("could not encode security %q: %w", sec.Ticker(), err)
		}
	}
	return nil
}

// DecodeSecurities reads a JSONL stream of securities into a market.
func DecodeSecurities(r io.Reader) (*Market, error) {
	m := NewMarket()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var sec Security
		if err := json.Unmarshal(line, &sec); err != nil {
			return nil, fmt.Errorf("could not decode security line %q: %w", string(line), err)
		}
		m.Add(sec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read securities: %w", err)
	}
	return m, nil
}

// EncodePositions writes open positions as JSONL in first-buy order.
func EncodePositions(w io.Writer, pf *Portfolio) error {
	enc := json.NewEncoder(w)
	for p := range pf.All() {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("could not encode position %q: %w", p.Ticker(), err)
		}
	}
	return nil
}

// DecodePositions reads a JSONL stream of positions into a portfolio.
// Entries with non-positive quantities are dropped: a persisted zero
// position would violate the portfolio invariant.
func DecodePositions(r io.Reader) (*Portfolio, error) {
	pf := NewPortfolio()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var p Position
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("could not decode position line %q: %w", string(line), err)
		}
		if p.quantity <= 0 {
			continue
		}
		pf.positions[p.ticker] = &Position{ticker: p.ticker, quantity: p.quantity, averageCost: p.averageCost}
		pf.order = append(pf.order, p.ticker)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read positions: %w", err)
	}
	return pf, nil
}
