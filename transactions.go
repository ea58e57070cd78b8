package papertrade

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CommandType is a typed string identifying a journal command.
type CommandType string

// Command types recorded in the trade journal.
const (
	CmdBuy  CommandType = "buy"
	CmdSell CommandType = "sell"
)

// Trade is one executed order, as recorded in the trade journal.
//
// Price is the unit price at execution, Amount the total debited from or
// credited to the wallet. Realized is only meaningful on sells.
type Trade struct {
	Command  CommandType
	Time     time.Time
	Security string
	Quantity int64
	Price    Money
	Amount   Money
	Realized Money
}

// newTrade stamps an executed order for the journal.
func newTrade(cmd CommandType, when time.Time, security string, qty int64, price Money) Trade {
	return Trade{
		Command:  cmd,
		Time:     when.Truncate(time.Second),
		Security: security,
		Quantity: qty,
		Price:    price,
		Amount:   price.Mul(qty),
	}
}

// What returns the command type of the trade.
func (t Trade) What() CommandType { return t.Command }

// When returns the execution time of the trade.
func (t Trade) When() time.Time { return t.Time }

func (t Trade) Equal(o Trade) bool {
	return t.Command == o.Command &&
		t.Time.Equal(o.Time) &&
		t.Security == o.Security &&
		t.Quantity == o.Quantity &&
		t.Price.Equal(o.Price) &&
		t.Amount.Equal(o.Amount) &&
		t.Realized.Equal(o.Realized)
}

// MarshalJSON implements the json.Marshaler interface for Trade. Fields keep
// a fixed order so journal lines stay diffable.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("time", t.Time.Format(time.RFC3339))
	w.Append("security", t.Security)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price.value)
	w.Append("amount", t.Amount.value)
	if t.Command == CmdSell {
		w.Append("realized", t.Realized.value)
	}
	w.Optional("currency", t.Price.cur)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Trade.
func (t *Trade) UnmarshalJSON(data []byte) error {
	var temp struct {
		Command  CommandType     `json:"command"`
		Time     string          `json:"time"`
		Security string          `json:"security"`
		Quantity int64           `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
		Amount   decimal.Decimal `json:"amount"`
		Realized decimal.Decimal `json:"realized"`
		Currency string          `json:"currency"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("invalid trade: %w", err)
	}
	switch temp.Command {
	case CmdBuy, CmdSell:
	default:
		return fmt.Errorf("invalid trade: unknown command %q", temp.Command)
	}
	when, err := time.Parse(time.RFC3339, temp.Time)
	if err != nil {
		return fmt.Errorf("invalid trade time: %w", err)
	}
	if temp.Currency == "" {
		temp.Currency = DefaultCurrency
	}
	t.Command = temp.Command
	t.Time = when
	t.Security = temp.Security
	t.Quantity = temp.Quantity
	t.Price = M(temp.Price, temp.Currency)
	t.Amount = M(temp.Amount, temp.Currency)
	if t.Command == CmdSell {
		t.Realized = M(temp.Realized, temp.Currency)
	}
	return nil
}

// String renders the trade the way the CLI reports a fill.
func (t Trade) String() string {
	switch t.Command {
	case CmdSell:
		return fmt.Sprintf("Sold %d %s @ %s for %s", t.Quantity, t.Security, t.Price, t.Amount)
	default:
		return fmt.Sprintf("Bought %d %s @ %s for %s", t.Quantity, t.Security, t.Price, t.Amount)
	}
}
