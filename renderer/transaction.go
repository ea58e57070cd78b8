package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/pranavk/papertrade"
)

// Transaction renders a single trade to a one line string.
func Transaction(t papertrade.Trade) string {
	switch t.Command {
	case papertrade.CmdSell:
		return fmt.Sprintf("Sold %d of %s @ %s for %s (realized %s)",
			t.Quantity, t.Security, t.Price, t.Amount, t.Realized.Round().SignedString())
	default:
		return fmt.Sprintf("Bought %d of %s @ %s for %s",
			t.Quantity, t.Security, t.Price, t.Amount)
	}
}

// Transactions renders the trade journal, oldest first.
func Transactions(trades []papertrade.Trade) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Trades")

	if len(trades) == 0 {
		doc.PlainText("No trades recorded.")
		return doc.String()
	}

	rows := make([][]string, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, []string{
			t.Time.Format("2006-01-02 15:04:05"),
			string(t.Command),
			t.Security,
			fmt.Sprintf("%d", t.Quantity),
			t.Price.String(),
			t.Amount.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Time", "Side", "Security", "Qty", "Price", "Amount"},
		Rows:   rows,
	})

	return doc.String()
}
