package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/pranavk/papertrade"
)

// Holding pairs an open position with its security's current price.
type Holding struct {
	Position papertrade.Position
	Price    papertrade.Money
}

// Holdings renders the portfolio report: one row per open position with its
// average cost, market value and unrealized gain, then the wallet balance
// and the account total.
func Holdings(holdings []Holding, wallet papertrade.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")

	total := wallet
	if len(holdings) == 0 {
		doc.PlainText("No open positions.")
	} else {
		rows := make([][]string, 0, len(holdings))
		for _, h := range holdings {
			value := h.Position.MarketValue(h.Price)
			total = total.Add(value)
			rows = append(rows, []string{
				h.Position.Ticker(),
				fmt.Sprintf("%d", h.Position.Quantity()),
				h.Position.AverageCost().Round().String(),
				h.Price.String(),
				value.String(),
				h.Position.UnrealizedGain(h.Price).Round().SignedString(),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Security", "Qty", "Avg Cost", "Price", "Value", "Gain"},
			Rows:   rows,
		})
	}

	doc.PlainText(fmt.Sprintf("Wallet: %s", wallet))
	doc.PlainText(fmt.Sprintf("Total: %s", total))

	return doc.String()
}
