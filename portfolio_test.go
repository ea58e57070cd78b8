package papertrade

import (
	"errors"
	"testing"
)

func TestBuyAveragesCost(t *testing.T) {
	pf := NewPortfolio()

	if err := pf.Buy("TCS", Rupees(3500), 2); err != nil {
		t.Fatalf("first buy: %v", err)
	}
	if err := pf.Buy("TCS", Rupees(3600), 1); err != nil {
		t.Fatalf("second buy: %v", err)
	}

	pos, ok := pf.Position("TCS")
	if !ok {
		t.Fatal("position not found after buys")
	}
	if pos.Quantity() != 3 {
		t.Errorf("quantity = %d, want 3", pos.Quantity())
	}
	// (3500*2 + 3600*1) / 3
	want := Rupees(10600).Div(3)
	if !pos.AverageCost().Equal(want) {
		t.Errorf("average cost = %s, want %s", pos.AverageCost(), want)
	}
}

func TestBuyFirstPositionAtPrice(t *testing.T) {
	pf := NewPortfolio()
	if err := pf.Buy("Infosys", Rupees(1600), 5); err != nil {
		t.Fatalf("buy: %v", err)
	}
	pos, _ := pf.Position("Infosys")
	if !pos.AverageCost().Equal(Rupees(1600)) {
		t.Errorf("average cost = %s, want the purchase price", pos.AverageCost())
	}
	if !pos.CostBasis().Equal(Rupees(8000)) {
		t.Errorf("cost basis = %s, want ₹8,000.00", pos.CostBasis())
	}
}

func TestBuyInvalidQuantity(t *testing.T) {
	pf := NewPortfolio()
	for _, qty := range []int64{0, -1, -100} {
		if err := pf.Buy("TCS", Rupees(3500), qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("Buy(qty=%d) = %v, want ErrInvalidQuantity", qty, err)
		}
	}
	if pf.Len() != 0 {
		t.Errorf("rejected buys opened %d positions", pf.Len())
	}
}

func TestSellRealizesGainAndClosesPosition(t *testing.T) {
	pf := NewPortfolio()
	pf.Buy("TCS", Rupees(3500), 2)
	pf.Buy("TCS", Rupees(3600), 1)

	realized, err := pf.Sell("TCS", Rupees(3700), 3)
	if err != nil {
		t.Fatalf("sell: %v", err)
	}

	// (3700 - 10600/3) * 3
	want := Rupees(3700).Sub(Rupees(10600).Div(3)).Mul(3)
	if !realized.Equal(want) {
		t.Errorf("realized = %s, want %s", realized, want)
	}
	if _, ok := pf.Position("TCS"); ok {
		t.Error("fully sold position is still open")
	}
	if pf.Len() != 0 {
		t.Errorf("portfolio still holds %d positions", pf.Len())
	}
}

func TestPartialSellKeepsAverageCost(t *testing.T) {
	pf := NewPortfolio()
	pf.Buy("SBI", Rupees(600), 10)

	realized, err := pf.Sell("SBI", Rupees(650), 4)
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if !realized.Equal(Rupees(200)) {
		t.Errorf("realized = %s, want ₹200.00", realized)
	}

	pos, _ := pf.Position("SBI")
	if pos.Quantity() != 6 {
		t.Errorf("quantity = %d, want 6", pos.Quantity())
	}
	if !pos.AverageCost().Equal(Rupees(600)) {
		t.Errorf("average cost = %s changed on a sell", pos.AverageCost())
	}
}

func TestSellThenRebuyAtAverageCostRoundTrips(t *testing.T) {
	pf := NewPortfolio()
	pf.Buy("TCS", Rupees(3500), 2)

	if _, err := pf.Sell("TCS", Rupees(3500), 1); err != nil {
		t.Fatalf("sell: %v", err)
	}
	if err := pf.Buy("TCS", Rupees(3500), 1); err != nil {
		t.Fatalf("buy back: %v", err)
	}

	pos, _ := pf.Position("TCS")
	if pos.Quantity() != 2 || !pos.AverageCost().Equal(Rupees(3500)) {
		t.Errorf("position = (%d, %s), want the pre-trade (2, ₹3,500)", pos.Quantity(), pos.AverageCost())
	}
}

func TestSellInsufficientShares(t *testing.T) {
	pf := NewPortfolio()
	pf.Buy("TCS", Rupees(3500), 2)

	tests := []struct {
		name   string
		ticker string
		qty    int64
	}{
		{"no position", "Reliance", 1},
		{"more than held", "TCS", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := pf.Sell(tt.ticker, Rupees(3500), tt.qty); !errors.Is(err, ErrInsufficientShares) {
				t.Errorf("Sell(%s, %d) = %v, want ErrInsufficientShares", tt.ticker, tt.qty, err)
			}
		})
	}

	// a rejected sell must not change the position
	pos, _ := pf.Position("TCS")
	if pos.Quantity() != 2 {
		t.Errorf("quantity = %d after rejected sells, want 2", pos.Quantity())
	}
}

func TestPositionsKeepFirstBuyOrder(t *testing.T) {
	pf := NewPortfolio()
	pf.Buy("Reliance", Rupees(2700), 1)
	pf.Buy("TCS", Rupees(3500), 1)
	pf.Buy("Reliance", Rupees(2800), 1) // re-buy must not move Reliance

	var got []string
	for _, p := range pf.Positions() {
		got = append(got, p.Ticker())
	}
	want := []string{"Reliance", "TCS"}
	if len(got) != len(want) {
		t.Fatalf("positions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("positions = %v, want %v", got, want)
			break
		}
	}
}

func TestUnrealizedGain(t *testing.T) {
	pf := NewPortfolio()
	pf.Buy("NTPC", Rupees(250), 8)
	pos, _ := pf.Position("NTPC")

	if g := pos.UnrealizedGain(Rupees(260)); !g.Equal(Rupees(80)) {
		t.Errorf("gain at 260 = %s, want ₹80.00", g)
	}
	if g := pos.UnrealizedGain(Rupees(240)); !g.Equal(Rupees(-80)) {
		t.Errorf("gain at 240 = %s, want -₹80.00", g)
	}
}
