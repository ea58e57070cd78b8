package papertrade

import (
	"math/rand/v2"
	"testing"
)

func newTestEngine() *PriceEngine {
	return NewPriceEngine(rand.New(rand.NewPCG(1, 2)))
}

func TestNextStaysAboveFloor(t *testing.T) {
	e := newTestEngine()

	// hammer a price sitting right on the floor, it must never cross it
	price := priceFloor
	for i := 0; i < 10_000; i++ {
		price = e.Next(price)
		if price.LessThan(priceFloor) {
			t.Fatalf("iteration %d: price %s fell below the floor %s", i, price, priceFloor)
		}
	}
}

func TestNextMagnitudeWithinTier(t *testing.T) {
	tests := []struct {
		price int64
		max   int64 // inclusive after rounding to the minor unit
	}{
		{price: 120, max: 10},
		{price: 999, max: 10},
		{price: 1500, max: 20},
		{price: 3500, max: 50},
		{price: 7200, max: 100},
		{price: 10500, max: 200},
		{price: 22800, max: 200},
	}

	e := newTestEngine()
	for _, tt := range tests {
		price := Rupees(tt.price)
		for i := 0; i < 1_000; i++ {
			next := e.Next(price)
			delta := next.Sub(price)
			if delta.IsNegative() {
				delta = delta.Neg()
			}
			if delta.GreaterThan(Rupees(tt.max)) {
				t.Fatalf("price %s moved by %s, want at most %d", price, delta, tt.max)
			}
		}
	}
}

func TestNextIsRoundedToMinorUnit(t *testing.T) {
	e := newTestEngine()
	price := Rupees(3500)
	for i := 0; i < 100; i++ {
		price = e.Next(price)
		if !price.Equal(price.Round()) {
			t.Fatalf("price %s is not rounded to the minor unit", price)
		}
	}
}

func TestTickSetsPreviousPrice(t *testing.T) {
	m := NewSeededMarket()
	before := m.Securities()

	newTestEngine().Tick(m)

	for i, sec := range m.Securities() {
		if !sec.PreviousPrice().Equal(before[i].LastPrice()) {
			t.Errorf("%s: previous price is %s, want the pre-tick price %s",
				sec.Ticker(), sec.PreviousPrice(), before[i].LastPrice())
		}
	}
}

func TestTickIsDeterministicForASeed(t *testing.T) {
	m1, m2 := NewSeededMarket(), NewSeededMarket()
	newTestEngine().Tick(m1)
	newTestEngine().Tick(m2)

	a, b := m1.Securities(), m2.Securities()
	for i := range a {
		if !a[i].LastPrice().Equal(b[i].LastPrice()) {
			t.Errorf("%s: same seed produced %s and %s", a[i].Ticker(), a[i].LastPrice(), b[i].LastPrice())
		}
	}
}
