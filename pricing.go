package papertrade

import (
	"math/rand/v2"
)

// priceTier maps a price band to the magnitude range of a single tick move.
// Bands are monotonic: the more expensive the security, the larger the
// absolute move it can make.
type priceTier struct {
	below    float64 // exclusive upper bound of the band, in major units
	min, max float64 // half-open magnitude range [min, max)
}

// defaultTiers is the canonical perturbation table.
var defaultTiers = []priceTier{
	{below: 1000, min: 0, max: 10},
	{below: 2000, min: 0, max: 20},
	{below: 5000, min: 0, max: 50},
	{below: 10000, min: 0, max: 100},
	{below: 0, min: 0, max: 200}, // zero bound marks the open-ended top band
}

// priceFloor is the strictly positive lower bound a price can never cross.
var priceFloor = Rupees(1)

// PriceEngine advances security prices on each tick with a tiered random
// walk: a magnitude drawn from the security's price band and a 50/50 sign.
type PriceEngine struct {
	tiers []priceTier
	rng   *rand.Rand
}

// NewPriceEngine creates a price engine driven by rng. A nil rng gets an
// engine seeded from the global source; tests pass a fixed-seed source.
func NewPriceEngine(rng *rand.Rand) *PriceEngine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &PriceEngine{tiers: defaultTiers, rng: rng}
}

// magnitude draws a move size for the band the price falls in.
func (e *PriceEngine) magnitude(price Money) float64 {
	p := price.value.InexactFloat64()
	for _, t := range e.tiers {
		if t.below == 0 || p < t.below {
			return t.min + e.rng.Float64()*(t.max-t.min)
		}
	}
	// unreachable while the last tier is open-ended
	last := e.tiers[len(e.tiers)-1]
	return last.min + e.rng.Float64()*(last.max-last.min)
}

// Next computes the post-tick price for a single security. The result is
// rounded to the minor unit and never falls below the price floor.
func (e *PriceEngine) Next(price Money) Money {
	delta := M(e.magnitude(price), price.Currency()).Round()
	if e.rng.IntN(2) == 0 {
		delta = delta.Neg()
	}
	next := price.Add(delta)
	if next.LessThan(priceFloor) {
		return priceFloor
	}
	return next
}

// Tick advances every security on the market by one step, recording the
// pre-tick price as the previous price. It mutates market state only; the
// caller decides when to persist or display.
func (e *PriceEngine) Tick(m *Market) {
	for _, sec := range m.securities {
		sec.setPrice(e.Next(sec.lastPrice))
	}
}
