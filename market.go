package papertrade

import (
	"iter"
	"strings"
)

// Market holds the fixed collection of securities available for trading.
//
// Securities are created once at session start from the seed list and are
// never delisted; only their prices change.
type Market struct {
	securities []*Security
	index      map[string]*Security
}

// NewMarket returns a new empty market.
func NewMarket() *Market {
	return &Market{
		securities: make([]*Security, 0),
		index:      make(map[string]*Security),
	}
}

// seedListing is one entry of the initial market.
type seedListing struct {
	ticker string
	price  int64
}

// seed is the fixed opening board of the simulated exchange.
var seed = []seedListing{
	{"TCS", 3500},
	{"Reliance", 2700},
	{"Infosys", 1600},
	{"HDFC Bank", 1500},
	{"ICICI Bank", 930},
	{"Tata Motors", 670},
	{"SBI", 600},
	{"HUL", 2500},
	{"Bajaj Finance", 7200},
	{"Adani Green", 1300},
	{"Axis Bank", 1100},
	{"Maruti Suzuki", 10500},
	{"Sun Pharma", 1200},
	{"Bharti Airtel", 900},
	{"Asian Paints", 3200},
	{"Tech Mahindra", 1250},
	{"NTPC", 250},
	{"Power Grid", 280},
	{"Titan Company", 3100},
	{"Coal India", 320},
	{"Tata Steel", 120},
	{"UltraTech Cement", 8500},
	{"Dr Reddy's", 5400},
	{"Nestle India", 22800},
	{"JSW Steel", 800},
}

// NewSeededMarket returns a market listing the seed securities at their
// opening prices.
func NewSeededMarket() *Market {
	m := NewMarket()
	for _, s := range seed {
		m.Add(NewSecurity(s.ticker, Rupees(s.price)))
	}
	return m
}

// Add lists a security. Re-adding an existing ticker replaces its prices.
func (m *Market) Add(sec Security) {
	if existing, ok := m.index[sec.ticker]; ok {
		*existing = sec
		return
	}
	s := &sec
	m.securities = append(m.securities, s)
	m.index[sec.ticker] = s
}

// Has reports whether a ticker is listed.
func (m *Market) Has(ticker string) bool {
	_, ok := m.index[ticker]
	return ok
}

// Get returns the listed security, or nil if the ticker is unknown.
func (m *Market) Get(ticker string) *Security { return m.index[ticker] }

// Len returns the number of listed securities.
func (m *Market) Len() int { return len(m.securities) }

// All iterates over securities in listing order.
func (m *Market) All() iter.Seq[Security] {
	return func(yield func(Security) bool) {
		for _, s := range m.securities {
			if !yield(*s) {
				return
			}
		}
	}
}

// Securities returns a copy of all listed securities in listing order.
func (m *Market) Securities() []Security {
	out := make([]Security, 0, len(m.securities))
	for _, s := range m.securities {
		out = append(out, *s)
	}
	return out
}

// Search returns the securities whose ticker contains term,
// case-insensitively, in listing order. An empty term matches everything.
func (m *Market) Search(term string) []Security {
	term = strings.ToLower(term)
	var out []Security
	for _, s := range m.securities {
		if strings.Contains(strings.ToLower(s.ticker), term) {
			out = append(out, *s)
		}
	}
	return out
}
