package papertrade

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Session orchestrates one trading session: it owns the market, the
// portfolio, the wallet, the watchlist and the trade journal, and persists
// the whole state through its store on every mutation.
//
// All commands and the tick handler are mutually exclusive critical
// sections, so a buy can never observe a half-applied tick and the
// wallet/portfolio pair is always updated as one atomic unit.
type Session struct {
	mu        sync.Mutex
	store     Store
	engine    *PriceEngine
	market    *Market
	portfolio *Portfolio
	wallet    *Wallet
	watchlist *Watchlist
	journal   []Trade
	now       func() time.Time

	subs    map[int]chan Update
	nextSub int
}

// Update is the snapshot pushed to subscribers after each mutation.
type Update struct {
	Securities []Security `json:"securities"`
	Wallet     Money      `json:"wallet"`
}

// NewSession loads a session from the store, substituting defaults for any
// absent or malformed piece of state.
func NewSession(store Store) *Session {
	return NewSessionWith(store, NewPriceEngine(nil), time.Now)
}

// NewSessionWith is NewSession with a caller-chosen price engine and clock,
// so tests can drive the session deterministically.
func NewSessionWith(store Store, engine *PriceEngine, now func() time.Time) *Session {
	s := &Session{
		store:  store,
		engine: engine,
		now:    now,
		subs:   make(map[int]chan Update),
	}
	s.load()
	return s
}

// load restores all state from the store. Absent or malformed values never
// fail the load: each key independently falls back to its default.
func (s *Session) load() {
	s.market = s.loadMarket()
	s.wallet = NewWallet(s.loadBalance())
	s.portfolio = s.loadPortfolio()
	s.watchlist = NewWatchlist(s.loadWatchlist()...)
	s.journal = s.loadJournal()
}

func (s *Session) loadMarket() *Market {
	value, ok, err := s.store.Load(KeyStocks)
	if err != nil || !ok {
		s.warnLoad(KeyStocks, err)
		return NewSeededMarket()
	}
	m, err := DecodeSecurities(strings.NewReader(value))
	if err != nil || m.Len() == 0 {
		s.warnLoad(KeyStocks, err)
		return NewSeededMarket()
	}
	return m
}

func (s *Session) loadBalance() Money {
	value, ok, err := s.store.Load(KeyWallet)
	if err != nil || !ok {
		s.warnLoad(KeyWallet, err)
		return DefaultOpeningBalance
	}
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || d.IsNegative() {
		s.warnLoad(KeyWallet, err)
		return DefaultOpeningBalance
	}
	return Rupees(d)
}

func (s *Session) loadPortfolio() *Portfolio {
	value, ok, err := s.store.Load(KeyPortfolio)
	if err != nil || !ok {
		s.warnLoad(KeyPortfolio, err)
		return NewPortfolio()
	}
	pf, err := DecodePositions(strings.NewReader(value))
	if err != nil {
		s.warnLoad(KeyPortfolio, err)
		return NewPortfolio()
	}
	return pf
}

func (s *Session) loadWatchlist() []string {
	value, ok, err := s.store.Load(KeyWatchlist)
	if err != nil || !ok {
		s.warnLoad(KeyWatchlist, err)
		return nil
	}
	var tickers []string
	if err := jsonUnmarshal(value, &tickers); err != nil {
		s.warnLoad(KeyWatchlist, err)
		return nil
	}
	return tickers
}

func (s *Session) loadJournal() []Trade {
	value, ok, err := s.store.Load(KeyJournal)
	if err != nil || !ok {
		s.warnLoad(KeyJournal, err)
		return nil
	}
	trades, err := DecodeJournal(strings.NewReader(value))
	if err != nil {
		s.warnLoad(KeyJournal, err)
		return nil
	}
	return trades
}

// warnLoad logs a recovery to defaults; a nil error means the key was
// simply absent, which is the normal first run and not worth a warning.
func (s *Session) warnLoad(key string, err error) {
	if err != nil {
		log.Printf("warning: state %q is unreadable, using default: %v", key, err)
	}
}

// persist saves the whole session state. Persistence is best-effort: a
// failing store is logged and never fails the command that triggered it.
func (s *Session) persist() {
	var sb strings.Builder
	if err := EncodeSecurities(&sb, s.market); err == nil {
		s.trySave(KeyStocks, sb.String())
	}
	s.trySave(KeyWallet, s.wallet.Balance().value.String())

	sb.Reset()
	if err := EncodePositions(&sb, s.portfolio); err == nil {
		s.trySave(KeyPortfolio, sb.String())
	}
	s.trySave(KeyWatchlist, jsonMarshalString(s.watchlist.Tickers()))

	sb.Reset()
	if err := EncodeJournal(&sb, s.journal); err == nil {
		s.trySave(KeyJournal, sb.String())
	}
}

func (s *Session) trySave(key, value string) {
	if err := s.store.Save(key, value); err != nil {
		log.Printf("warning: could not persist %q: %v", key, err)
	}
}

// Tick advances every security price by one step and persists the result.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Tick(s.market)
	s.persist()
	s.notify()
}

// Run ticks the session at the given interval until ctx is cancelled.
func (s *Session) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Buy purchases qty shares of ticker at its current market price. The
// wallet debit and the position update are applied as one atomic unit: a
// rejection leaves every piece of state, persisted state included,
// untouched.
func (s *Session) Buy(ticker string, qty int64) (Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		return Trade{}, fmt.Errorf("buy %s: %w", ticker, ErrInvalidQuantity)
	}
	sec := s.market.Get(ticker)
	if sec == nil {
		return Trade{}, fmt.Errorf("buy %q: %w", ticker, ErrUnknownSecurity)
	}
	price := sec.LastPrice()
	cost := price.Mul(qty)
	if err := s.wallet.Debit(cost); err != nil {
		return Trade{}, err
	}
	if err := s.portfolio.Buy(ticker, price, qty); err != nil {
		// quantity was validated above, so this cannot happen; restore the
		// debit rather than leave cash gone without shares.
		s.wallet.Credit(cost)
		return Trade{}, err
	}

	trade := newTrade(CmdBuy, s.now(), ticker, qty, price)
	s.journal = append(s.journal, trade)
	s.persist()
	s.notify()
	return trade, nil
}

// Sell sells qty shares of ticker at its current market price, crediting
// the proceeds to the wallet. The position update and the credit are one
// atomic unit.
func (s *Session) Sell(ticker string, qty int64) (Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		return Trade{}, fmt.Errorf("sell %s: %w", ticker, ErrInvalidQuantity)
	}
	sec := s.market.Get(ticker)
	if sec == nil {
		return Trade{}, fmt.Errorf("sell %q: %w", ticker, ErrUnknownSecurity)
	}
	price := sec.LastPrice()
	realized, err := s.portfolio.Sell(ticker, price, qty)
	if err != nil {
		return Trade{}, err
	}
	proceeds := price.Mul(qty)
	s.wallet.Credit(proceeds)

	trade := newTrade(CmdSell, s.now(), ticker, qty, price)
	trade.Realized = realized
	s.journal = append(s.journal, trade)
	s.persist()
	s.notify()
	return trade, nil
}

// ToggleWatch flips ticker's watchlist membership and reports whether it is
// now watched.
func (s *Session) ToggleWatch(ticker string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.market.Has(ticker) {
		return false, fmt.Errorf("watch %q: %w", ticker, ErrUnknownSecurity)
	}
	watched := s.watchlist.Toggle(ticker)
	s.persist()
	return watched, nil
}

// Search returns the securities whose ticker contains term,
// case-insensitively. Pure: no mutation, no persistence.
func (s *Session) Search(term string) []Security {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.market.Search(term)
}

// Securities returns the full market board in listing order.
func (s *Session) Securities() []Security {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.market.Securities()
}

// Quote returns the current listing for ticker.
func (s *Session) Quote(ticker string) (Security, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sec := s.market.Get(ticker)
	if sec == nil {
		return Security{}, false
	}
	return *sec, true
}

// Balance returns the wallet's cash balance.
func (s *Session) Balance() Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wallet.Balance()
}

// Positions returns all open positions in first-buy order.
func (s *Session) Positions() []Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.portfolio.Positions()
}

// Position returns the open position for ticker, if any.
func (s *Session) Position(ticker string) (Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.portfolio.Position(ticker)
}

// Watchlist returns the watched tickers in insertion order.
func (s *Session) Watchlist() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watchlist.Tickers()
}

// Watched reports whether ticker is on the watchlist.
func (s *Session) Watched(ticker string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watchlist.Has(ticker)
}

// Journal returns the executed trades, oldest first.
func (s *Session) Journal() []Trade {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Trade, len(s.journal))
	copy(out, s.journal)
	return out
}

// Subscribe registers for snapshots pushed after ticks and trades. The
// returned cancel function releases the subscription.
func (s *Session) Subscribe() (<-chan Update, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan Update, 8)
	s.subs[id] = ch
	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if ch, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// notify pushes the current snapshot to all subscribers. Slow subscribers
// miss updates instead of blocking the session. Callers hold s.mu.
func (s *Session) notify() {
	if len(s.subs) == 0 {
		return
	}
	update := Update{Securities: s.market.Securities(), Wallet: s.wallet.Balance()}
	for _, ch := range s.subs {
		select {
		case ch <- update:
		default:
		}
	}
}
