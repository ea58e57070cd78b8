package papertrade

import "fmt"

// DefaultOpeningBalance is the cash every new session starts with.
var DefaultOpeningBalance = Rupees(100_000)

// Wallet tracks the session's virtual cash balance.
//
// The balance is never allowed to go negative: a debit that would overdraw
// is rejected, not clamped.
type Wallet struct {
	balance Money
}

// NewWallet creates a wallet holding the given opening balance.
func NewWallet(opening Money) *Wallet {
	return &Wallet{balance: opening}
}

// Balance returns the current cash balance.
func (w *Wallet) Balance() Money { return w.balance }

// Debit withdraws amount from the wallet. It fails with
// ErrInsufficientFunds, without mutating the balance, when amount exceeds it.
func (w *Wallet) Debit(amount Money) error {
	if amount.IsNegative() {
		return fmt.Errorf("debit of %s: amount must not be negative", amount)
	}
	if amount.GreaterThan(w.balance) {
		return fmt.Errorf("debit of %s from %s: %w", amount, w.balance, ErrInsufficientFunds)
	}
	w.balance = w.balance.Sub(amount)
	return nil
}

// Credit deposits amount into the wallet. There is no upper bound.
func (w *Wallet) Credit(amount Money) error {
	if amount.IsNegative() {
		return fmt.Errorf("credit of %s: amount must not be negative", amount)
	}
	w.balance = w.balance.Add(amount)
	return nil
}
