package papertrade

import "errors"

// Trading errors. A rejected command never leaves partial state behind:
// wallet, portfolio and persisted state are identical before and after.
var (
	// ErrInsufficientFunds rejects a buy whose cost exceeds the wallet balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientShares rejects a sell of more shares than held.
	ErrInsufficientShares = errors.New("insufficient shares")
	// ErrInvalidQuantity rejects a non-positive share quantity.
	ErrInvalidQuantity = errors.New("quantity must be a positive number of shares")
	// ErrUnknownSecurity rejects an order for a ticker not listed on the market.
	ErrUnknownSecurity = errors.New("unknown security")
)
