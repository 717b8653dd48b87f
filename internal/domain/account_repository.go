package domain

import "context"

// AccountRepository is the account store consumed by the transfer/balance
// engine. Accounts are created and destroyed elsewhere (member cascade);
// this interface only reads existing accounts and writes back balances.
type AccountRepository interface {
	// GetAccount returns commons.ErrRecordNotFound when no account exists
	// for the id.
	GetAccount(ctx context.Context, id int64) (Account, error)

	// UpdateBalance persists one mutated account. Last writer wins.
	UpdateBalance(ctx context.Context, account Account) error

	// TransferAmount persists two mutated accounts as a single atomic unit.
	// Both rows commit or neither does. A conflicting concurrent write on
	// either account aborts with commons.ErrConcurrencyConflict.
	TransferAmount(ctx context.Context, fromAccount Account, toAccount Account) error
}
