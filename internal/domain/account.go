package domain

import "github.com/shopspring/decimal"

type Account struct {
	AccountID     int64
	Balance       decimal.Decimal
	InstitutionID int64
	MemberID      int64

	// Version is the optimistic concurrency token carried from fetch to
	// commit. The store bumps it on every write; a transfer commit against
	// a stale version is rejected.
	Version int64
}
