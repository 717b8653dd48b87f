package models

import "github.com/shopspring/decimal"

// TransferRequest carries an intra-institution transfer. Amount rules
// (positivity, sufficient funds) belong to the engine, not this DTO, so a
// request with a bad amount still reports rule violations in the
// documented order.
type TransferRequest struct {
	FromAccount int64           `json:"fromAccount"`
	ToAccount   int64           `json:"toAccount"`
	Amount      decimal.Decimal `json:"amount"`
}
