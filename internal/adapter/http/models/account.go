package models

import (
	"github.com/api-sage/banking-api/internal/domain"
	"github.com/shopspring/decimal"
)

type AccountDto struct {
	AccountID int64           `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}

func AccountFromDomain(account domain.Account) AccountDto {
	return AccountDto{
		AccountID: account.AccountID,
		Balance:   account.Balance,
	}
}

func AccountsFromDomain(accounts []domain.Account) []AccountDto {
	out := make([]AccountDto, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, AccountFromDomain(account))
	}
	return out
}
