package memory

import (
	"context"
	"sync"

	"github.com/api-sage/banking-api/internal/commons"
	"github.com/api-sage/banking-api/internal/domain"
)

// AccountRepository is an in-memory account store with the same
// concurrency semantics as the postgres implementation: every write bumps
// the version, and a transfer against a stale version is rejected.
type AccountRepository struct {
	mu       sync.Mutex
	accounts map[int64]domain.Account
}

func NewAccountRepository(accounts ...domain.Account) *AccountRepository {
	repo := &AccountRepository{accounts: make(map[int64]domain.Account, len(accounts))}
	for _, account := range accounts {
		repo.accounts[account.AccountID] = account
	}
	return repo
}

func (r *AccountRepository) GetAccount(_ context.Context, id int64) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, commons.ErrRecordNotFound
	}
	return account, nil
}

func (r *AccountRepository) UpdateBalance(_ context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.accounts[account.AccountID]
	if !ok {
		return commons.ErrRecordNotFound
	}

	stored.Balance = account.Balance
	stored.Version++
	r.accounts[account.AccountID] = stored
	return nil
}

func (r *AccountRepository) TransferAmount(_ context.Context, fromAccount domain.Account, toAccount domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	storedFrom, okFrom := r.accounts[fromAccount.AccountID]
	storedTo, okTo := r.accounts[toAccount.AccountID]
	if !okFrom || !okTo {
		return commons.ErrConcurrencyConflict
	}
	if storedFrom.Version != fromAccount.Version || storedTo.Version != toAccount.Version {
		return commons.ErrConcurrencyConflict
	}

	storedFrom.Balance = fromAccount.Balance
	storedFrom.Version++
	storedTo.Balance = toAccount.Balance
	storedTo.Version++
	r.accounts[fromAccount.AccountID] = storedFrom
	r.accounts[toAccount.AccountID] = storedTo
	return nil
}
