package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/banking-api/internal/commons"
	"github.com/api-sage/banking-api/internal/domain"
	"github.com/api-sage/banking-api/internal/logger"
	"github.com/shopspring/decimal"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetAccount(ctx context.Context, id int64) (domain.Account, error) {
	const query = `
SELECT account_id, balance, institution_id, member_id, version
FROM accounts
WHERE account_id = $1`

	var account domain.Account
	var balance string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.AccountID,
		&balance,
		&account.InstitutionID,
		&account.MemberID,
		&account.Version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Account{}, commons.ErrRecordNotFound
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("get account %d: %w", id, err)
	}

	account.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return domain.Account{}, fmt.Errorf("parse balance for account %d: %w", id, err)
	}

	return account, nil
}

// UpdateBalance is an unconditional single-row write. Last writer wins.
func (r *AccountRepository) UpdateBalance(ctx context.Context, account domain.Account) error {
	const query = `
UPDATE accounts
SET balance = $2::numeric,
    version = version + 1
WHERE account_id = $1`

	result, err := r.db.ExecContext(ctx, query, account.AccountID, account.Balance.String())
	if err != nil {
		return fmt.Errorf("update balance for account %d: %w", account.AccountID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update balance rows affected: %w", err)
	}
	if rows == 0 {
		return commons.ErrRecordNotFound
	}

	return nil
}

// TransferAmount writes both mutated accounts inside one transaction.
// Each update is guarded by the version read at fetch time, so a
// concurrent write to either account aborts the whole transfer with
// commons.ErrConcurrencyConflict.
func (r *AccountRepository) TransferAmount(ctx context.Context, fromAccount domain.Account, toAccount domain.Account) error {
	logger.Info("account repository transfer amount", logger.Fields{
		"fromAccount": fromAccount.AccountID,
		"toAccount":   toAccount.AccountID,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("account repository begin tx failed", err, nil)
		return fmt.Errorf("begin transfer transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = applyBalance(ctx, tx, fromAccount); err != nil {
		return err
	}
	if err = applyBalance(ctx, tx, toAccount); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.Error("account repository commit tx failed", err, nil)
		return fmt.Errorf("commit transfer transaction: %w", err)
	}

	logger.Info("account repository transfer amount success", logger.Fields{
		"fromAccount": fromAccount.AccountID,
		"toAccount":   toAccount.AccountID,
	})
	return nil
}

func applyBalance(ctx context.Context, tx *sql.Tx, account domain.Account) error {
	const query = `
UPDATE accounts
SET balance = $2::numeric,
    version = version + 1
WHERE account_id = $1
  AND version = $3`

	result, err := tx.ExecContext(ctx, query, account.AccountID, account.Balance.String(), account.Version)
	if err != nil {
		return fmt.Errorf("apply balance for account %d: %w", account.AccountID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("apply balance rows affected: %w", err)
	}
	if rows == 0 {
		return commons.ErrConcurrencyConflict
	}

	return nil
}
