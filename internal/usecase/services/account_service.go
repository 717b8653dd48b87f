package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/api-sage/banking-api/internal/commons"
	"github.com/api-sage/banking-api/internal/domain"
	"github.com/api-sage/banking-api/internal/logger"
	"github.com/shopspring/decimal"
)

// AccountService is the transfer/balance engine. Every validation failure
// is detected before any mutation, so a failed operation never reaches the
// store's write path.
type AccountService struct {
	accountRepo domain.AccountRepository
}

func NewAccountService(accountRepo domain.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// SetBalance replaces an account's balance with a caller-supplied value.
// The write is unconditional: concurrent balance updates are last-writer-wins.
func (s *AccountService) SetBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error {
	logger.Info("account service update balance request", logger.Fields{
		"accountId": accountID,
		"balance":   balance,
	})

	account, err := s.accountRepo.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return err
		}
		logger.Error("account service update balance fetch failed", err, logger.Fields{
			"accountId": accountID,
		})
		return fmt.Errorf("get account %d: %w", accountID, err)
	}

	if balance.IsNegative() {
		return &commons.ValidationError{
			Field:   "balance",
			Message: "Balance should be greater than or equal to zero",
		}
	}

	account.Balance = balance
	if err := s.accountRepo.UpdateBalance(ctx, account); err != nil {
		logger.Error("account service update balance write failed", err, logger.Fields{
			"accountId": accountID,
		})
		return fmt.Errorf("update balance for account %d: %w", accountID, err)
	}

	logger.Info("account service update balance success", logger.Fields{
		"accountId": accountID,
		"balance":   balance,
	})
	return nil
}

// Transfer moves amount between two accounts of the same institution. The
// checks below short-circuit: only the first failing rule is reported.
func (s *AccountService) Transfer(ctx context.Context, fromAccountID int64, toAccountID int64, amount decimal.Decimal) error {
	logger.Info("account service transfer request", logger.Fields{
		"fromAccount": fromAccountID,
		"toAccount":   toAccountID,
		"amount":      amount,
	})

	fromAccount, fromErr := s.accountRepo.GetAccount(ctx, fromAccountID)
	if fromErr != nil && !errors.Is(fromErr, commons.ErrRecordNotFound) {
		logger.Error("account service transfer fetch failed", fromErr, logger.Fields{
			"accountId": fromAccountID,
		})
		return fmt.Errorf("get account %d: %w", fromAccountID, fromErr)
	}
	toAccount, toErr := s.accountRepo.GetAccount(ctx, toAccountID)
	if toErr != nil && !errors.Is(toErr, commons.ErrRecordNotFound) {
		logger.Error("account service transfer fetch failed", toErr, logger.Fields{
			"accountId": toAccountID,
		})
		return fmt.Errorf("get account %d: %w", toAccountID, toErr)
	}

	if fromErr != nil || toErr != nil {
		return commons.ErrRecordNotFound
	}

	if fromAccountID == toAccountID {
		return &commons.RuleViolationError{
			Field:   "toAccount",
			Message: "Transfer requires two different accounts",
		}
	}

	if fromAccount.InstitutionID != toAccount.InstitutionID {
		return &commons.RuleViolationError{
			Field:   "institutionId",
			Message: "Transfer is only allowed for accounts within the institution",
		}
	}

	if !amount.IsPositive() {
		return &commons.RuleViolationError{
			Field:   "amount",
			Message: "Amount should be greater than zero",
		}
	}

	if fromAccount.Balance.Sub(amount).IsNegative() {
		return &commons.RuleViolationError{
			Field:   "amount",
			Message: "Insufficient funds to complete transaction",
		}
	}

	fromAccount.Balance = fromAccount.Balance.Sub(amount)
	toAccount.Balance = toAccount.Balance.Add(amount)

	if err := s.accountRepo.TransferAmount(ctx, fromAccount, toAccount); err != nil {
		if errors.Is(err, commons.ErrConcurrencyConflict) {
			logger.Info("account service transfer commit conflict", logger.Fields{
				"fromAccount": fromAccountID,
				"toAccount":   toAccountID,
			})
			return err
		}
		logger.Error("account service transfer commit failed", err, logger.Fields{
			"fromAccount": fromAccountID,
			"toAccount":   toAccountID,
		})
		return fmt.Errorf("transfer %s from account %d to account %d: %w", amount, fromAccountID, toAccountID, err)
	}

	logger.Info("account service transfer success", logger.Fields{
		"fromAccount": fromAccountID,
		"toAccount":   toAccountID,
		"amount":      amount,
	})
	return nil
}
