package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/banking-api/internal/commons"
	"github.com/api-sage/banking-api/internal/domain"
	"github.com/shopspring/decimal"
)

func TestTransferAmountRejectsStaleVersion(t *testing.T) {
	repo := NewAccountRepository(
		domain.Account{AccountID: 1, Balance: decimal.RequireFromString("10"), InstitutionID: 1, MemberID: 1},
		domain.Account{AccountID: 2, Balance: decimal.RequireFromString("5"), InstitutionID: 1, MemberID: 2},
	)
	ctx := context.Background()

	from, _ := repo.GetAccount(ctx, 1)
	to, _ := repo.GetAccount(ctx, 2)

	// A concurrent balance update lands between fetch and commit.
	concurrent, _ := repo.GetAccount(ctx, 1)
	concurrent.Balance = decimal.RequireFromString("1")
	if err := repo.UpdateBalance(ctx, concurrent); err != nil {
		t.Fatalf("concurrent update: %v", err)
	}

	from.Balance = from.Balance.Sub(decimal.RequireFromString("2"))
	to.Balance = to.Balance.Add(decimal.RequireFromString("2"))

	err := repo.TransferAmount(ctx, from, to)
	if !errors.Is(err, commons.ErrConcurrencyConflict) {
		t.Fatalf("expected ErrConcurrencyConflict, got %v", err)
	}

	// Neither side of the rejected transfer was applied.
	stored, _ := repo.GetAccount(ctx, 2)
	if !stored.Balance.Equal(decimal.RequireFromString("5")) {
		t.Fatalf("to account mutated by rejected transfer: %s", stored.Balance)
	}
}

func TestTransferAmountAppliesBothSides(t *testing.T) {
	repo := NewAccountRepository(
		domain.Account{AccountID: 1, Balance: decimal.RequireFromString("10"), InstitutionID: 1, MemberID: 1},
		domain.Account{AccountID: 2, Balance: decimal.RequireFromString("5"), InstitutionID: 1, MemberID: 2},
	)
	ctx := context.Background()

	from, _ := repo.GetAccount(ctx, 1)
	to, _ := repo.GetAccount(ctx, 2)
	from.Balance = decimal.RequireFromString("8")
	to.Balance = decimal.RequireFromString("7")

	if err := repo.TransferAmount(ctx, from, to); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	storedFrom, _ := repo.GetAccount(ctx, 1)
	storedTo, _ := repo.GetAccount(ctx, 2)
	if !storedFrom.Balance.Equal(decimal.RequireFromString("8")) || !storedTo.Balance.Equal(decimal.RequireFromString("7")) {
		t.Fatalf("unexpected balances %s, %s", storedFrom.Balance, storedTo.Balance)
	}
	if storedFrom.Version != from.Version+1 || storedTo.Version != to.Version+1 {
		t.Fatal("expected versions bumped by transfer")
	}
}
