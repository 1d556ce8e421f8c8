package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/haseebajmal/finapp/internal/errs"
	"github.com/haseebajmal/finapp/internal/money"
)

func newTestAccount(balance string) Account {
	return Account{
		ID:        uuid.New(),
		Type:      TypeChecking,
		Status:    StatusActive,
		Balance:   money.MustParse(balance),
		CreatedAt: time.Now().UTC(),
	}
}

func TestInMemoryCreateRejectsDuplicateID(t *testing.T) {
	repo := NewInMemory()
	ctx := context.Background()

	acct := newTestAccount("10")
	if err := repo.Create(ctx, acct); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, acct); errs.KindOf(err) != errs.Conflict {
		t.Fatalf("expected conflict on duplicate id, got %v", err)
	}
}

func TestInMemoryGetMissingAccount(t *testing.T) {
	repo := NewInMemory()
	if _, err := repo.Get(context.Background(), uuid.New()); errs.KindOf(err) != errs.NotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestInMemoryTransactionAppliesAllWrites(t *testing.T) {
	repo := NewInMemory()
	ctx := context.Background()

	a := newTestAccount("100")
	b := newTestAccount("50")
	repo.Create(ctx, a)
	repo.Create(ctx, b)

	err := repo.RunInTransaction(ctx, func(tx Tx) error {
		if _, err := tx.ReadAccounts(ctx, a.ID, b.ID); err != nil {
			return err
		}
		return tx.WriteBalances(ctx, map[uuid.UUID]money.Money{
			a.ID: money.MustParse("90"),
			b.ID: money.MustParse("60"),
		})
	})
	if err != nil {
		t.Fatalf("transaction: %v", err)
	}

	gotA, _ := repo.Get(ctx, a.ID)
	gotB, _ := repo.Get(ctx, b.ID)
	if gotA.Balance.String() != "90" || gotB.Balance.String() != "60" {
		t.Fatalf("expected 90/60, got %s/%s", gotA.Balance, gotB.Balance)
	}
}

func TestInMemoryTransactionDiscardsWritesOnFailure(t *testing.T) {
	repo := NewInMemory()
	ctx := context.Background()

	a := newTestAccount("100")
	repo.Create(ctx, a)

	boom := errors.New("boom")
	err := repo.RunInTransaction(ctx, func(tx Tx) error {
		if err := tx.WriteBalances(ctx, map[uuid.UUID]money.Money{a.ID: money.MustParse("0")}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	got, _ := repo.Get(ctx, a.ID)
	if got.Balance.String() != "100" {
		t.Fatalf("aborted transaction leaked a write, balance=%s", got.Balance)
	}
}

func TestInMemoryWriteBalancesRejectsNegative(t *testing.T) {
	repo := NewInMemory()
	ctx := context.Background()

	a := newTestAccount("100")
	repo.Create(ctx, a)

	err := repo.RunInTransaction(ctx, func(tx Tx) error {
		return tx.WriteBalances(ctx, map[uuid.UUID]money.Money{a.ID: money.MustParse("-1")})
	})
	if errs.KindOf(err) != errs.InvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestInMemoryConflictOnInterleavedCommit(t *testing.T) {
	repo := NewInMemory()
	ctx := context.Background()

	a := newTestAccount("100")
	repo.Create(ctx, a)

	err := repo.RunInTransaction(ctx, func(tx Tx) error {
		if _, err := tx.ReadAccounts(ctx, a.ID); err != nil {
			return err
		}
		// Another transaction commits against the same row mid-flight.
		SeedBalance(repo, a.ID, money.MustParse("42"))
		return tx.WriteBalances(ctx, map[uuid.UUID]money.Money{a.ID: money.MustParse("99")})
	})
	if !errors.Is(err, ErrTxConflict) {
		t.Fatalf("expected tx conflict, got %v", err)
	}

	got, _ := repo.Get(ctx, a.ID)
	if got.Balance.String() != "42" {
		t.Fatalf("conflicting write was applied, balance=%s", got.Balance)
	}
}

func TestInMemoryReadMissingAccountInsideTransaction(t *testing.T) {
	repo := NewInMemory()
	ctx := context.Background()

	err := repo.RunInTransaction(ctx, func(tx Tx) error {
		_, err := tx.ReadAccounts(ctx, uuid.New())
		return err
	})
	if errs.KindOf(err) != errs.NotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
