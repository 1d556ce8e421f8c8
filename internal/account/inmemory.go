package account

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/haseebajmal/finapp/internal/errs"
	"github.com/haseebajmal/finapp/internal/money"
)

// memoryRepository is an in-process transactional store with optimistic
// concurrency control. Each row carries a version; a commit verifies every
// row read by the transaction is unchanged and fails with ErrTxConflict
// otherwise. That mirrors serializable abort-and-retry semantics closely
// enough to exercise the transfer retry loop in tests and dev mode.
type memoryRepository struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*memoryRow

	conflictsToInject int
}

type memoryRow struct {
	acct    Account
	version uint64
}

// NewInMemory creates a concurrency-safe in-memory account repository.
func NewInMemory() Repository {
	return &memoryRepository{rows: make(map[uuid.UUID]*memoryRow)}
}

func (r *memoryRepository) Create(_ context.Context, acct Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rows[acct.ID]; exists {
		return errs.Ef(errs.Conflict, "account id %s already exists", acct.ID)
	}
	r.rows[acct.ID] = &memoryRow{acct: acct, version: 1}
	return nil
}

func (r *memoryRepository) Get(_ context.Context, id uuid.UUID) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return Account{}, errs.Ef(errs.NotFound, "account %s not found", id)
	}
	return row.acct, nil
}

func (r *memoryRepository) RunInTransaction(_ context.Context, fn func(tx Tx) error) error {
	tx := &memoryTx{
		repo:  r,
		reads: make(map[uuid.UUID]uint64),
	}
	if err := fn(tx); err != nil {
		return err
	}
	return tx.commit()
}

type memoryTx struct {
	repo   *memoryRepository
	reads  map[uuid.UUID]uint64
	writes map[uuid.UUID]money.Money
}

func (t *memoryTx) ReadAccounts(_ context.Context, ids ...uuid.UUID) (map[uuid.UUID]Account, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()

	accounts := make(map[uuid.UUID]Account, len(ids))
	for _, id := range ids {
		row, ok := t.repo.rows[id]
		if !ok {
			return nil, errs.Ef(errs.NotFound, "account %s not found", id)
		}
		t.reads[id] = row.version
		accounts[id] = row.acct
	}
	return accounts, nil
}

func (t *memoryTx) WriteBalances(_ context.Context, updates map[uuid.UUID]money.Money) error {
	if t.writes == nil {
		t.writes = make(map[uuid.UUID]money.Money, len(updates))
	}
	for id, balance := range updates {
		if balance.IsNegative() {
			return errs.Ef(errs.InvalidArgument, "balance for account %s cannot be negative", id)
		}
		t.writes[id] = balance
	}
	return nil
}

func (t *memoryTx) commit() error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()

	if t.repo.conflictsToInject > 0 {
		t.repo.conflictsToInject--
		return fmt.Errorf("%w: injected", ErrTxConflict)
	}

	// Snapshot validation: any row read by this transaction that moved since
	// the read means a concurrent commit interleaved.
	for id, version := range t.reads {
		row, ok := t.repo.rows[id]
		if !ok {
			return errs.Ef(errs.NotFound, "account %s not found", id)
		}
		if row.version != version {
			return fmt.Errorf("%w: account %s changed concurrently", ErrTxConflict, id)
		}
	}

	for id, balance := range t.writes {
		row, ok := t.repo.rows[id]
		if !ok {
			return errs.Ef(errs.NotFound, "account %s not found", id)
		}
		row.acct.Balance = balance
		row.version++
	}
	t.writes = nil
	return nil
}
