package account

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/haseebajmal/finapp/internal/money"
)

// ErrTxConflict marks a transaction aborted by the store because a concurrent
// transaction touched the same rows. Callers may retry with fresh reads.
var ErrTxConflict = errors.New("transaction conflict")

// Tx exposes repository access bound to one open transaction. Reads come from
// a single consistent snapshot; writes become visible only on commit.
type Tx interface {
	// ReadAccounts returns the stored record for each requested id. Missing
	// ids fail with a NotFound-classified error.
	ReadAccounts(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]Account, error)

	// WriteBalances stages all balance updates inside the enclosing
	// transaction. They are applied together or not at all.
	WriteBalances(ctx context.Context, updates map[uuid.UUID]money.Money) error
}

// Repository owns persisted account state. It is the only component that
// reads or writes accounts, and RunInTransaction is the sole mutation
// boundary for balances.
type Repository interface {
	// Create inserts a new account record. A generated-id collision fails
	// with a Conflict-classified error.
	Create(ctx context.Context, acct Account) error

	// Get reads a single account outside of any transfer transaction.
	Get(ctx context.Context, id uuid.UUID) (Account, error)

	// RunInTransaction executes fn against a serializable transaction,
	// committing on success and discarding every staged write if fn or the
	// commit fails. A contention abort is surfaced as ErrTxConflict.
	RunInTransaction(ctx context.Context, fn func(tx Tx) error) error
}
