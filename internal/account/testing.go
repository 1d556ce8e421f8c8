package account

import (
	"github.com/google/uuid"

	"github.com/haseebajmal/finapp/internal/money"
)

// SeedBalance is a test helper that overwrites an account balance when using
// the in-memory repository.
func SeedBalance(r Repository, id uuid.UUID, balance money.Money) {
	if mem, ok := r.(*memoryRepository); ok {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		if row, exists := mem.rows[id]; exists {
			row.acct.Balance = balance
			row.version++
		}
	}
}

// InjectConflicts makes the next n commits on the in-memory repository fail
// with ErrTxConflict, to exercise retry paths.
func InjectConflicts(r Repository, n int) {
	if mem, ok := r.(*memoryRepository); ok {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		mem.conflictsToInject = n
	}
}
