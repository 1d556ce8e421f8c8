package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haseebajmal/finapp/internal/errs"
	"github.com/haseebajmal/finapp/internal/money"
)

// PostgresRepository persists accounts in PostgreSQL. Balance moves run under
// serializable isolation so concurrent transfers touching the same rows abort
// and retry instead of interleaving.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a Postgres-backed account repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the account record.
func (r *PostgresRepository) Create(ctx context.Context, acct Account) error {
	_, err := r.db.Exec(ctx, `INSERT INTO accounts (id, account_type, account_status, balance, created_at)
        VALUES ($1, $2, $3, $4, $5)`,
		acct.ID, int16(acct.Type), int16(acct.Status), acct.Balance.String(), acct.CreatedAt.UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return errs.Wrap(errs.Conflict, fmt.Sprintf("account id %s already exists", acct.ID), err)
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// Get reads a single account record.
func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (Account, error) {
	row := r.db.QueryRow(ctx, `SELECT account_type, account_status, balance::text, created_at
        FROM accounts WHERE id = $1`, id)
	acct := Account{ID: id}
	var typ, status int16
	var balance string
	if err := row.Scan(&typ, &status, &balance, &acct.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, errs.Ef(errs.NotFound, "account %s not found", id)
		}
		return Account{}, fmt.Errorf("read account: %w", err)
	}
	acct.Type = Type(typ)
	acct.Status = Status(status)
	bal, err := money.Parse(balance)
	if err != nil {
		return Account{}, fmt.Errorf("decode balance for account %s: %w", id, err)
	}
	acct.Balance = bal
	return acct, nil
}

// RunInTransaction runs fn inside one serializable transaction.
func (r *PostgresRepository) RunInTransaction(ctx context.Context, fn func(tx Tx) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	if err := fn(&pgTx{tx: tx}); err != nil {
		return classifyPgFailure(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return classifyPgFailure(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) ReadAccounts(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]Account, error) {
	rows, err := t.tx.Query(ctx, `SELECT id, account_type, account_status, balance::text, created_at
        FROM accounts WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("read accounts: %w", err)
	}
	defer rows.Close()

	accounts := make(map[uuid.UUID]Account, len(ids))
	for rows.Next() {
		var acct Account
		var typ, status int16
		var balance string
		if err := rows.Scan(&acct.ID, &typ, &status, &balance, &acct.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		acct.Type = Type(typ)
		acct.Status = Status(status)
		bal, err := money.Parse(balance)
		if err != nil {
			return nil, fmt.Errorf("decode balance for account %s: %w", acct.ID, err)
		}
		acct.Balance = bal
		accounts[acct.ID] = acct
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read accounts: %w", err)
	}

	for _, id := range ids {
		if _, ok := accounts[id]; !ok {
			return nil, errs.Ef(errs.NotFound, "account %s not found", id)
		}
	}
	return accounts, nil
}

func (t *pgTx) WriteBalances(ctx context.Context, updates map[uuid.UUID]money.Money) error {
	for id, balance := range updates {
		if balance.IsNegative() {
			return errs.Ef(errs.InvalidArgument, "balance for account %s cannot be negative", id)
		}
		tag, err := t.tx.Exec(ctx, `UPDATE accounts SET balance = $2 WHERE id = $1`, id, balance.String())
		if err != nil {
			return fmt.Errorf("write balance for account %s: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return errs.Ef(errs.NotFound, "account %s not found", id)
		}
	}
	return nil
}

// classifyPgFailure maps store-level aborts onto the retryable conflict
// sentinel and leaves classified errors untouched.
func classifyPgFailure(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%w: %v", ErrTxConflict, err)
		}
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
