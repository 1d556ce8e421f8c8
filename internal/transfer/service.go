// Package transfer moves balance between two accounts as one atomic,
// serializable transaction, retrying on contention aborts.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haseebajmal/finapp/internal/account"
	"github.com/haseebajmal/finapp/internal/errs"
	"github.com/haseebajmal/finapp/internal/money"
	"github.com/haseebajmal/finapp/internal/notification"
)

// Policy controls retry behavior and status enforcement for balance moves.
type Policy struct {
	// Attempts is the total number of transaction attempts per move.
	Attempts int
	// Backoff is slept between attempts after a contention abort.
	Backoff time.Duration
	// RequireActive rejects transfers touching non-ACTIVE accounts.
	RequireActive bool
}

// DefaultPolicy is used when the caller supplies zero values.
var DefaultPolicy = Policy{Attempts: 5, Backoff: 25 * time.Millisecond, RequireActive: true}

// Service orchestrates balance moves against the account repository.
type Service struct {
	repo     account.Repository
	policy   Policy
	notifier notification.Notifier
}

// NewService builds a transfer service. notifier may be nil.
func NewService(repo account.Repository, policy Policy, notifier notification.Notifier) *Service {
	if policy.Attempts <= 0 {
		policy.Attempts = DefaultPolicy.Attempts
	}
	if policy.Backoff <= 0 {
		policy.Backoff = DefaultPolicy.Backoff
	}
	return &Service{repo: repo, policy: policy, notifier: notifier}
}

// Result carries both post-transfer balances.
type Result struct {
	FromBalance money.Money
	ToBalance   money.Money
}

// MoveBalance atomically debits amount from the source account and credits it
// to the destination. Validation failures leave persisted state untouched;
// contention aborts are retried with fresh reads up to the policy bound.
func (s *Service) MoveBalance(ctx context.Context, fromID, toID uuid.UUID, amountStr string) (Result, error) {
	amount, err := money.Parse(amountStr)
	if err != nil {
		return Result{}, err
	}
	if amount.IsNegative() {
		return Result{}, errs.E(errs.InvalidArgument, "amount cannot be negative")
	}
	if fromID == toID {
		return Result{}, errs.E(errs.InvalidArgument, "source and destination accounts must differ")
	}

	var res Result
	for attempt := 0; attempt < s.policy.Attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return Result{}, errs.Wrap(errs.Unavailable, "transfer cancelled", ctx.Err())
			case <-time.After(s.policy.Backoff):
			}
		}

		err = s.repo.RunInTransaction(ctx, func(tx account.Tx) error {
			accounts, err := tx.ReadAccounts(ctx, fromID, toID)
			if err != nil {
				return err
			}
			from, to := accounts[fromID], accounts[toID]

			if s.policy.RequireActive {
				if from.Status != account.StatusActive {
					return errs.Ef(errs.InvalidArgument, "account %s is %s", fromID, from.Status)
				}
				if to.Status != account.StatusActive {
					return errs.Ef(errs.InvalidArgument, "account %s is %s", toID, to.Status)
				}
			}

			if amount.GreaterThan(from.Balance) {
				return errs.E(errs.InvalidArgument, "amount greater than original balance")
			}

			newFrom := from.Balance.Sub(amount)
			newTo := to.Balance.Add(amount)
			if err := tx.WriteBalances(ctx, map[uuid.UUID]money.Money{
				fromID: newFrom,
				toID:   newTo,
			}); err != nil {
				return err
			}
			res = Result{FromBalance: newFrom, ToBalance: newTo}
			return nil
		})
		if err == nil {
			s.notify(ctx, fromID, toID, amount)
			return res, nil
		}
		if ctx.Err() != nil {
			return Result{}, errs.Wrap(errs.Unavailable, "transfer cancelled", ctx.Err())
		}
		if !errors.Is(err, account.ErrTxConflict) {
			return Result{}, err
		}
	}

	return Result{}, errs.Wrap(errs.Unavailable,
		fmt.Sprintf("transfer aborted after %d attempts due to contention", s.policy.Attempts), err)
}

func (s *Service) notify(ctx context.Context, fromID, toID uuid.UUID, amount money.Money) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Send(ctx, notification.Message{
		Kind:        notification.KindBalanceMoved,
		Destination: toID.String(),
		Body:        fmt.Sprintf("Received %s from account %s", amount, fromID),
	})
}
