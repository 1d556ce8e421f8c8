package account

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/haseebajmal/finapp/internal/errs"
	"github.com/haseebajmal/finapp/internal/money"
)

// Factory validates and creates new accounts.
type Factory struct {
	repo Repository
}

// NewFactory builds an account factory.
func NewFactory(repo Repository) *Factory {
	return &Factory{repo: repo}
}

// CreateInput carries the wire-level fields for a new account.
type CreateInput struct {
	Type    string
	Status  string
	Balance string
}

// Create validates the input, generates an id and persists the account.
func (f *Factory) Create(ctx context.Context, input CreateInput) (Account, error) {
	typ, err := ParseType(input.Type)
	if err != nil {
		return Account{}, err
	}
	status, err := ParseStatus(input.Status)
	if err != nil {
		return Account{}, err
	}
	balance, err := money.Parse(input.Balance)
	if err != nil {
		return Account{}, err
	}
	if balance.IsNegative() {
		return Account{}, errs.E(errs.InvalidAmount, "account balance cannot be negative")
	}

	acct := Account{
		ID:        uuid.New(),
		Type:      typ,
		Status:    status,
		Balance:   balance,
		CreatedAt: time.Now().UTC(),
	}
	if err := f.repo.Create(ctx, acct); err != nil {
		return Account{}, err
	}
	return acct, nil
}
