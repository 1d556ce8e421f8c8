package account

import (
	"time"

	"github.com/google/uuid"

	"github.com/haseebajmal/finapp/internal/errs"
	"github.com/haseebajmal/finapp/internal/money"
)

// Type categorizes an account. Stored as a small integer.
type Type int16

const (
	TypeUnspecified Type = iota
	TypeChecking
	TypeSaving
)

// Status is the account lifecycle flag. Stored as a small integer.
type Status int16

const (
	StatusUnspecified Status = iota
	StatusActive
	StatusFrozen
	StatusClosed
)

// Account is a persisted ledger account. ID and Type are immutable after
// creation; Balance is mutated only through the transfer service and never
// goes negative.
type Account struct {
	ID        uuid.UUID
	Type      Type
	Status    Status
	Balance   money.Money
	CreatedAt time.Time
}

// ParseType maps the wire representation to a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "CHECKING":
		return TypeChecking, nil
	case "SAVING":
		return TypeSaving, nil
	default:
		return TypeUnspecified, errs.Ef(errs.InvalidArgument, "unknown account type %q", s)
	}
}

// ParseStatus maps the wire representation to a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "ACTIVE":
		return StatusActive, nil
	case "FROZEN":
		return StatusFrozen, nil
	case "CLOSED":
		return StatusClosed, nil
	default:
		return StatusUnspecified, errs.Ef(errs.InvalidArgument, "unknown account status %q", s)
	}
}

// String renders the type for API responses.
func (t Type) String() string {
	switch t {
	case TypeChecking:
		return "CHECKING"
	case TypeSaving:
		return "SAVING"
	default:
		return "UNSPECIFIED"
	}
}

// String renders the status for API responses.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusFrozen:
		return "FROZEN"
	case StatusClosed:
		return "CLOSED"
	default:
		return "UNSPECIFIED"
	}
}
