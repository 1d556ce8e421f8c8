// Package money represents currency amounts as exact decimals. Amounts never
// pass through binary floating point at any layer, including parsing and
// formatting.
package money

import (
	"github.com/shopspring/decimal"

	"github.com/haseebajmal/finapp/internal/errs"
)

// Money is an exact decimal amount.
type Money struct {
	dec decimal.Decimal
}

// Zero is the zero amount.
var Zero = Money{}

// Parse converts a decimal-numeral string into Money.
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.Ef(errs.InvalidAmount, "invalid amount %q", s)
	}
	return Money{dec: d}, nil
}

// MustParse is a test helper that panics on malformed input.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.dec.IsNegative() }

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool { return m.dec.IsZero() }

// GreaterThan reports whether m exceeds o by exact decimal value.
func (m Money) GreaterThan(o Money) bool { return m.dec.GreaterThan(o.dec) }

// Equal compares by exact decimal value, so "10" equals "10.00".
func (m Money) Equal(o Money) bool { return m.dec.Equal(o.dec) }

// Add returns m + o.
func (m Money) Add(o Money) Money { return Money{dec: m.dec.Add(o.dec)} }

// Sub returns m - o.
func (m Money) Sub(o Money) Money { return Money{dec: m.dec.Sub(o.dec)} }

// String renders the amount without exponent notation.
func (m Money) String() string { return m.dec.String() }
