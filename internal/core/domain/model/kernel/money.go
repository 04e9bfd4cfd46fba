package kernel

import (
	"fmt"

	"bookstore/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a monetary amount with two fractional
// digits of precision. It is backed by an arbitrary-precision decimal so that
// currency arithmetic never suffers binary floating point drift.
//
// Money is immutable: every operation returns a new value. Amounts may be
// negative while intermediate results are combined; callers that require a
// non-negative amount must check IsNegative themselves.
type Money struct {
	amount decimal.Decimal
}

// NewMoneyFromString parses a decimal string such as "49.90" into Money.
// Returns an error for strings that are not valid decimal numbers.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", fmt.Errorf("%q is not a decimal number", s))
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromDecimal wraps an existing decimal value as Money.
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Half returns the amount divided by two, without rounding.
func (m Money) Half() Money {
	return Money{amount: m.amount.Div(decimal.NewFromInt(2))}
}

// Round2 rounds the amount to two fractional digits using half-up rounding,
// matching conventional currency arithmetic.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(2)}
}

// GreaterOrEqual reports whether m >= other.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts by numeric value, ignoring scale.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
