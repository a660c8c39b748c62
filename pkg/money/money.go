// Package money provides currency-scale decimal arithmetic. All amounts are
// backed by fixed-point decimals, so binary floating-point representation
// error never enters a calculation; rounding to cents happens explicitly at
// computation boundaries via Round, which is half-away-from-zero in both
// directions (123.455 -> 123.46, -123.455 -> -123.46).
package money

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision.
type Money struct {
	decimal.Decimal
}

// New creates a Money from a decimal.Decimal.
func New(d decimal.Decimal) Money {
	return Money{d}
}

// NewFromFloat creates a Money from a float64.
func NewFromFloat(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewFromInt creates a Money from an int64.
func NewFromInt(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// NewFromString creates a Money from a decimal string such as "1313.32".
func NewFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the amount to cents using half-away-from-zero rounding.
// Round is idempotent: Round(Round(x)) == Round(x). A result of zero is
// always plain zero; fixed-point decimals carry no signed-zero distinction.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Sum adds all values and rounds the total once. Summation happens before
// rounding so that summing already-rounded values and rounding again is a
// no-op.
func Sum(values []Money) Money {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v.Decimal)
	}
	return Money{total}.Round()
}

// Extend computes a line extension: quantity times unit price, rounded to
// cents. Quantity may be fractional (e.g. hours).
func Extend(quantity decimal.Decimal, unitPrice Money) Money {
	return Money{quantity.Mul(unitPrice.Decimal)}.Round()
}

// ApplyRate multiplies the amount by a rate and rounds to cents.
func (m Money) ApplyRate(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(rate)}.Round()
}

// Add adds another Money amount. The result is not rounded; round at the
// boundary where the value leaves a calculation.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor.
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// Neg returns the amount with its sign flipped.
func (m Money) Neg() Money {
	return Money{m.Decimal.Neg()}
}

// GreaterThan checks if this amount is greater than another.
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// GreaterThanOrEqual checks if this amount is greater than or equal to another.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

// LessThan checks if this amount is less than another.
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// LessThanOrEqual checks if this amount is less than or equal to another.
func (m Money) LessThanOrEqual(other Money) bool {
	return m.Decimal.LessThanOrEqual(other.Decimal)
}

// Equal checks if this amount equals another.
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsZero checks if the amount is zero.
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsPositive checks if the amount is positive.
func (m Money) IsPositive() bool {
	return m.Decimal.IsPositive()
}

// IsNegative checks if the amount is negative.
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Min returns the smaller of two Money amounts.
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two Money amounts.
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Zero returns a zero Money amount.
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the string representation with two fraction digits.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount with a currency symbol.
func (m Money) Format() string {
	return "$" + m.String()
}
