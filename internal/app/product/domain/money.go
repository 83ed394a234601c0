package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// Money represents a monetary value with precise decimal arithmetic.
// It uses big.Rat internally so discount math such as 3200 * 85/100 stays exact.
// Money carries no currency; the currency travels next to it.
// Money is immutable - all operations return new instances.
type Money struct {
	amount *big.Rat
}

// NewMoney creates a new Money instance from numerator and denominator.
// For example: NewMoney(1999, 100) represents 19.99
func NewMoney(numerator, denominator int64) *Money {
	if denominator == 0 {
		panic("money: denominator cannot be zero")
	}
	return &Money{
		amount: big.NewRat(numerator, denominator),
	}
}

// ParseMoney creates Money from a decimal ("19.99", "4000") or fraction ("1999/100") string.
func ParseMoney(s string) (*Money, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("invalid money amount: empty")
	}
	rat := new(big.Rat)
	if _, ok := rat.SetString(trimmed); !ok {
		return nil, fmt.Errorf("invalid money amount: %q", s)
	}
	m := &Money{amount: rat}
	if !m.Storable() {
		return nil, fmt.Errorf("money amount %q: %w", s, ErrPriceOutOfRange)
	}
	return m, nil
}

// NewMoneyFromRat creates Money from an existing big.Rat.
// The rat is copied to ensure immutability.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return Zero()
	}
	return &Money{
		amount: new(big.Rat).Set(rat),
	}
}

// Zero returns a Money instance representing zero.
func Zero() *Money {
	return &Money{amount: new(big.Rat)}
}

// Add returns a new Money that is the sum of m and other.
func (m *Money) Add(other *Money) *Money {
	return &Money{amount: new(big.Rat).Add(m.amount, other.amount)}
}

// Subtract returns a new Money that is the difference of m and other.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{amount: new(big.Rat).Sub(m.amount, other.amount)}
}

// MultiplyByFraction multiplies Money by numerator/denominator.
func (m *Money) MultiplyByFraction(numerator, denominator int64) *Money {
	return &Money{amount: new(big.Rat).Mul(m.amount, big.NewRat(numerator, denominator))}
}

// MultiplyByQuantity multiplies Money by a whole quantity (cart line subtotal).
func (m *Money) MultiplyByQuantity(quantity int) *Money {
	return m.MultiplyByFraction(int64(quantity), 1)
}

func (m *Money) IsZero() bool {
	return m.amount.Sign() == 0
}

func (m *Money) IsNegative() bool {
	return m.amount.Sign() < 0
}

// Storable reports whether the reduced fraction fits the int64 columns it is persisted in.
func (m *Money) Storable() bool {
	return m.amount.Num().IsInt64() && m.amount.Denom().IsInt64()
}

// Equals returns true if m equals other.
func (m *Money) Equals(other *Money) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.amount.Cmp(other.amount) == 0
}

// Cmp compares m and other and returns -1, 0 or +1.
func (m *Money) Cmp(other *Money) int {
	return m.amount.Cmp(other.amount)
}

// Numerator returns the numerator of the internal rational representation.
// Used for database persistence.
func (m *Money) Numerator() int64 {
	return m.amount.Num().Int64()
}

// Denominator returns the denominator of the internal rational representation.
// Used for database persistence.
func (m *Money) Denominator() int64 {
	return m.amount.Denom().Int64()
}

// Rat returns a copy of the internal big.Rat.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.amount)
}

// Float64 returns the amount as a float64.
// Note: This may lose precision and should only be used for display purposes.
func (m *Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// RatString returns the exact "numerator/denominator" form, e.g. "2720/1".
// ParseMoney accepts it back without loss.
func (m *Money) RatString() string {
	return m.amount.String()
}

// String returns the amount rounded to two decimals, e.g. "2720.00".
func (m *Money) String() string {
	return m.amount.FloatString(2)
}

// FloatString returns a decimal string representation with the specified precision.
func (m *Money) FloatString(precision int) string {
	return m.amount.FloatString(precision)
}
