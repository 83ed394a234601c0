package domain

import (
	"fmt"
	"math/big"
)

// Discount is a whole-number percentage taken off a negotiated client price.
// The validity window lives on the ClientPriceRecord that carries it.
// Discount is immutable once created.
type Discount struct {
	percent int
}

// NewDiscount creates a Discount of percent (0-100, e.g. 15 for 15% off).
func NewDiscount(percent int) (Discount, error) {
	if percent < 0 || percent > 100 {
		return Discount{}, ErrInvalidDiscountPercentage
	}
	return Discount{percent: percent}, nil
}

// Percent returns the discount on the 0-100 scale.
func (d Discount) Percent() int {
	return d.percent
}

func (d Discount) IsZero() bool {
	return d.percent == 0
}

// Rat returns the discount as a fraction in [0,1], e.g. 15/100.
func (d Discount) Rat() *big.Rat {
	return big.NewRat(int64(d.percent), 100)
}

// AmountOf returns how much the discount takes off price.
func (d Discount) AmountOf(price *Money) *Money {
	return price.MultiplyByFraction(int64(d.percent), 100)
}

// ApplyTo returns price * (1 - percent/100).
func (d Discount) ApplyTo(price *Money) *Money {
	return price.MultiplyByFraction(int64(100-d.percent), 100)
}

func (d Discount) String() string {
	return fmt.Sprintf("%d%% off", d.percent)
}
