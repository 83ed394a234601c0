// Package view holds the JSON shapes both transports present and accept.
package view

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
)

// Money is an exact amount: a two-place decimal for display plus the
// reduced fraction it was computed from.
type Money struct {
	Amount      string `json:"amount"`
	Numerator   int64  `json:"numerator"`
	Denominator int64  `json:"denominator"`
}

func NewMoney(m *domain.Money) *Money {
	if m == nil {
		return nil
	}
	return &Money{Amount: m.String(), Numerator: m.Numerator(), Denominator: m.Denominator()}
}

// MoneyInput accepts "19.99", 19.99, or {"numerator": 1999, "denominator": 100}.
type MoneyInput struct {
	value *domain.Money
}

var errInvalidMoney = errors.New("invalid money")

func (in *MoneyInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		in.value = nil
		return nil
	case len(b) > 0 && b[0] == '{':
		var frac struct {
			Amount      *string `json:"amount"`
			Numerator   *int64  `json:"numerator"`
			Denominator *int64  `json:"denominator"`
		}
		if err := json.Unmarshal(b, &frac); err != nil {
			return fmt.Errorf("%w: %v", errInvalidMoney, err)
		}
		if frac.Numerator != nil {
			den := int64(1)
			if frac.Denominator != nil {
				den = *frac.Denominator
			}
			if den == 0 {
				return fmt.Errorf("%w: zero denominator", errInvalidMoney)
			}
			in.value = domain.NewMoney(*frac.Numerator, den)
			return nil
		}
		if frac.Amount != nil {
			return in.parse(*frac.Amount)
		}
		return fmt.Errorf("%w: expected amount or numerator", errInvalidMoney)
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("%w: %v", errInvalidMoney, err)
		}
		return in.parse(s)
	default:
		return in.parse(string(b))
	}
}

func (in *MoneyInput) parse(s string) error {
	m, err := domain.ParseMoney(s)
	if err != nil {
		return fmt.Errorf("%w: %q", errInvalidMoney, s)
	}
	in.value = m
	return nil
}

// Value returns nil when the input was absent or null.
func (in *MoneyInput) Value() *domain.Money {
	if in == nil {
		return nil
	}
	return in.value
}

// IsInvalidMoney reports whether err came from decoding a MoneyInput.
func IsInvalidMoney(err error) bool {
	return errors.Is(err, errInvalidMoney)
}
