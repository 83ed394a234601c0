package domain

import "strings"

// Currency is an ISO 4217 code from the fixed set negotiated prices may use.
type Currency string

const (
	CurrencyAED Currency = "AED"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// BaseCurrency is the currency of default prices and configuration prices,
// and the fallback for client price records created without a currency.
const BaseCurrency = CurrencyAED

// ParseCurrency normalizes s and checks it against the supported set.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidCurrency
	}
	return c, nil
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyAED, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}
