package view

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
)

func TestMoneyInput(t *testing.T) {
	cases := map[string]string{
		`"19.99"`:                                "19.99",
		`19.99`:                                  "19.99",
		`{"numerator": 1999, "denominator": 100}`: "19.99",
		`{"amount": "4000"}`:                     "4000.00",
		`{"numerator": 5}`:                       "5.00",
	}
	for raw, want := range cases {
		var in MoneyInput
		require.NoError(t, json.Unmarshal([]byte(raw), &in), raw)
		assert.Equal(t, want, in.Value().String(), raw)
	}

	for _, raw := range []string{`"abc"`, `{"numerator": 1, "denominator": 0}`, `{}`, `true`} {
		var in MoneyInput
		err := json.Unmarshal([]byte(raw), &in)
		assert.True(t, IsInvalidMoney(err), raw)
	}

	var nilIn *MoneyInput
	assert.Nil(t, nilIn.Value())
}

func TestNewPrice(t *testing.T) {
	p := NewPrice(domain.ResolvedPrice{
		Price:         domain.NewMoney(2720, 1),
		OriginalPrice: domain.NewMoney(3200, 1),
		Discount:      15,
		Currency:      domain.CurrencyAED,
		Source:        domain.PriceSourceClient,
	})

	assert.Equal(t, "2720.00", p.Price.Amount)
	assert.Equal(t, int64(2720), p.Price.Numerator)
	assert.Equal(t, "3200.00", p.OriginalPrice.Amount)
	assert.True(t, p.Discounted)

	b, err := json.Marshal(NewPrice(domain.ResolvedPrice{Price: domain.NewMoney(4000, 1), Currency: domain.CurrencyAED, Source: domain.PriceSourceDefault}))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "originalPrice")
}
