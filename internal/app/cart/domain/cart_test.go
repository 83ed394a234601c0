package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func laptop(t *testing.T) Item {
	t.Helper()
	pro, err := catalog.NewConfiguration("pro", "Pro", "", catalog.NewMoney(5200, 1), nil, false)
	require.NoError(t, err)
	set, err := catalog.NewConfigurationSet(pro)
	require.NoError(t, err)

	return Item{
		ProductID:   "prod-1",
		ProductName: "ThinkPad X1",
		Price: catalog.ResolvedPrice{
			Price:         catalog.NewMoney(2720, 1),
			OriginalPrice: catalog.NewMoney(3200, 1),
			Discount:      15,
			Currency:      catalog.CurrencyAED,
			Source:        catalog.PriceSourceClient,
		},
		Configurations: set,
	}
}

func newCart(t *testing.T) *Cart {
	t.Helper()
	c, err := NewCart("c1")
	require.NoError(t, err)
	return c
}

func TestAddItem_MergesSameKey(t *testing.T) {
	c := newCart(t)
	item := laptop(t)

	require.NoError(t, c.AddItem(item, 1, "", now))
	require.NoError(t, c.AddItem(item, 1, "", now))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, NoConfiguration, lines[0].ConfigurationID)

	total, currency, err := c.Total()
	require.NoError(t, err)
	assert.Equal(t, "5440.00", total.String())
	assert.Equal(t, catalog.CurrencyAED, currency)
}

func TestAddItem_ConfigurationMakesSeparateLine(t *testing.T) {
	c := newCart(t)
	item := laptop(t)

	require.NoError(t, c.AddItem(item, 1, "", now))
	require.NoError(t, c.AddItem(item, 2, "pro", now))

	require.Len(t, c.Lines(), 2)
	l, ok := c.Line("prod-1", "pro")
	require.True(t, ok)
	// configuration price is absolute and ignores the client discount
	assert.Equal(t, "5200.00", l.UnitPrice.String())
	assert.Equal(t, catalog.PriceSourceConfiguration, l.PriceSource)

	total, _, err := c.Total()
	require.NoError(t, err)
	assert.Equal(t, "13120.00", total.String())
	assert.Equal(t, 3, c.TotalItems())
}

func TestAddItem_MergesSameConfiguration(t *testing.T) {
	c := newCart(t)
	item := laptop(t)

	require.NoError(t, c.AddItem(item, 1, "pro", now))
	require.NoError(t, c.AddItem(item, 2, "pro", now.Add(time.Minute)))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "pro", lines[0].ConfigurationID)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, now.Add(time.Minute), c.UpdatedAt())

	total, _, err := c.Total()
	require.NoError(t, err)
	assert.Equal(t, "15600.00", total.String())
}

func TestAddItem_Rejections(t *testing.T) {
	c := newCart(t)
	item := laptop(t)

	assert.ErrorIs(t, c.AddItem(item, 0, "", now), ErrInvalidQuantity)
	assert.ErrorIs(t, c.AddItem(item, -3, "", now), ErrInvalidQuantity)
	assert.ErrorIs(t, c.AddItem(item, 1, "ultra", now), catalog.ErrConfigurationNotFound)
	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantity(t *testing.T) {
	c := newCart(t)
	item := laptop(t)
	require.NoError(t, c.AddItem(item, 1, "", now))

	c.UpdateQuantity("prod-1", "", 5, now)
	l, _ := c.Line("prod-1", "")
	assert.Equal(t, 5, l.Quantity)

	c.UpdateQuantity("prod-1", "", 0, now)
	assert.True(t, c.IsEmpty())

	// absent line is a no-op
	c.UpdateQuantity("prod-1", "", 0, now)
	c.UpdateQuantity("missing", "", 3, now)
	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantity_ConfiguredLine(t *testing.T) {
	c := newCart(t)
	item := laptop(t)
	require.NoError(t, c.AddItem(item, 1, "", now))
	require.NoError(t, c.AddItem(item, 2, "pro", now))

	c.UpdateQuantity("prod-1", "pro", 0, now)
	_, ok := c.Line("prod-1", "pro")
	assert.False(t, ok)
	require.Len(t, c.Lines(), 1)

	// the line is gone, so repeating the update changes nothing
	changed := now.Add(time.Hour)
	c.UpdateQuantity("prod-1", "pro", 0, changed)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, NoConfiguration, c.Lines()[0].ConfigurationID)
	assert.Equal(t, now, c.UpdatedAt())
}

func TestTotal_EmptyAndMixedCurrency(t *testing.T) {
	c := newCart(t)
	total, currency, err := c.Total()
	require.NoError(t, err)
	assert.True(t, total.IsZero())
	assert.Equal(t, catalog.BaseCurrency, currency)

	item := laptop(t)
	require.NoError(t, c.AddItem(item, 1, "", now))
	usd := item
	usd.ProductID = "prod-2"
	usd.Price.Currency = catalog.CurrencyUSD
	require.NoError(t, c.AddItem(usd, 1, "", now))

	_, _, err = c.Total()
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestRemoveClearToggle(t *testing.T) {
	c := newCart(t)
	item := laptop(t)
	require.NoError(t, c.AddItem(item, 1, "", now))
	require.NoError(t, c.AddItem(item, 1, "pro", now))

	c.RemoveItem("prod-1", "pro", now)
	assert.Len(t, c.Lines(), 1)
	assert.Equal(t, 1, c.RemoveProduct("prod-1", now))

	require.NoError(t, c.AddItem(item, 1, "", now))
	c.Clear(now)
	assert.True(t, c.IsEmpty())

	assert.False(t, c.IsOpen())
	c.Toggle()
	assert.True(t, c.IsOpen())
	c.Close()
	assert.False(t, c.IsOpen())
}

func TestReprice(t *testing.T) {
	c := newCart(t)
	item := laptop(t)
	require.NoError(t, c.AddItem(item, 2, "", now))
	require.NoError(t, c.AddItem(item, 1, "pro", now))

	// record expired: default price now applies and the configuration is gone
	fresh := item
	fresh.Price = catalog.ResolvedPrice{Price: catalog.NewMoney(4000, 1), Currency: catalog.CurrencyAED, Source: catalog.PriceSourceDefault}
	fresh.Configurations = nil

	dropped := c.Reprice(fresh, now)
	assert.Equal(t, 1, dropped)

	total, _, err := c.Total()
	require.NoError(t, err)
	assert.Equal(t, "8000.00", total.String())
}

func TestLinesAreCopies(t *testing.T) {
	c := newCart(t)
	require.NoError(t, c.AddItem(laptop(t), 1, "", now))

	c.Lines()[0].Quantity = 99
	assert.Equal(t, 1, c.TotalItems())
}
