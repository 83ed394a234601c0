package clear_cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/b2b-catalog-service/internal/app/cart/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/repo"
	catalog "github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/clock"
)

func TestExecute(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	carts := repo.NewMemoryCartRepo()
	_, err := carts.Update(context.Background(), "c1", func(c *domain.Cart) error {
		return c.AddItem(domain.Item{
			ProductID: "a",
			Price:     catalog.ResolvedPrice{Price: catalog.NewMoney(10, 1), Currency: catalog.CurrencyAED},
		}, 3, "", now)
	})
	require.NoError(t, err)

	cart, err := NewInteractor(carts, clock.NewFake(now)).Execute(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.True(t, cart.Total.IsZero())

	stored, err := carts.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, stored.IsEmpty())
}
