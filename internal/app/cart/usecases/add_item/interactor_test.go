package add_item

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

var (
	now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	who = catalog.ClientIdentity{ID: "c1", Email: "a@x.com"}
)

type fakeCatalog struct {
	items map[string]*domain.Item
}

func (f *fakeCatalog) LookupItem(_ context.Context, _ catalog.ClientIdentity, productID string) (*domain.Item, error) {
	item, ok := f.items[productID]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return item, nil
}

func newInteractor() *Interactor {
	lookup := &fakeCatalog{items: map[string]*domain.Item{
		"prod-1": {
			ProductID:   "prod-1",
			ProductName: "ThinkPad X1",
			Price: catalog.ResolvedPrice{
				Price: catalog.NewMoney(2720, 1), Currency: catalog.CurrencyAED, Source: catalog.PriceSourceClient,
			},
		},
	}}
	return NewInteractor(repo.NewMemoryCartRepo(), lookup, clock.NewFake(now), nil)
}

func TestExecute_AddTwiceDoublesTotal(t *testing.T) {
	it := newInteractor()
	req := Request{Who: who, ProductID: "prod-1", Quantity: 1}

	_, err := it.Execute(context.Background(), req)
	require.NoError(t, err)
	cart, err := it.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, "5440.00", cart.Total.String())
	assert.Equal(t, "AED", cart.Currency)
}

func TestExecute_Rejections(t *testing.T) {
	it := newInteractor()

	_, err := it.Execute(context.Background(), Request{Who: who, ProductID: "prod-1", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = it.Execute(context.Background(), Request{Who: who, ProductID: "nope", Quantity: 1})
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)

	_, err = it.Execute(context.Background(), Request{Who: who, ProductID: "prod-1", ConfigurationID: "ultra", Quantity: 1})
	assert.ErrorIs(t, err, catalog.ErrConfigurationNotFound)
}
