package get_client_product

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain/services"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/clock"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeReadModel struct {
	products map[string]*dto.ProductDTO
}

func (f *fakeReadModel) GetProduct(_ context.Context, id string) (*dto.ProductDTO, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeReadModel) ListProducts(context.Context, dto.ProductFilter, int, int) ([]*dto.ProductDTO, error) {
	return nil, nil
}

func (f *fakeReadModel) ListClientProducts(context.Context, domain.ClientIdentity, dto.ClientProductFilter, int, int) ([]*dto.ProductDTO, error) {
	return nil, nil
}

func laptop(t *testing.T) *dto.ProductDTO {
	t.Helper()
	p, err := domain.NewProduct("prod-1", domain.Details{Name: "ThinkPad X1", Category: "laptops"}, domain.NewMoney(4000, 1), now)
	require.NoError(t, err)
	_, err = p.SetClientPrice(domain.ClientIdentity{ID: "c1", Email: "a@x.com"},
		domain.PriceTerms{Price: domain.NewMoney(3200, 1), DiscountPercentage: 15}, "r1", now)
	require.NoError(t, err)
	_, err = p.SetClientPrice(domain.ClientIdentity{ID: "c2", Email: "b@x.com"},
		domain.PriceTerms{Price: domain.NewMoney(3000, 1)}, "r2", now)
	require.NoError(t, err)

	cfg, err := domain.NewConfiguration("pro", "Pro", "", domain.NewMoney(5200, 1), map[string]string{"ram": "32GB"}, false)
	require.NoError(t, err)
	set, err := domain.NewConfigurationSet(cfg)
	require.NoError(t, err)
	p.ReplaceConfigurations(set, now)
	return dto.FromDomain(p)
}

func newHandler(products ...*dto.ProductDTO) *Handler {
	rm := &fakeReadModel{products: map[string]*dto.ProductDTO{}}
	for _, p := range products {
		rm.products[p.ProductID] = p
	}
	return NewHandler(rm, services.NewPricingResolver(), clock.NewFake(now))
}

func TestExecute_ResolvesNegotiatedPriceAndHidesOtherClients(t *testing.T) {
	h := newHandler(laptop(t))

	got, err := h.Execute(context.Background(), domain.ClientIdentity{ID: "c1", Email: "a@x.com"}, "prod-1")
	require.NoError(t, err)

	assert.Equal(t, domain.PriceSourceClient, got.Price.Source)
	assert.Equal(t, "2720.00", got.Price.Price.String())
	require.Len(t, got.Product.ClientPrices, 1)
	assert.Equal(t, "r1", got.Product.ClientPrices[0].RecordID)
}

func TestExecute_StrangerSeesDefaultAndNoRecords(t *testing.T) {
	h := newHandler(laptop(t))

	got, err := h.Execute(context.Background(), domain.ClientIdentity{ID: "c9", Email: "z@x.com"}, "prod-1")
	require.NoError(t, err)

	assert.Equal(t, domain.PriceSourceDefault, got.Price.Source)
	assert.Equal(t, "4000.00", got.Price.Price.String())
	assert.Empty(t, got.Product.ClientPrices)
}

func TestExecute_InactiveReadsAsNotFound(t *testing.T) {
	stored := laptop(t)
	stored.Status = string(domain.ProductStatusInactive)

	_, err := newHandler(stored).Execute(context.Background(), domain.ClientIdentity{ID: "c1", Email: "a@x.com"}, "prod-1")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestPrice_Configuration(t *testing.T) {
	h := newHandler(laptop(t))
	who := domain.ClientIdentity{ID: "c1", Email: "a@x.com"}

	got, err := h.Price(context.Background(), who, "prod-1", "pro")
	require.NoError(t, err)
	assert.Equal(t, domain.PriceSourceConfiguration, got.Price.Source)
	assert.Equal(t, "5200.00", got.Price.Price.String())

	_, err = h.Price(context.Background(), who, "prod-1", "ultra")
	assert.ErrorIs(t, err, domain.ErrConfigurationNotFound)
}
