package e2e

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/b2b-catalog-service/internal/app/cart/usecases/add_item"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/get_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/activate_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/create_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/deactivate_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/delete_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/set_client_price"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/update_product"
)

var buyer = domain.ClientIdentity{ID: "client-1", Email: "buyer@acme.com"}

func createLaptop(ctx context.Context, t *testing.T) string {
	t.Helper()
	id, err := createUC.Execute(ctx, create_product.Request{
		SKU:          "TP-X1",
		Name:         "ThinkPad X1",
		Category:     "laptops",
		Brand:        "Lenovo",
		Tags:         []string{"business"},
		DefaultPrice: domain.NewMoney(4000, 1),
		Configurations: []shared.ConfigurationInput{
			{ID: "base", Name: "16GB / 512GB", Price: domain.NewMoney(4000, 1), IsDefault: true},
			{ID: "pro", Name: "32GB / 1TB", Price: domain.NewMoney(5200, 1), Specs: map[string]string{"ram": "32GB"}},
		},
	})
	require.NoError(t, err)
	return id
}

func TestProductCreationFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productID := createLaptop(ctx, t)

	prod, err := get_product.NewHandler(readModel).Execute(ctx, productID)
	require.NoError(t, err)

	assert.Equal(t, "ThinkPad X1", prod.Name)
	assert.Equal(t, "active", prod.Status)
	assert.Equal(t, int64(4000), prod.DefaultPriceNum)
	assert.Equal(t, []string{"business"}, prod.Tags)
	require.Len(t, prod.Configurations, 2)
	assert.Equal(t, "base", prod.Configurations[0].ConfigurationID)
	assert.Equal(t, map[string]string{"ram": "32GB"}, prod.Configurations[1].Specs)
	assert.Empty(t, prod.ClientPrices)

	events := mustFetchOutboxEvents(ctx, t, spClient, productID)
	require.NotEmpty(t, events)
	assert.Contains(t, eventTypes(events), "product.created")
	for _, e := range events {
		assert.Equal(t, "pending", e.Status)
	}
}

func TestNegotiatedPriceFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productID := createLaptop(ctx, t)

	res, err := setPriceUC.Execute(ctx, set_client_price.Request{
		ProductID:          productID,
		ClientID:           buyer.ID,
		ClientEmail:        buyer.Email,
		Price:              domain.NewMoney(3200, 1),
		DiscountPercentage: 15,
	})
	require.NoError(t, err)
	assert.False(t, res.Replaced)

	got, err := clientProduct.Execute(ctx, buyer, productID)
	require.NoError(t, err)
	assert.Equal(t, "2720.00", got.Price.Price.String())
	assert.Equal(t, "3200.00", got.Price.OriginalPrice.String())
	assert.Equal(t, domain.PriceSourceClient, got.Price.Source)
	require.Len(t, got.Product.ClientPrices, 1)

	// the email alone identifies the client
	sameEmail := domain.ClientIdentity{ID: "other-id", Email: buyer.Email}
	got, err = clientProduct.Execute(ctx, sameEmail, productID)
	require.NoError(t, err)
	assert.Equal(t, "2720.00", got.Price.Price.String())

	stranger := domain.ClientIdentity{ID: "client-9", Email: "nobody@x.com"}
	got, err = clientProduct.Execute(ctx, stranger, productID)
	require.NoError(t, err)
	assert.Equal(t, "4000.00", got.Price.Price.String())
	assert.Equal(t, domain.PriceSourceDefault, got.Price.Source)
	assert.Empty(t, got.Product.ClientPrices)

	// upsert again replaces the record in place
	res, err = setPriceUC.Execute(ctx, set_client_price.Request{
		ProductID:   productID,
		ClientID:    buyer.ID,
		ClientEmail: buyer.Email,
		Price:       domain.NewMoney(3000, 1),
	})
	require.NoError(t, err)
	assert.True(t, res.Replaced)

	prod, err := get_product.NewHandler(readModel).Execute(ctx, productID)
	require.NoError(t, err)
	require.Len(t, prod.ClientPrices, 1)
	assert.Equal(t, int64(3000), prod.ClientPrices[0].PriceNum)
	assert.Equal(t, int64(3), prod.Version)

	events := mustFetchOutboxEvents(ctx, t, spClient, productID)
	set := lastOfType(events, "client_price.set")
	require.NotNil(t, set)
	assert.Equal(t, "product", set.AggregateType)
	assert.Equal(t, buyer.ID, set.Payload["client_id"])
	assert.Equal(t, res.Record.RecordID, set.Payload["record_id"])
}

func TestConfigurationPriceAndCart(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productID := createLaptop(ctx, t)
	_, err := setPriceUC.Execute(ctx, set_client_price.Request{
		ProductID: productID, ClientID: buyer.ID, ClientEmail: buyer.Email,
		Price: domain.NewMoney(3200, 1), DiscountPercentage: 15,
	})
	require.NoError(t, err)

	priced, err := clientProduct.Price(ctx, buyer, productID, "pro")
	require.NoError(t, err)
	assert.Equal(t, "5200.00", priced.Price.Price.String())
	assert.Equal(t, domain.PriceSourceConfiguration, priced.Price.Source)

	cart, err := addItemUC.Execute(ctx, add_item.Request{Who: buyer, ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "5440.00", cart.Total.String())

	cart, err = addItemUC.Execute(ctx, add_item.Request{Who: buyer, ProductID: productID, ConfigurationID: "pro", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "10640.00", cart.Total.String())
	assert.Equal(t, 3, cart.TotalItems)
	assert.Len(t, cart.Lines, 2)
}

func TestConcurrentClientPriceUpserts(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	productID := createLaptop(ctx, t)

	const writers = 5
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := setPriceUC.Execute(ctx, set_client_price.Request{
				ProductID:   productID,
				ClientID:    fmt.Sprintf("client-%d", i),
				ClientEmail: fmt.Sprintf("c%d@x.com", i),
				Price:       domain.NewMoney(int64(3000+i), 1),
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	prod, err := get_product.NewHandler(readModel).Execute(ctx, productID)
	require.NoError(t, err)
	// no upsert overwrote another
	assert.Len(t, prod.ClientPrices, writers)
	assert.Equal(t, int64(1+writers), prod.Version)

	for i := 0; i < writers; i++ {
		who := domain.ClientIdentity{ID: fmt.Sprintf("client-%d", i), Email: fmt.Sprintf("c%d@x.com", i)}
		got, err := clientProduct.Execute(ctx, who, productID)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%d.00", 3000+i), got.Price.Price.String())
	}
}

func TestLifecycleFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productID := createLaptop(ctx, t)

	newName := "ThinkPad X1 Carbon"
	require.NoError(t, updateUC.Execute(ctx, update_product.Request{
		ProductID:    productID,
		Name:         &newName,
		DefaultPrice: domain.NewMoney(4200, 1),
	}))

	require.NoError(t, deactivateUC.Execute(ctx, deactivate_product.Request{ProductID: productID}))
	_, err := clientProduct.Execute(ctx, buyer, productID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	err = deactivateUC.Execute(ctx, deactivate_product.Request{ProductID: productID})
	assert.ErrorIs(t, err, domain.ErrProductAlreadyInactive)

	require.NoError(t, activateUC.Execute(ctx, activate_product.Request{ProductID: productID}))
	got, err := clientProduct.Execute(ctx, buyer, productID)
	require.NoError(t, err)
	assert.Equal(t, newName, got.Product.Name)
	assert.Equal(t, "4200.00", got.Price.Price.String())

	require.NoError(t, deleteUC.Execute(ctx, delete_product.Request{ProductID: productID}))
	_, err = get_product.NewHandler(readModel).Execute(ctx, productID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	// all events share the fake clock's timestamp, so only membership is checked
	assert.Subset(t, eventTypes(mustFetchOutboxEvents(ctx, t, spClient, productID)), []string{
		"product.created",
		"product.updated",
		"product.default_price_changed",
		"product.deactivated",
		"product.activated",
		"product.deleted",
	})
}

func TestClientListingFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	category := fmt.Sprintf("cat-%d", time.Now().UnixNano())
	ids := make([]string, 0, 2)
	for _, name := range []string{"Alpha Dock", "Beta Hub"} {
		id, err := createUC.Execute(ctx, create_product.Request{Name: name, Category: category, DefaultPrice: domain.NewMoney(100, 1)})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	_, err := setPriceUC.Execute(ctx, set_client_price.Request{
		ProductID: ids[1], ClientID: buyer.ID, ClientEmail: buyer.Email, Price: domain.NewMoney(80, 1),
	})
	require.NoError(t, err)

	all, err := clientList.Execute(ctx, buyer, dto.ClientProductFilter{Category: &category}, 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alpha Dock", all[0].Product.Name)
	assert.Equal(t, "80.00", all[1].Price.Price.String())

	negotiated, err := clientList.Execute(ctx, buyer, dto.ClientProductFilter{Category: &category, NegotiatedOnly: true}, 10, 0)
	require.NoError(t, err)
	require.Len(t, negotiated, 1)
	assert.Equal(t, ids[1], negotiated[0].Product.ProductID)

	q := "dock"
	found, err := clientList.Execute(ctx, buyer, dto.ClientProductFilter{Category: &category, Query: &q}, 10, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, ids[0], found[0].Product.ProductID)

	require.NoError(t, deactivateUC.Execute(ctx, deactivate_product.Request{ProductID: ids[0]}))
	all, err = clientList.Execute(ctx, buyer, dto.ClientProductFilter{Category: &category}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
