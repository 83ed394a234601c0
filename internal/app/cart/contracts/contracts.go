package contracts

import (
	"context"

	"github.com/murkotick/b2b-catalog-service/internal/app/cart/domain"
	catalog "github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
)

// CartRepo stores one cart per client. Get returns an empty cart for a
// client that has none.
type CartRepo interface {
	Get(ctx context.Context, clientID string) (*domain.Cart, error)

	// Update loads the cart, applies fn and saves the result atomically with
	// respect to other updates of the same cart. An error from fn aborts the
	// save and is returned unchanged.
	Update(ctx context.Context, clientID string, fn func(*domain.Cart) error) (*domain.Cart, error)
}

// CatalogLookup prices a product for a client. Unknown or inactive products
// return catalog.ErrProductNotFound.
type CatalogLookup interface {
	LookupItem(ctx context.Context, who catalog.ClientIdentity, productID string) (*domain.Item, error)
}
