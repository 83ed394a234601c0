// Package adapters connects the cart to the product catalog's client read side.
package adapters

import (
	"context"

	"github.com/murkotick/b2b-catalog-service/internal/app/cart/domain"
	catalog "github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
)

// ClientProductReader is the part of get_client_product.Handler the cart needs.
type ClientProductReader interface {
	Execute(ctx context.Context, who catalog.ClientIdentity, productID string) (*dto.ClientProductDTO, error)
}

// CatalogLookup turns a client product view into a cart Item.
type CatalogLookup struct {
	reader ClientProductReader
}

func NewCatalogLookup(reader ClientProductReader) *CatalogLookup {
	return &CatalogLookup{reader: reader}
}

func (l *CatalogLookup) LookupItem(ctx context.Context, who catalog.ClientIdentity, productID string) (*domain.Item, error) {
	view, err := l.reader.Execute(ctx, who, productID)
	if err != nil {
		return nil, err
	}
	product, err := view.Product.ToDomain()
	if err != nil {
		return nil, err
	}

	return &domain.Item{
		ProductID:      product.ID(),
		ProductName:    product.Name(),
		Price:          view.Price,
		Configurations: product.Configurations(),
	}, nil
}
