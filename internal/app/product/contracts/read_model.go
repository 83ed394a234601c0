package contracts

import (
	"context"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
)

// ReadModel is the query side of the catalog. GetProduct returns
// domain.ErrProductNotFound for unknown ids.
type ReadModel interface {
	GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error)
	ListProducts(ctx context.Context, filter dto.ProductFilter, limit, offset int) ([]*dto.ProductDTO, error)

	// ListClientProducts lists active products with only who's own client price
	// records attached.
	ListClientProducts(ctx context.Context, who domain.ClientIdentity, filter dto.ClientProductFilter, limit, offset int) ([]*dto.ProductDTO, error)
}
