package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/get_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/list_client_products"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/list_products"
)

// SpannerReadModel is an infrastructure adapter that satisfies contracts.ReadModel.
// It composes the individual query implementations.
type SpannerReadModel struct {
	getQ        *get_product.SpannerGetProductQuery
	listQ       *list_products.SpannerListProductsQuery
	listClientQ *list_client_products.SpannerListClientProductsQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		getQ:        get_product.NewSpannerGetProductQuery(client),
		listQ:       list_products.NewSpannerListProductsQuery(client),
		listClientQ: list_client_products.NewSpannerListClientProductsQuery(client),
	}
}

func (rm *SpannerReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return rm.getQ.GetProduct(ctx, productID)
}

func (rm *SpannerReadModel) ListProducts(ctx context.Context, filter dto.ProductFilter, limit, offset int) ([]*dto.ProductDTO, error) {
	return rm.listQ.ListProducts(ctx, filter, limit, offset)
}

func (rm *SpannerReadModel) ListClientProducts(ctx context.Context, who domain.ClientIdentity, filter dto.ClientProductFilter, limit, offset int) ([]*dto.ProductDTO, error) {
	return rm.listClientQ.ListClientProducts(ctx, who, filter, limit, offset)
}
