package list_products

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/scan"
)

// SpannerListProductsQuery lists products for administrators.
type SpannerListProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListProductsQuery(client *spanner.Client) *SpannerListProductsQuery {
	return &SpannerListProductsQuery{Client: client}
}

func (q *SpannerListProductsQuery) ListProducts(ctx context.Context, filter dto.ProductFilter, limit, offset int) ([]*dto.ProductDTO, error) {
	tx := q.Client.ReadOnlyTransaction()
	defer tx.Close()

	baseSQL := `SELECT ` + scan.ProductColumns + ` FROM products p WHERE TRUE`
	params := map[string]interface{}{}
	if filter.Category != nil {
		baseSQL += " AND p.category = @category"
		params["category"] = *filter.Category
	}
	if filter.ActiveOnly {
		baseSQL += " AND p.status = @status"
		params["status"] = string(domain.ProductStatusActive)
	}
	baseSQL += " ORDER BY p.name ASC, p.product_id ASC LIMIT @limit OFFSET @offset"
	params["limit"] = limit
	params["offset"] = offset

	products, err := scan.Products(tx.Query(ctx, spanner.Statement{SQL: baseSQL, Params: params}))
	if err != nil {
		return nil, err
	}
	if err := scan.AttachClientPrices(ctx, tx, products, nil); err != nil {
		return nil, err
	}
	if err := scan.AttachConfigurations(ctx, tx, products); err != nil {
		return nil, err
	}
	return products, nil
}
