package get_product

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/scan"
)

// SpannerGetProductQuery is a concrete query implementation that reads from Spanner directly.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

// GetProduct reads the product row with every client price record and
// configuration from one snapshot, so the version matches the children.
func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	tx := q.Client.ReadOnlyTransaction()
	defer tx.Close()

	stmt := spanner.Statement{
		SQL:    `SELECT ` + scan.ProductColumns + ` FROM products p WHERE p.product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	}
	products, err := scan.Products(tx.Query(ctx, stmt))
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrProductNotFound
	}

	if err := scan.AttachClientPrices(ctx, tx, products, nil); err != nil {
		return nil, err
	}
	if err := scan.AttachConfigurations(ctx, tx, products); err != nil {
		return nil, err
	}
	return products[0], nil
}
