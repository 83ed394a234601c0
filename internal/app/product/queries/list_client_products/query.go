package list_client_products

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/scan"
)

// SpannerListClientProductsQuery lists and searches active products for one client.
type SpannerListClientProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListClientProductsQuery(client *spanner.Client) *SpannerListClientProductsQuery {
	return &SpannerListClientProductsQuery{Client: client}
}

func (q *SpannerListClientProductsQuery) ListClientProducts(ctx context.Context, who domain.ClientIdentity, filter dto.ClientProductFilter, limit, offset int) ([]*dto.ProductDTO, error) {
	tx := q.Client.ReadOnlyTransaction()
	defer tx.Close()

	stmt := buildStatement(who, filter, limit, offset)
	products, err := scan.Products(tx.Query(ctx, stmt))
	if err != nil {
		return nil, err
	}

	own := &scan.ClientPriceFilter{ClientID: who.ID, ClientEmail: who.Email}
	if err := scan.AttachClientPrices(ctx, tx, products, own); err != nil {
		return nil, err
	}
	if err := scan.AttachConfigurations(ctx, tx, products); err != nil {
		return nil, err
	}
	return products, nil
}

func buildStatement(who domain.ClientIdentity, filter dto.ClientProductFilter, limit, offset int) spanner.Statement {
	sql := `SELECT ` + scan.ProductColumns + ` FROM products p WHERE p.status = @status`
	params := map[string]interface{}{"status": string(domain.ProductStatusActive)}

	if filter.Category != nil {
		sql += " AND p.category = @category"
		params["category"] = *filter.Category
	}
	if filter.Query != nil && *filter.Query != "" {
		sql += ` AND (LOWER(p.name) LIKE @q
			OR LOWER(IFNULL(p.description, '')) LIKE @q
			OR LOWER(IFNULL(p.brand, '')) LIKE @q
			OR EXISTS (SELECT 1 FROM UNNEST(p.tags) AS tag WHERE LOWER(tag) LIKE @q))`
		params["q"] = scan.LikePattern(*filter.Query)
	}
	if filter.NegotiatedOnly {
		sql += ` AND EXISTS (SELECT 1 FROM product_client_prices cp
			WHERE cp.product_id = p.product_id
			AND (cp.client_id = @client_id OR cp.client_email = @client_email))`
		params["client_id"] = who.ID
		params["client_email"] = who.Email
	}

	sql += " ORDER BY p.name ASC, p.product_id ASC LIMIT @limit OFFSET @offset"
	params["limit"] = limit
	params["offset"] = offset
	return spanner.Statement{SQL: sql, Params: params}
}
