// Package scan maps Spanner rows of the catalog tables onto read DTOs.
package scan

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/utils"
	"github.com/murkotick/b2b-catalog-service/internal/models/m_client_price"
	"github.com/murkotick/b2b-catalog-service/internal/models/m_configuration"
	"github.com/murkotick/b2b-catalog-service/internal/models/m_product"
)

// Querier is satisfied by single-use and read-only Spanner transactions.
type Querier interface {
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

// ProductColumns is the select list understood by Product, prefixed by alias "p".
var ProductColumns = "p." + strings.Join([]string{
	m_product.ColProductID, m_product.ColSKU, m_product.ColName, m_product.ColDescription,
	m_product.ColCategory, m_product.ColBrand, m_product.ColTags,
	m_product.ColDefaultPriceNumerator, m_product.ColDefaultPriceDenominator,
	m_product.ColStatus, m_product.ColVersion, m_product.ColCreatedAt, m_product.ColUpdatedAt,
}, ", p.")

// Product scans a row selected with ProductColumns.
func Product(row *spanner.Row) (*dto.ProductDTO, error) {
	var (
		id, name, category, status string
		sku, description, brand    spanner.NullString
		tags                       []spanner.NullString
		num, den, version          int64
		createdAt, updatedAt       time.Time
	)
	if err := row.Columns(&id, &sku, &name, &description, &category, &brand, &tags,
		&num, &den, &status, &version, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	out := &dto.ProductDTO{
		ProductID:       id,
		SKU:             sku.StringVal,
		Name:            name,
		Description:     description.StringVal,
		Category:        category,
		Brand:           brand.StringVal,
		DefaultPriceNum: num,
		DefaultPriceDen: den,
		Status:          status,
		Version:         version,
	}
	for _, t := range tags {
		if t.Valid {
			out.Tags = append(out.Tags, t.StringVal)
		}
	}
	c := utils.FormatTime(createdAt)
	u := utils.FormatTime(updatedAt)
	out.CreatedAt, out.UpdatedAt = &c, &u
	return out, nil
}

// Products drains iter into DTOs.
func Products(iter *spanner.RowIterator) ([]*dto.ProductDTO, error) {
	defer iter.Stop()
	var out []*dto.ProductDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		p, err := Product(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
}

// ClientPriceFilter limits AttachClientPrices to one client's records.
type ClientPriceFilter struct {
	ClientID    string
	ClientEmail string
}

// AttachClientPrices loads client price rows for products, in position order.
// A nil filter loads every record.
func AttachClientPrices(ctx context.Context, q Querier, products []*dto.ProductDTO, filter *ClientPriceFilter) error {
	if len(products) == 0 {
		return nil
	}
	byID, ids := index(products)

	sql := `SELECT ` + m_client_price.ColProductID + `, ` + strings.Join(m_client_price.Columns, ", ") + `
		FROM ` + m_client_price.TableName + `
		WHERE product_id IN UNNEST(@ids)`
	params := map[string]interface{}{"ids": ids}
	if filter != nil {
		sql += " AND (client_id = @client_id OR client_email = @client_email)"
		params["client_id"] = filter.ClientID
		params["client_email"] = filter.ClientEmail
	}
	sql += " ORDER BY product_id, position, record_id"

	iter := q.Query(ctx, spanner.Statement{SQL: sql, Params: params})
	defer iter.Stop()
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}

		var (
			productID, recordID, clientID, clientEmail, currency string
			position, num, den, discount                         int64
			validFrom                                            time.Time
			validUntil                                           spanner.NullTime
		)
		if err := row.Columns(&productID, &recordID, &position, &clientID, &clientEmail,
			&num, &den, &currency, &discount, &validFrom, &validUntil); err != nil {
			return err
		}

		from := utils.FormatTime(validFrom)
		cp := &dto.ClientPriceDTO{
			RecordID:        recordID,
			Position:        position,
			ClientID:        clientID,
			ClientEmail:     clientEmail,
			PriceNum:        num,
			PriceDen:        den,
			Currency:        currency,
			DiscountPercent: discount,
			ValidFrom:       &from,
		}
		if validUntil.Valid {
			until := utils.FormatTime(validUntil.Time)
			cp.ValidUntil = &until
		}
		if p, ok := byID[productID]; ok {
			p.ClientPrices = append(p.ClientPrices, cp)
		}
	}
}

// AttachConfigurations loads configuration rows for products, in position order.
func AttachConfigurations(ctx context.Context, q Querier, products []*dto.ProductDTO) error {
	if len(products) == 0 {
		return nil
	}
	byID, ids := index(products)

	stmt := spanner.Statement{
		SQL: `SELECT ` + m_configuration.ColProductID + `, ` + strings.Join(m_configuration.Columns, ", ") + `
			FROM ` + m_configuration.TableName + `
			WHERE product_id IN UNNEST(@ids)
			ORDER BY product_id, position`,
		Params: map[string]interface{}{"ids": ids},
	}
	iter := q.Query(ctx, stmt)
	defer iter.Stop()
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}

		var (
			productID, configurationID, name string
			description                      spanner.NullString
			position, num, den               int64
			specsCol                         spanner.NullJSON
			isDefault                        bool
		)
		if err := row.Columns(&productID, &configurationID, &position, &name, &description,
			&num, &den, &specsCol, &isDefault); err != nil {
			return err
		}
		specs, err := m_configuration.DecodeSpecs(specsCol)
		if err != nil {
			return err
		}
		if p, ok := byID[productID]; ok {
			p.Configurations = append(p.Configurations, &dto.ConfigurationDTO{
				ConfigurationID: configurationID,
				Position:        position,
				Name:            name,
				Description:     description.StringVal,
				PriceNum:        num,
				PriceDen:        den,
				Specs:           specs,
				IsDefault:       isDefault,
			})
		}
	}
}

func index(products []*dto.ProductDTO) (map[string]*dto.ProductDTO, []string) {
	byID := make(map[string]*dto.ProductDTO, len(products))
	ids := make([]string, 0, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
		ids = append(ids, p.ProductID)
	}
	return byID, ids
}

// LikePattern turns free text into a case-insensitive LIKE pattern.
func LikePattern(text string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(strings.TrimSpace(text))) + "%"
}
