package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for a product using a map of values.
// expected keys are the column names declared in fields.go
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols, vals := split(values)
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation for a product.
// The values map should NOT include the product_id key; it is always the first column.
func UpdateMutation(productID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColProductID}
	vals := []interface{}{productID}

	c, v := split(values)
	return spanner.Update(TableName, append(cols, c...), append(vals, v...))
}

// DeleteMutation deletes a product row. Interleaved client prices and
// configurations go with it (ON DELETE CASCADE).
func DeleteMutation(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}

// BuildInsertMap prepares the canonical fields for insertion.
// Empty optional strings are stored as NULL.
func BuildInsertMap(productID, sku, name, description, category, brand string, tags []string,
	defaultNum, defaultDen int64, status string, version int64, createdAt, updatedAt time.Time) map[string]interface{} {

	if tags == nil {
		tags = []string{}
	}
	return map[string]interface{}{
		ColProductID:               productID,
		ColSKU:                     NullableString(sku),
		ColName:                    name,
		ColDescription:             NullableString(description),
		ColCategory:                category,
		ColBrand:                   NullableString(brand),
		ColTags:                    tags,
		ColDefaultPriceNumerator:   defaultNum,
		ColDefaultPriceDenominator: defaultDen,
		ColStatus:                  status,
		ColVersion:                 version,
		ColCreatedAt:               createdAt,
		ColUpdatedAt:               updatedAt,
	}
}

// NullableString maps "" to a NULL STRING column value.
func NullableString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}

func split(values map[string]interface{}) ([]string, []interface{}) {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return cols, vals
}
