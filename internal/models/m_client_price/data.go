package m_client_price

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildUpsertMap prepares every column of a record row. A full row is always
// written so that a replacement never keeps stale optional values.
func BuildUpsertMap(productID, recordID string, position int64, clientID, clientEmail string,
	priceNum, priceDen int64, currency string, discountPercent int64,
	validFrom time.Time, validUntil *time.Time, updatedAt time.Time) map[string]interface{} {

	until := spanner.NullTime{}
	if validUntil != nil {
		until = spanner.NullTime{Time: validUntil.UTC(), Valid: true}
	}
	return map[string]interface{}{
		ColProductID:        productID,
		ColRecordID:         recordID,
		ColPosition:         position,
		ColClientID:         clientID,
		ColClientEmail:      clientEmail,
		ColPriceNumerator:   priceNum,
		ColPriceDenominator: priceDen,
		ColCurrency:         currency,
		ColDiscountPercent:  discountPercent,
		ColValidFrom:        validFrom.UTC(),
		ColValidUntil:       until,
		ColUpdatedAt:        updatedAt.UTC(),
	}
}

// UpsertMutation builds an InsertOrUpdate keyed by (product_id, record_id).
func UpsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.InsertOrUpdate(TableName, cols, vals)
}

func DeleteMutation(productID, recordID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID, recordID})
}

// DeleteAllMutation removes every record row of a product.
func DeleteAllMutation(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID}.AsPrefix())
}
