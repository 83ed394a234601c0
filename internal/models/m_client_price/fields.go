package m_client_price

// Field constants for the product_client_prices table, interleaved in products.
const (
	TableName = "product_client_prices"

	ColProductID        = "product_id"
	ColRecordID         = "record_id"
	ColPosition         = "position"
	ColClientID         = "client_id"
	ColClientEmail      = "client_email"
	ColPriceNumerator   = "price_numerator"
	ColPriceDenominator = "price_denominator"
	ColCurrency         = "currency"
	ColDiscountPercent  = "discount_percent"
	ColValidFrom        = "valid_from"
	ColValidUntil       = "valid_until"
	ColUpdatedAt        = "updated_at"
)

// Columns is the read order used by queries.
var Columns = []string{
	ColRecordID, ColPosition, ColClientID, ColClientEmail,
	ColPriceNumerator, ColPriceDenominator, ColCurrency, ColDiscountPercent,
	ColValidFrom, ColValidUntil,
}
