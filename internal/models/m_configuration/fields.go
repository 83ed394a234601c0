package m_configuration

// Field constants for the product_configurations table, interleaved in products.
const (
	TableName = "product_configurations"

	ColProductID        = "product_id"
	ColConfigurationID  = "configuration_id"
	ColPosition         = "position"
	ColName             = "name"
	ColDescription      = "description"
	ColPriceNumerator   = "price_numerator"
	ColPriceDenominator = "price_denominator"
	ColSpecs            = "specs"
	ColIsDefault        = "is_default"
)

var Columns = []string{
	ColConfigurationID, ColPosition, ColName, ColDescription,
	ColPriceNumerator, ColPriceDenominator, ColSpecs, ColIsDefault,
}
