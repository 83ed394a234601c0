package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID               = "product_id"
	ColSKU                     = "sku"
	ColName                    = "name"
	ColDescription             = "description"
	ColCategory                = "category"
	ColBrand                   = "brand"
	ColTags                    = "tags"
	ColDefaultPriceNumerator   = "default_price_numerator"
	ColDefaultPriceDenominator = "default_price_denominator"
	ColStatus                  = "status"
	ColVersion                 = "version"
	ColCreatedAt               = "created_at"
	ColUpdatedAt               = "updated_at"
)
