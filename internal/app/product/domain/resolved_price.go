package domain

// PriceSource tells which branch of price resolution produced a ResolvedPrice.
type PriceSource string

const (
	PriceSourceDefault       PriceSource = "default"
	PriceSourceClient        PriceSource = "client"
	PriceSourceConfiguration PriceSource = "configuration"
)

// ResolvedPrice is the price a particular client pays for a product right now.
// It is computed per request and never stored.
type ResolvedPrice struct {
	Price *Money
	// OriginalPrice is the negotiated price before discount; nil unless a client record applied.
	OriginalPrice *Money
	Discount      int
	Currency      Currency
	Source        PriceSource
}

func (rp ResolvedPrice) IsDiscounted() bool {
	return rp.OriginalPrice != nil && rp.Discount > 0
}
