package services

import (
	"time"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
)

// PricingResolver is a domain service that decides what a client pays for a product.
// It holds no state and is safe for concurrent use.
type PricingResolver struct{}

func NewPricingResolver() *PricingResolver {
	return &PricingResolver{}
}

// Resolve returns the price who pays for p at now.
//
// The first client price record in list order whose client id or email matches
// applies, provided it is effective at now. Otherwise the default price applies
// in the base currency. Amounts are exact; callers round for display.
func (r *PricingResolver) Resolve(p *domain.Product, who domain.ClientIdentity, now time.Time) domain.ResolvedPrice {
	record, ok := p.ClientPriceFor(who)
	if !ok || !record.IsEffectiveAt(now) {
		return defaultPrice(p)
	}

	return domain.ResolvedPrice{
		Price:         record.DiscountedPrice(),
		OriginalPrice: record.Price(),
		Discount:      record.Discount().Percent(),
		Currency:      record.Currency(),
		Source:        domain.PriceSourceClient,
	}
}

// ResolveConfiguration prices a specific configuration of p.
//
// An empty configurationID resolves the product itself. A configuration's price
// is absolute and in the base currency; client records and discounts do not apply.
func (r *PricingResolver) ResolveConfiguration(p *domain.Product, who domain.ClientIdentity, configurationID string, now time.Time) (domain.ResolvedPrice, error) {
	if configurationID == "" {
		return r.Resolve(p, who, now), nil
	}

	cfg, ok := p.Configurations().Find(configurationID)
	if !ok {
		return domain.ResolvedPrice{}, domain.ErrConfigurationNotFound
	}

	return domain.ResolvedPrice{
		Price:    cfg.Price(),
		Currency: domain.BaseCurrency,
		Source:   domain.PriceSourceConfiguration,
	}, nil
}

func defaultPrice(p *domain.Product) domain.ResolvedPrice {
	return domain.ResolvedPrice{
		Price:    p.DefaultPrice(),
		Currency: domain.BaseCurrency,
		Source:   domain.PriceSourceDefault,
	}
}
