package domain

import (
	catalog "github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
)

// Item is a product as priced for the cart's client: the resolved client
// price plus the configurations that may override it.
type Item struct {
	ProductID      string
	ProductName    string
	Price          catalog.ResolvedPrice
	Configurations *catalog.ConfigurationSet
}

// unitPrice returns the price of one unit of the item in the given
// configuration. A configuration price is absolute, in the base currency.
func (it Item) unitPrice(configurationID string) (*catalog.Money, catalog.Currency, catalog.PriceSource, error) {
	if configurationID == "" || configurationID == NoConfiguration {
		return it.Price.Price, it.Price.Currency, it.Price.Source, nil
	}
	cfg, ok := it.Configurations.Find(configurationID)
	if !ok {
		return nil, "", "", catalog.ErrConfigurationNotFound
	}
	return cfg.Price(), catalog.BaseCurrency, catalog.PriceSourceConfiguration, nil
}
