package domain

import (
	catalog "github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
)

// NoConfiguration is the configuration part of the key of a line added
// without a configuration.
const NoConfiguration = catalog.NoConfigurationID

// LineKey identifies a cart line. The same product in two configurations
// makes two lines.
type LineKey struct {
	ProductID       string
	ConfigurationID string
}

func NewLineKey(productID, configurationID string) LineKey {
	if configurationID == "" {
		configurationID = NoConfiguration
	}
	return LineKey{ProductID: productID, ConfigurationID: configurationID}
}

// Line is one product (in one configuration) with its quantity and the unit
// price the client was quoted when the line was last priced.
type Line struct {
	ProductID       string
	ProductName     string
	ConfigurationID string
	Quantity        int
	UnitPrice       *catalog.Money
	Currency        catalog.Currency
	PriceSource     catalog.PriceSource
}

func (l *Line) Key() LineKey {
	return NewLineKey(l.ProductID, l.ConfigurationID)
}

// Subtotal is the unit price times the quantity.
func (l *Line) Subtotal() *catalog.Money {
	return l.UnitPrice.MultiplyByQuantity(l.Quantity)
}

func (l *Line) clone() *Line {
	c := *l
	return &c
}
