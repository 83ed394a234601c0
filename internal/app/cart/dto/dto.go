package dto

import (
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/domain"
	catalog "github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
)

type LineDTO struct {
	ProductID       string
	ProductName     string
	ConfigurationID string
	Quantity        int
	UnitPrice       *catalog.Money
	Subtotal        *catalog.Money
	Currency        string
	PriceSource     string
}

// CartDTO is the valued cart returned by every cart operation.
type CartDTO struct {
	ClientID   string
	Open       bool
	Lines      []LineDTO
	TotalItems int
	Total      *catalog.Money
	Currency   string
}

// FromDomain values c. It fails with domain.ErrCurrencyMismatch when the
// lines cannot be summed.
func FromDomain(c *domain.Cart) (*CartDTO, error) {
	total, currency, err := c.Total()
	if err != nil {
		return nil, err
	}

	out := &CartDTO{
		ClientID:   c.ClientID(),
		Open:       c.IsOpen(),
		TotalItems: c.TotalItems(),
		Total:      total,
		Currency:   currency.String(),
	}
	for _, l := range c.Lines() {
		out.Lines = append(out.Lines, LineDTO{
			ProductID:       l.ProductID,
			ProductName:     l.ProductName,
			ConfigurationID: l.ConfigurationID,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			Subtotal:        l.Subtotal(),
			Currency:        l.Currency.String(),
			PriceSource:     string(l.PriceSource),
		})
	}
	return out, nil
}
