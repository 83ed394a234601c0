package repo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/murkotick/b2b-catalog-service/internal/app/cart/domain"
	catalog "github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
)

// cartDocument is the JSON stored under a cart key. Money is kept as an exact
// "numerator/denominator" string.
type cartDocument struct {
	ClientID  string         `json:"client_id"`
	Open      bool           `json:"open"`
	UpdatedAt time.Time      `json:"updated_at"`
	Lines     []lineDocument `json:"lines"`
}

type lineDocument struct {
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	ConfigurationID string `json:"configuration_id"`
	Quantity        int    `json:"quantity"`
	UnitPrice       string `json:"unit_price"`
	Currency        string `json:"currency"`
	PriceSource     string `json:"price_source"`
}

func encodeCart(c *domain.Cart) ([]byte, error) {
	doc := cartDocument{
		ClientID:  c.ClientID(),
		Open:      c.IsOpen(),
		UpdatedAt: c.UpdatedAt().UTC(),
	}
	for _, l := range c.Lines() {
		doc.Lines = append(doc.Lines, lineDocument{
			ProductID:       l.ProductID,
			ProductName:     l.ProductName,
			ConfigurationID: l.ConfigurationID,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice.RatString(),
			Currency:        l.Currency.String(),
			PriceSource:     string(l.PriceSource),
		})
	}
	return json.Marshal(doc)
}

func decodeCart(raw []byte) (*domain.Cart, error) {
	var doc cartDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}

	lines := make([]*domain.Line, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		price, err := catalog.ParseMoney(l.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("decode cart line %s: %w", l.ProductID, err)
		}
		lines = append(lines, &domain.Line{
			ProductID:       l.ProductID,
			ProductName:     l.ProductName,
			ConfigurationID: l.ConfigurationID,
			Quantity:        l.Quantity,
			UnitPrice:       price,
			Currency:        catalog.Currency(l.Currency),
			PriceSource:     catalog.PriceSource(l.PriceSource),
		})
	}
	return domain.ReconstructCart(doc.ClientID, lines, doc.Open, doc.UpdatedAt), nil
}
