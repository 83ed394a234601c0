package view

import (
	"time"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
)

type ClientPrice struct {
	RecordID           string  `json:"recordId"`
	ClientID           string  `json:"clientId"`
	ClientEmail        string  `json:"clientEmail"`
	Price              *Money  `json:"price"`
	Currency           string  `json:"currency"`
	DiscountPercentage int64   `json:"discountPercentage"`
	ValidFrom          *string `json:"validFrom,omitempty"`
	ValidUntil         *string `json:"validUntil,omitempty"`
}

type Configuration struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       *Money            `json:"price"`
	Specs       map[string]string `json:"specs,omitempty"`
	IsDefault   bool              `json:"isDefault"`
}

// Product is the admin view of a stored product.
type Product struct {
	ID             string          `json:"id"`
	SKU            string          `json:"sku,omitempty"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category"`
	Brand          string          `json:"brand,omitempty"`
	Tags           []string        `json:"tags"`
	DefaultPrice   *Money          `json:"defaultPrice"`
	Status         string          `json:"status"`
	Version        int64           `json:"version"`
	CreatedAt      *string         `json:"createdAt,omitempty"`
	UpdatedAt      *string         `json:"updatedAt,omitempty"`
	ClientPrices   []ClientPrice   `json:"clientPrices"`
	Configurations []Configuration `json:"configurations"`
}

// Price is a resolved price. OriginalPrice is present only when a client's
// negotiated record applied.
type Price struct {
	Price              *Money `json:"price"`
	OriginalPrice      *Money `json:"originalPrice,omitempty"`
	DiscountPercentage int    `json:"discountPercentage"`
	Currency           string `json:"currency"`
	Source             string `json:"source"`
	Discounted         bool   `json:"discounted"`
}

// ClientProduct is a product as the calling client sees it.
type ClientProduct struct {
	Product
	ClientPrice Price `json:"clientPrice"`
}

func NewProduct(d *dto.ProductDTO) Product {
	out := Product{
		ID:             d.ProductID,
		SKU:            d.SKU,
		Name:           d.Name,
		Description:    d.Description,
		Category:       d.Category,
		Brand:          d.Brand,
		Tags:           append([]string{}, d.Tags...),
		DefaultPrice:   NewMoney(domain.NewMoney(d.DefaultPriceNum, d.DefaultPriceDen)),
		Status:         d.Status,
		Version:        d.Version,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		ClientPrices:   []ClientPrice{},
		Configurations: []Configuration{},
	}
	for _, cp := range d.ClientPrices {
		out.ClientPrices = append(out.ClientPrices, NewClientPrice(cp))
	}
	for _, c := range d.Configurations {
		out.Configurations = append(out.Configurations, Configuration{
			ID:          c.ConfigurationID,
			Name:        c.Name,
			Description: c.Description,
			Price:       NewMoney(domain.NewMoney(c.PriceNum, c.PriceDen)),
			Specs:       c.Specs,
			IsDefault:   c.IsDefault,
		})
	}
	return out
}

func NewClientPrice(cp *dto.ClientPriceDTO) ClientPrice {
	return ClientPrice{
		RecordID:           cp.RecordID,
		ClientID:           cp.ClientID,
		ClientEmail:        cp.ClientEmail,
		Price:              NewMoney(domain.NewMoney(cp.PriceNum, cp.PriceDen)),
		Currency:           cp.Currency,
		DiscountPercentage: cp.DiscountPercent,
		ValidFrom:          cp.ValidFrom,
		ValidUntil:         cp.ValidUntil,
	}
}

func NewPrice(rp domain.ResolvedPrice) Price {
	return Price{
		Price:              NewMoney(rp.Price),
		OriginalPrice:      NewMoney(rp.OriginalPrice),
		DiscountPercentage: rp.Discount,
		Currency:           rp.Currency.String(),
		Source:             string(rp.Source),
		Discounted:         rp.IsDiscounted(),
	}
}

func NewClientProduct(cp *dto.ClientProductDTO) ClientProduct {
	return ClientProduct{Product: NewProduct(cp.Product), ClientPrice: NewPrice(cp.Price)}
}

// ClientPriceInput is one negotiated price in an admin request.
type ClientPriceInput struct {
	ClientID           string      `json:"clientId"`
	ClientEmail        string      `json:"clientEmail"`
	Price              *MoneyInput `json:"price"`
	Currency           string      `json:"currency"`
	DiscountPercentage int         `json:"discountPercentage"`
	ValidFrom          *time.Time  `json:"validFrom"`
	ValidUntil         *time.Time  `json:"validUntil"`
}

func (in ClientPriceInput) Terms() domain.PriceTerms {
	return domain.PriceTerms{
		Price:              in.Price.Value(),
		Currency:           domain.Currency(in.Currency),
		DiscountPercentage: in.DiscountPercentage,
		ValidFrom:          in.ValidFrom,
		ValidUntil:         in.ValidUntil,
	}
}

type ConfigurationInput struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       *MoneyInput       `json:"price"`
	Specs       map[string]string `json:"specs"`
	IsDefault   bool              `json:"isDefault"`
}
