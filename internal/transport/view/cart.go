package view

import (
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/domain"
	cartdto "github.com/murkotick/b2b-catalog-service/internal/app/cart/dto"
)

type CartLine struct {
	ProductID       string `json:"productId"`
	ProductName     string `json:"productName"`
	ConfigurationID string `json:"configurationId,omitempty"`
	Quantity        int    `json:"quantity"`
	UnitPrice       *Money `json:"unitPrice"`
	Subtotal        *Money `json:"subtotal"`
	Currency        string `json:"currency"`
	PriceSource     string `json:"priceSource"`
}

type Cart struct {
	Items      []CartLine `json:"items"`
	IsOpen     bool       `json:"isOpen"`
	TotalItems int        `json:"totalItems"`
	TotalPrice *Money     `json:"totalPrice"`
	Currency   string     `json:"currency"`
}

func NewCart(c *cartdto.CartDTO) Cart {
	out := Cart{
		Items:      []CartLine{},
		IsOpen:     c.Open,
		TotalItems: c.TotalItems,
		TotalPrice: NewMoney(c.Total),
		Currency:   c.Currency,
	}
	for _, l := range c.Lines {
		cfg := l.ConfigurationID
		if cfg == domain.NoConfiguration {
			cfg = ""
		}
		out.Items = append(out.Items, CartLine{
			ProductID:       l.ProductID,
			ProductName:     l.ProductName,
			ConfigurationID: cfg,
			Quantity:        l.Quantity,
			UnitPrice:       NewMoney(l.UnitPrice),
			Subtotal:        NewMoney(l.Subtotal),
			Currency:        l.Currency,
			PriceSource:     l.PriceSource,
		})
	}
	return out
}
