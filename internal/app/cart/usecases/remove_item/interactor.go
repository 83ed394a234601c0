package remove_item

import (
	"context"

	contracts "github.com/murkotick/b2b-catalog-service/internal/app/cart/contracts"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/dto"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/clock"
)

type Request struct {
	ClientID        string
	ProductID       string
	ConfigurationID string
	// AllConfigurations drops every line of the product.
	AllConfigurations bool
}

type Interactor struct {
	Carts contracts.CartRepo
	Clock clock.Clock
}

func NewInteractor(carts contracts.CartRepo, clk clock.Clock) *Interactor {
	return &Interactor{Carts: carts, Clock: clk}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.CartDTO, error) {
	cart, err := it.Carts.Update(ctx, req.ClientID, func(c *domain.Cart) error {
		if req.AllConfigurations {
			c.RemoveProduct(req.ProductID, it.Clock.Now())
			return nil
		}
		c.RemoveItem(req.ProductID, req.ConfigurationID, it.Clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.FromDomain(cart)
}
