package update_quantity

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
	// Quantity of zero or less removes the line.
	Quantity int
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
		c.UpdateQuantity(req.ProductID, req.ConfigurationID, req.Quantity, it.Clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.FromDomain(cart)
}
