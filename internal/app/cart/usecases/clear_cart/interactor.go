package clear_cart

import (
	"context"

	contracts "github.com/murkotick/b2b-catalog-service/internal/app/cart/contracts"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/dto"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/clock"
)

type Interactor struct {
	Carts contracts.CartRepo
	Clock clock.Clock
}

func NewInteractor(carts contracts.CartRepo, clk clock.Clock) *Interactor {
	return &Interactor{Carts: carts, Clock: clk}
}

func (it *Interactor) Execute(ctx context.Context, clientID string) (*dto.CartDTO, error) {
	cart, err := it.Carts.Update(ctx, clientID, func(c *domain.Cart) error {
		c.Clear(it.Clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.FromDomain(cart)
}
