package toggle_cart

import (
	"context"

	contracts "github.com/murkotick/b2b-catalog-service/internal/app/cart/contracts"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/dto"
)

// Interactor flips or closes the cart's display flag.
type Interactor struct {
	Carts contracts.CartRepo
}

func NewInteractor(carts contracts.CartRepo) *Interactor {
	return &Interactor{Carts: carts}
}

// Execute toggles the flag, or forces it closed when closeOnly is set.
func (it *Interactor) Execute(ctx context.Context, clientID string, closeOnly bool) (*dto.CartDTO, error) {
	cart, err := it.Carts.Update(ctx, clientID, func(c *domain.Cart) error {
		if closeOnly {
			c.Close()
		} else {
			c.Toggle()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.FromDomain(cart)
}
