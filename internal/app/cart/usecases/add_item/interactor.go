package add_item

import (
	"context"

	"go.uber.org/zap"

	contracts "github.com/murkotick/b2b-catalog-service/internal/app/cart/contracts"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/dto"
	catalog "github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/clock"
)

type Request struct {
	Who             catalog.ClientIdentity
	ProductID       string
	ConfigurationID string
	Quantity        int
}

// Interactor prices the product for the caller and adds it to their cart.
type Interactor struct {
	Carts   contracts.CartRepo
	Catalog contracts.CatalogLookup
	Clock   clock.Clock
	Logger  *zap.Logger
}

func NewInteractor(carts contracts.CartRepo, lookup contracts.CatalogLookup, clk clock.Clock, logger *zap.Logger) *Interactor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{Carts: carts, Catalog: lookup, Clock: clk, Logger: logger}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*dto.CartDTO, error) {
	if req.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	item, err := it.Catalog.LookupItem(ctx, req.Who, req.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := it.Carts.Update(ctx, req.Who.ID, func(c *domain.Cart) error {
		return c.AddItem(*item, req.Quantity, req.ConfigurationID, it.Clock.Now())
	})
	if err != nil {
		return nil, err
	}

	it.Logger.Debug("cart item added",
		zap.String("client_id", req.Who.ID),
		zap.String("product_id", req.ProductID),
		zap.Int("quantity", req.Quantity),
	)
	return dto.FromDomain(cart)
}
