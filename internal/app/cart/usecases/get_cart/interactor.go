package get_cart

import (
	"context"
	"errors"

	"go.uber.org/zap"

	contracts "github.com/murkotick/b2b-catalog-service/internal/app/cart/contracts"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/dto"
	catalog "github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/clock"
)

// Interactor returns the caller's cart valued at current prices. Lines are
// repriced against the catalog on every read; lines of products that are
// gone or inactive are dropped.
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

func (it *Interactor) Execute(ctx context.Context, who catalog.ClientIdentity) (*dto.CartDTO, error) {
	current, err := it.Carts.Get(ctx, who.ID)
	if err != nil {
		return nil, err
	}
	if current.IsEmpty() {
		return dto.FromDomain(current)
	}

	items, missing, err := it.lookup(ctx, who, current)
	if err != nil {
		return nil, err
	}

	cart, err := it.Carts.Update(ctx, who.ID, func(c *domain.Cart) error {
		now := it.Clock.Now()
		for _, id := range missing {
			c.RemoveProduct(id, now)
		}
		for _, item := range items {
			if dropped := c.Reprice(*item, now); dropped > 0 {
				it.Logger.Warn("cart lines dropped: configuration removed",
					zap.String("client_id", who.ID),
					zap.String("product_id", item.ProductID),
					zap.Int("lines", dropped),
				)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.FromDomain(cart)
}

// lookup prices every distinct product in c. Products the catalog no longer
// serves are returned in missing.
func (it *Interactor) lookup(ctx context.Context, who catalog.ClientIdentity, c *domain.Cart) ([]*domain.Item, []string, error) {
	seen := map[string]bool{}
	var (
		items   []*domain.Item
		missing []string
	)
	for _, l := range c.Lines() {
		if seen[l.ProductID] {
			continue
		}
		seen[l.ProductID] = true

		item, err := it.Catalog.LookupItem(ctx, who, l.ProductID)
		if errors.Is(err, catalog.ErrProductNotFound) {
			it.Logger.Warn("cart lines dropped: product unavailable",
				zap.String("client_id", who.ID),
				zap.String("product_id", l.ProductID),
			)
			missing = append(missing, l.ProductID)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}
	return items, missing, nil
}
