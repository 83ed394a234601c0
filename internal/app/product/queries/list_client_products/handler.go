package list_client_products

import (
	"context"

	contracts "github.com/murkotick/b2b-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain/services"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/get_client_product"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/clock"
)

// Handler lists products with the price resolved for the calling client.
// Products without a record for the caller show their default price.
type Handler struct {
	readModel contracts.ReadModel
	resolver  *services.PricingResolver
	clock     clock.Clock
}

func NewHandler(r contracts.ReadModel, resolver *services.PricingResolver, clk clock.Clock) *Handler {
	return &Handler{readModel: r, resolver: resolver, clock: clk}
}

func (h *Handler) Execute(ctx context.Context, who domain.ClientIdentity, filter dto.ClientProductFilter, limit, offset int) ([]*dto.ClientProductDTO, error) {
	stored, err := h.readModel.ListClientProducts(ctx, who, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	out := make([]*dto.ClientProductDTO, 0, len(stored))
	for _, s := range stored {
		product, err := s.ToDomain()
		if err != nil {
			return nil, err
		}
		if !product.IsActive() {
			continue
		}
		out = append(out, &dto.ClientProductDTO{
			Product: get_client_product.OwnRecordsOnly(s, product, who),
			Price:   h.resolver.Resolve(product, who, now),
		})
	}
	return out, nil
}
