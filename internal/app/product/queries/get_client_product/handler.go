package get_client_product

import (
	"context"

	contracts "github.com/murkotick/b2b-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain/services"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/clock"
)

// Handler serves a single product to an authenticated client. Inactive
// products read as not found.
type Handler struct {
	readModel contracts.ReadModel
	resolver  *services.PricingResolver
	clock     clock.Clock
}

func NewHandler(r contracts.ReadModel, resolver *services.PricingResolver, clk clock.Clock) *Handler {
	return &Handler{readModel: r, resolver: resolver, clock: clk}
}

func (h *Handler) Execute(ctx context.Context, who domain.ClientIdentity, productID string) (*dto.ClientProductDTO, error) {
	stored, product, err := h.load(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &dto.ClientProductDTO{
		Product: OwnRecordsOnly(stored, product, who),
		Price:   h.resolver.Resolve(product, who, h.clock.Now()),
	}, nil
}

// Price resolves what who pays for one configuration of a product, or for
// the product itself when configurationID is empty.
func (h *Handler) Price(ctx context.Context, who domain.ClientIdentity, productID, configurationID string) (*dto.ClientProductDTO, error) {
	stored, product, err := h.load(ctx, productID)
	if err != nil {
		return nil, err
	}

	price, err := h.resolver.ResolveConfiguration(product, who, configurationID, h.clock.Now())
	if err != nil {
		return nil, err
	}
	return &dto.ClientProductDTO{Product: OwnRecordsOnly(stored, product, who), Price: price}, nil
}

func (h *Handler) load(ctx context.Context, productID string) (*dto.ProductDTO, *domain.Product, error) {
	stored, err := h.readModel.GetProduct(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	product, err := stored.ToDomain()
	if err != nil {
		return nil, nil, err
	}
	if !product.IsActive() {
		return nil, nil, domain.ErrProductNotFound
	}
	return stored, product, nil
}

// OwnRecordsOnly copies stored, keeping only the client price records that
// match who. Other clients' negotiated terms never leave the read side.
func OwnRecordsOnly(stored *dto.ProductDTO, product *domain.Product, who domain.ClientIdentity) *dto.ProductDTO {
	out := *stored
	out.ClientPrices = nil
	for _, rec := range product.ClientPrices() {
		if rec.Matches(who) {
			out.ClientPrices = append(out.ClientPrices, dto.ClientPriceFromDomain(rec))
		}
	}
	return &out
}
