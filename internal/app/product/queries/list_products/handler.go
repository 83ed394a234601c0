package list_products

import (
	"context"

	contracts "github.com/murkotick/b2b-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, filter dto.ProductFilter, limit, offset int) ([]*dto.ProductDTO, error) {
	return h.readModel.ListProducts(ctx, filter, limit, offset)
}
