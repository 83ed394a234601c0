package catalog

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/get_client_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/get_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/list_products"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/activate_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/create_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/deactivate_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/delete_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/set_client_price"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/update_product"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/clock"
	"github.com/murkotick/b2b-catalog-service/internal/transport/view"
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	Create         *create_product.Interactor
	Update         *update_product.Interactor
	Activate       *activate_product.Interactor
	Deactivate     *deactivate_product.Interactor
	Delete         *delete_product.Interactor
	SetClientPrice *set_client_price.Interactor
}

// Queries groups read handlers.
type Queries struct {
	Get           *get_product.Handler
	List          *list_products.Handler
	ClientProduct *get_client_product.Handler
}

// Handler is a thin gRPC transport adapter.
// It validates input, maps Struct <-> application DTOs and delegates to CQRS handlers.
type Handler struct {
	commands Commands
	queries  Queries
	clock    clock.Clock
}

func NewHandler(cmd Commands, qry Queries, clk clock.Clock) *Handler {
	return &Handler{commands: cmd, queries: qry, clock: clk}
}

var _ CatalogAdminServer = (*Handler)(nil)

func invalid(err error) error {
	return status.Error(codes.InvalidArgument, err.Error())
}

func (h *Handler) CreateProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req createProductRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	if err := validateCreateProduct(req); err != nil {
		return nil, invalid(err)
	}

	id, err := h.commands.Create.Execute(ctx, mapCreateProductRequest(req))
	if err != nil {
		return nil, mapError(err)
	}
	return reply(createProductReply{ProductID: id})
}

func (h *Handler) UpdateProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req updateProductRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	if err := validateUpdateProduct(req); err != nil {
		return nil, invalid(err)
	}

	if err := h.commands.Update.Execute(ctx, mapUpdateProductRequest(req)); err != nil {
		return nil, mapError(err)
	}
	return reply(nil)
}

func (h *Handler) ActivateProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id, err := productID(in)
	if err != nil {
		return nil, err
	}
	if err := h.commands.Activate.Execute(ctx, activate_product.Request{ProductID: id}); err != nil {
		return nil, mapError(err)
	}
	return reply(nil)
}

func (h *Handler) DeactivateProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id, err := productID(in)
	if err != nil {
		return nil, err
	}
	if err := h.commands.Deactivate.Execute(ctx, deactivate_product.Request{ProductID: id}); err != nil {
		return nil, mapError(err)
	}
	return reply(nil)
}

func (h *Handler) DeleteProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id, err := productID(in)
	if err != nil {
		return nil, err
	}
	if err := h.commands.Delete.Execute(ctx, delete_product.Request{ProductID: id}); err != nil {
		return nil, mapError(err)
	}
	return reply(nil)
}

func (h *Handler) SetClientPrice(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req setClientPriceRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	if err := validateSetClientPrice(req); err != nil {
		return nil, invalid(err)
	}

	res, err := h.commands.SetClientPrice.Execute(ctx, mapSetClientPriceRequest(req))
	if err != nil {
		return nil, mapError(err)
	}
	return reply(setClientPriceReply{Record: view.NewClientPrice(res.Record), Replaced: res.Replaced})
}

func (h *Handler) GetProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id, err := productID(in)
	if err != nil {
		return nil, err
	}
	p, err := h.queries.Get.Execute(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return reply(productReply{Product: view.NewProduct(p)})
}

func (h *Handler) ListProducts(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req listProductsRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}

	limit := pageSize(req.PageSize)
	offset, err := decodePageToken(req.PageToken)
	if err != nil {
		return nil, invalid(err)
	}

	filter := dto.ProductFilter{ActiveOnly: req.ActiveOnly}
	if req.Category != "" {
		c := req.Category
		filter.Category = &c
	}

	items, err := h.queries.List.Execute(ctx, filter, limit, offset)
	if err != nil {
		return nil, mapError(err)
	}

	next := ""
	if len(items) == limit {
		next = encodePageToken(offset + len(items))
	}
	return reply(listProductsReply{Products: mapProducts(items), NextPageToken: next})
}

// PreviewClientPrice shows an administrator what a given client pays now.
func (h *Handler) PreviewClientPrice(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req previewClientPriceRequest
	if err := decode(in, &req); err != nil {
		return nil, err
	}
	if err := validatePreview(req); err != nil {
		return nil, invalid(err)
	}
	who, err := domain.NewClientIdentity(req.ClientID, req.ClientEmail)
	if err != nil {
		return nil, mapError(err)
	}

	now := h.clock.Now()
	res, err := h.queries.ClientProduct.Price(ctx, who, req.ProductID, req.ConfigurationID)
	if err != nil {
		return nil, mapError(err)
	}
	return reply(previewClientPriceReply{
		ProductID:  req.ProductID,
		Price:      view.NewPrice(res.Price),
		ResolvedAt: formatInstant(now),
	})
}

func productID(in *structpb.Struct) (string, error) {
	var req productIDRequest
	if err := decode(in, &req); err != nil {
		return "", err
	}
	if err := validateProductID(req.ProductID); err != nil {
		return "", invalid(err)
	}
	return req.ProductID, nil
}
