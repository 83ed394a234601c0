package storefront

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	cartdto "github.com/murkotick/b2b-catalog-service/internal/app/cart/dto"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/usecases/add_item"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/usecases/clear_cart"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/usecases/get_cart"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/usecases/remove_item"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/usecases/toggle_cart"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/usecases/update_quantity"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
	"github.com/murkotick/b2b-catalog-service/internal/transport/view"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var errInvalidPaging = errors.New("page and limit must be positive integers")

type ProductLister interface {
	Execute(ctx context.Context, who domain.ClientIdentity, filter dto.ClientProductFilter, limit, offset int) ([]*dto.ClientProductDTO, error)
}

type ProductReader interface {
	Execute(ctx context.Context, who domain.ClientIdentity, productID string) (*dto.ClientProductDTO, error)
	Price(ctx context.Context, who domain.ClientIdentity, productID, configurationID string) (*dto.ClientProductDTO, error)
}

// Cart groups the cart interactors.
type Cart struct {
	Get    *get_cart.Interactor
	Add    *add_item.Interactor
	Update *update_quantity.Interactor
	Remove *remove_item.Interactor
	Clear  *clear_cart.Interactor
	Toggle *toggle_cart.Interactor
}

// Handler serves the client-facing catalog and cart API.
type Handler struct {
	products ProductLister
	product  ProductReader
	cart     Cart
}

func NewHandler(products ProductLister, product ProductReader, cart Cart) *Handler {
	return &Handler{products: products, product: product, cart: cart}
}

func (h *Handler) Health(c *gin.Context) {
	success(c, http.StatusOK, "ok", gin.H{"status": "healthy"})
}

// ListProducts handles GET /api/products?category=&negotiated=&page=&limit=
func (h *Handler) ListProducts(c *gin.Context) {
	filter := dto.ClientProductFilter{NegotiatedOnly: c.Query("negotiated") == "true"}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		filter.Category = &category
	}
	h.list(c, filter, "")
}

// SearchProducts handles GET /api/products/search?q=
func (h *Handler) SearchProducts(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		fail(c, http.StatusBadRequest, "INVALID_REQUEST", "query parameter q is required", false)
		return
	}
	filter := dto.ClientProductFilter{Query: &q}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		filter.Category = &category
	}
	h.list(c, filter, q)
}

func (h *Handler) list(c *gin.Context, filter dto.ClientProductFilter, q string) {
	page, limit, err := paging(c)
	if err != nil {
		fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), false)
		return
	}

	// one extra row tells whether another page exists
	items, err := h.products.Execute(c.Request.Context(), mustIdentity(c), filter, limit+1, (page-1)*limit)
	if err != nil {
		failWith(c, err)
		return
	}
	hasMore := len(items) > limit
	if hasMore {
		items = items[:limit]
	}

	out := make([]view.ClientProduct, 0, len(items))
	for _, it := range items {
		out = append(out, view.NewClientProduct(it))
	}
	successPage(c, "products retrieved", out, Pagination{
		Page: page, Limit: limit, Count: len(out), HasMore: hasMore, Query: q,
	})
}

func (h *Handler) GetProduct(c *gin.Context) {
	res, err := h.product.Execute(c.Request.Context(), mustIdentity(c), c.Param("id"))
	if err != nil {
		failWith(c, err)
		return
	}
	success(c, http.StatusOK, "product retrieved", view.NewClientProduct(res))
}

// GetPrice handles GET /api/products/:id/price?configurationId=
func (h *Handler) GetPrice(c *gin.Context) {
	res, err := h.product.Price(c.Request.Context(), mustIdentity(c), c.Param("id"), c.Query("configurationId"))
	if err != nil {
		failWith(c, err)
		return
	}
	success(c, http.StatusOK, "price resolved", gin.H{
		"productId":       res.Product.ProductID,
		"configurationId": c.Query("configurationId"),
		"price":           view.NewPrice(res.Price),
	})
}

func (h *Handler) GetCart(c *gin.Context) {
	res, err := h.cart.Get.Execute(c.Request.Context(), mustIdentity(c))
	h.cartReply(c, http.StatusOK, "cart retrieved", res, err)
}

type addItemRequest struct {
	ProductID       string `json:"productId" binding:"required"`
	ConfigurationID string `json:"configurationId"`
	Quantity        int    `json:"quantity" binding:"omitempty,min=1"`
}

func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), false)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	res, err := h.cart.Add.Execute(c.Request.Context(), add_item.Request{
		Who:             mustIdentity(c),
		ProductID:       req.ProductID,
		ConfigurationID: req.ConfigurationID,
		Quantity:        req.Quantity,
	})
	h.cartReply(c, http.StatusCreated, "item added", res, err)
}

type updateQuantityRequest struct {
	// zero or less removes the line
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateQuantity handles PATCH /api/cart/items/:productId?configurationId=
func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), false)
		return
	}

	res, err := h.cart.Update.Execute(c.Request.Context(), update_quantity.Request{
		ClientID:        mustIdentity(c).ID,
		ProductID:       c.Param("productId"),
		ConfigurationID: c.Query("configurationId"),
		Quantity:        *req.Quantity,
	})
	h.cartReply(c, http.StatusOK, "quantity updated", res, err)
}

// RemoveItem handles DELETE /api/cart/items/:productId. Without a
// configurationId every line of the product is removed.
func (h *Handler) RemoveItem(c *gin.Context) {
	cfg, hasCfg := c.GetQuery("configurationId")
	res, err := h.cart.Remove.Execute(c.Request.Context(), remove_item.Request{
		ClientID:          mustIdentity(c).ID,
		ProductID:         c.Param("productId"),
		ConfigurationID:   cfg,
		AllConfigurations: !hasCfg,
	})
	h.cartReply(c, http.StatusOK, "item removed", res, err)
}

func (h *Handler) ClearCart(c *gin.Context) {
	res, err := h.cart.Clear.Execute(c.Request.Context(), mustIdentity(c).ID)
	h.cartReply(c, http.StatusOK, "cart cleared", res, err)
}

func (h *Handler) ToggleCart(c *gin.Context) {
	res, err := h.cart.Toggle.Execute(c.Request.Context(), mustIdentity(c).ID, false)
	h.cartReply(c, http.StatusOK, "cart toggled", res, err)
}

func (h *Handler) CloseCart(c *gin.Context) {
	res, err := h.cart.Toggle.Execute(c.Request.Context(), mustIdentity(c).ID, true)
	h.cartReply(c, http.StatusOK, "cart closed", res, err)
}

func (h *Handler) cartReply(c *gin.Context, code int, message string, res *cartdto.CartDTO, err error) {
	if err != nil {
		failWith(c, err)
		return
	}
	success(c, code, message, view.NewCart(res))
}

func paging(c *gin.Context) (page, limit int, err error) {
	page, limit = 1, defaultLimit
	if v := c.Query("page"); v != "" {
		if page, err = strconv.Atoi(v); err != nil || page < 1 {
			return 0, 0, errInvalidPaging
		}
	}
	if v := c.Query("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit < 1 {
			return 0, 0, errInvalidPaging
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit, nil
}
