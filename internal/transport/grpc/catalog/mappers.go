package catalog

import (
	"time"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/create_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/set_client_price"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/update_product"
	"github.com/murkotick/b2b-catalog-service/internal/transport/view"
)

type productIDRequest struct {
	ProductID string `json:"productId"`
}

type createProductRequest struct {
	SKU            string                    `json:"sku"`
	Name           string                    `json:"name"`
	Description    string                    `json:"description"`
	Category       string                    `json:"category"`
	Brand          string                    `json:"brand"`
	Tags           []string                  `json:"tags"`
	DefaultPrice   *view.MoneyInput          `json:"defaultPrice"`
	Configurations []view.ConfigurationInput `json:"configurations"`
	ClientPrices   []view.ClientPriceInput   `json:"clientPrices"`
}

// updateProductRequest leaves a field unchanged when it is absent. Present
// list fields replace the whole list; an empty list clears it.
type updateProductRequest struct {
	ProductID      string                     `json:"productId"`
	SKU            *string                    `json:"sku"`
	Name           *string                    `json:"name"`
	Description    *string                    `json:"description"`
	Category       *string                    `json:"category"`
	Brand          *string                    `json:"brand"`
	Tags           *[]string                  `json:"tags"`
	DefaultPrice   *view.MoneyInput           `json:"defaultPrice"`
	Configurations *[]view.ConfigurationInput `json:"configurations"`
	ClientPrices   *[]view.ClientPriceInput   `json:"clientPrices"`
}

type setClientPriceRequest struct {
	ProductID string `json:"productId"`
	view.ClientPriceInput
}

type listProductsRequest struct {
	Category   string `json:"category"`
	ActiveOnly bool   `json:"activeOnly"`
	PageSize   int    `json:"pageSize"`
	PageToken  string `json:"pageToken"`
}

type previewClientPriceRequest struct {
	ProductID       string `json:"productId"`
	ClientID        string `json:"clientId"`
	ClientEmail     string `json:"clientEmail"`
	ConfigurationID string `json:"configurationId"`
}

type createProductReply struct {
	ProductID string `json:"productId"`
}

type setClientPriceReply struct {
	Record   view.ClientPrice `json:"record"`
	Replaced bool             `json:"replaced"`
}

type listProductsReply struct {
	Products      []view.Product `json:"products"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
}

type productReply struct {
	Product view.Product `json:"product"`
}

type previewClientPriceReply struct {
	ProductID string     `json:"productId"`
	Price     view.Price `json:"price"`
	// ResolvedAt is the instant the price was evaluated at.
	ResolvedAt string `json:"resolvedAt"`
}

func mapConfigurations(in []view.ConfigurationInput) []shared.ConfigurationInput {
	out := make([]shared.ConfigurationInput, 0, len(in))
	for _, c := range in {
		out = append(out, shared.ConfigurationInput{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Price:       c.Price.Value(),
			Specs:       c.Specs,
			IsDefault:   c.IsDefault,
		})
	}
	return out
}

func mapClientPrices(in []view.ClientPriceInput) []shared.ClientPriceInput {
	out := make([]shared.ClientPriceInput, 0, len(in))
	for _, cp := range in {
		out = append(out, shared.ClientPriceInput{
			ClientID:    cp.ClientID,
			ClientEmail: cp.ClientEmail,
			Terms:       cp.Terms(),
		})
	}
	return out
}

func mapCreateProductRequest(req createProductRequest) create_product.Request {
	return create_product.Request{
		SKU:            req.SKU,
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Brand:          req.Brand,
		Tags:           req.Tags,
		DefaultPrice:   req.DefaultPrice.Value(),
		Configurations: mapConfigurations(req.Configurations),
		ClientPrices:   mapClientPrices(req.ClientPrices),
	}
}

func mapUpdateProductRequest(req updateProductRequest) update_product.Request {
	out := update_product.Request{
		ProductID:    req.ProductID,
		SKU:          req.SKU,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Brand:        req.Brand,
		Tags:         req.Tags,
		DefaultPrice: req.DefaultPrice.Value(),
	}
	if req.Configurations != nil {
		cfgs := mapConfigurations(*req.Configurations)
		out.Configurations = &cfgs
	}
	if req.ClientPrices != nil {
		prices := mapClientPrices(*req.ClientPrices)
		out.ClientPrices = &prices
	}
	return out
}

func mapSetClientPriceRequest(req setClientPriceRequest) set_client_price.Request {
	terms := req.Terms()
	return set_client_price.Request{
		ProductID:          req.ProductID,
		ClientID:           req.ClientID,
		ClientEmail:        req.ClientEmail,
		Price:              terms.Price,
		Currency:           req.Currency,
		DiscountPercentage: req.DiscountPercentage,
		ValidFrom:          req.ValidFrom,
		ValidUntil:         req.ValidUntil,
	}
}

func mapProducts(items []*dto.ProductDTO) []view.Product {
	out := make([]view.Product, 0, len(items))
	for _, p := range items {
		out = append(out, view.NewProduct(p))
	}
	return out
}

func formatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
