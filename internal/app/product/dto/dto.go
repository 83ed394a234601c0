package dto

import (
	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/utils"
)

// ProductDTO contains full product fields returned by read queries.
// Timestamps use *string (RFC3339Nano) the way they come out of the read model.
// ClientPrices is ordered by position; client-facing queries include only the
// caller's own records.
type ProductDTO struct {
	ProductID       string
	SKU             string
	Name            string
	Description     string
	Category        string
	Brand           string
	Tags            []string
	DefaultPriceNum int64
	DefaultPriceDen int64
	Status          string
	Version         int64
	CreatedAt       *string
	UpdatedAt       *string

	ClientPrices   []*ClientPriceDTO
	Configurations []*ConfigurationDTO
}

// ClientPriceDTO is one row of product_client_prices.
type ClientPriceDTO struct {
	RecordID        string
	Position        int64
	ClientID        string
	ClientEmail     string
	PriceNum        int64
	PriceDen        int64
	Currency        string
	DiscountPercent int64
	ValidFrom       *string
	ValidUntil      *string
}

// ConfigurationDTO is one row of product_configurations.
type ConfigurationDTO struct {
	ConfigurationID string
	Position        int64
	Name            string
	Description     string
	PriceNum        int64
	PriceDen        int64
	Specs           map[string]string
	IsDefault       bool
}

// ProductFilter narrows admin listings.
type ProductFilter struct {
	Category   *string
	ActiveOnly bool
}

// ClientProductFilter narrows client listings. Inactive products are never listed.
type ClientProductFilter struct {
	Category *string
	// Query matches name, description, brand or any tag, case-insensitively.
	Query *string
	// NegotiatedOnly keeps only products carrying a record for the caller.
	NegotiatedOnly bool
}

// ToDomain reconstructs the aggregate the DTO was read from.
func (d *ProductDTO) ToDomain() (*domain.Product, error) {
	records := make([]*domain.ClientPriceRecord, 0, len(d.ClientPrices))
	for _, cp := range d.ClientPrices {
		records = append(records, domain.ReconstructClientPriceRecord(
			cp.RecordID,
			cp.Position,
			cp.ClientID,
			cp.ClientEmail,
			domain.NewMoney(cp.PriceNum, cp.PriceDen),
			domain.Currency(cp.Currency),
			int(cp.DiscountPercent),
			utils.TimeOrZero(utils.ParseTimePtr(cp.ValidFrom)),
			utils.ParseTimePtr(cp.ValidUntil),
		))
	}

	var configurations *domain.ConfigurationSet
	if len(d.Configurations) > 0 {
		items := make([]*domain.Configuration, 0, len(d.Configurations))
		for _, c := range d.Configurations {
			items = append(items, domain.ReconstructConfiguration(
				c.ConfigurationID, c.Name, c.Description,
				domain.NewMoney(c.PriceNum, c.PriceDen), c.Specs, c.IsDefault))
		}
		set, err := domain.NewConfigurationSet(items...)
		if err != nil {
			return nil, err
		}
		configurations = set
	}

	return domain.ReconstructProduct(
		d.ProductID,
		domain.Details{
			SKU:         d.SKU,
			Name:        d.Name,
			Description: d.Description,
			Category:    d.Category,
			Brand:       d.Brand,
			Tags:        append([]string(nil), d.Tags...),
		},
		domain.NewMoney(d.DefaultPriceNum, d.DefaultPriceDen),
		records,
		configurations,
		domain.ProductStatus(d.Status),
		d.Version,
		utils.TimeOrZero(utils.ParseTimePtr(d.CreatedAt)),
		utils.TimeOrZero(utils.ParseTimePtr(d.UpdatedAt)),
	), nil
}

// FromDomain flattens a product into its DTO form.
func FromDomain(p *domain.Product) *ProductDTO {
	created := utils.FormatTime(p.CreatedAt())
	updated := utils.FormatTime(p.UpdatedAt())
	out := &ProductDTO{
		ProductID:       p.ID(),
		SKU:             p.SKU(),
		Name:            p.Name(),
		Description:     p.Description(),
		Category:        p.Category(),
		Brand:           p.Brand(),
		Tags:            p.Tags(),
		DefaultPriceNum: p.DefaultPrice().Numerator(),
		DefaultPriceDen: p.DefaultPrice().Denominator(),
		Status:          string(p.Status()),
		Version:         p.Version(),
		CreatedAt:       &created,
		UpdatedAt:       &updated,
	}
	for _, r := range p.ClientPrices() {
		out.ClientPrices = append(out.ClientPrices, ClientPriceFromDomain(r))
	}
	for i, c := range p.Configurations().All() {
		out.Configurations = append(out.Configurations, &ConfigurationDTO{
			ConfigurationID: c.ID(),
			Position:        int64(i),
			Name:            c.Name(),
			Description:     c.Description(),
			PriceNum:        c.Price().Numerator(),
			PriceDen:        c.Price().Denominator(),
			Specs:           c.Specs(),
			IsDefault:       c.IsDefault(),
		})
	}
	return out
}

func ClientPriceFromDomain(r *domain.ClientPriceRecord) *ClientPriceDTO {
	from := utils.FormatTime(r.ValidFrom())
	return &ClientPriceDTO{
		RecordID:        r.ID(),
		Position:        r.Position(),
		ClientID:        r.ClientID(),
		ClientEmail:     r.ClientEmail(),
		PriceNum:        r.Price().Numerator(),
		PriceDen:        r.Price().Denominator(),
		Currency:        string(r.Currency()),
		DiscountPercent: int64(r.Discount().Percent()),
		ValidFrom:       &from,
		ValidUntil:      utils.FormatTimePtr(r.ValidUntil()),
	}
}

// ClientProductDTO is a product as one client sees it: only that client's
// records attached, and the price resolved for them at read time.
type ClientProductDTO struct {
	Product *ProductDTO
	Price   domain.ResolvedPrice
}
