package contracts

import (
	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
)

// ProductRepo is the write-side repository interface for products.
// Methods return Spanner mutations; they do not apply them.
type ProductRepo interface {
	// InsertMut returns the insert of a new product row.
	InsertMut(p *domain.Product) *spanner.Mutation

	// UpdateMut returns an update of the dirty product columns plus a version
	// bump, or nil when nothing changed.
	UpdateMut(p *domain.Product) *spanner.Mutation

	// DeleteMut returns the delete of a product marked deleted (or nil).
	DeleteMut(p *domain.Product) *spanner.Mutation

	// ClientPriceMuts returns the row writes for client price records touched since load.
	ClientPriceMuts(p *domain.Product) []*spanner.Mutation

	// ConfigurationMuts returns the row writes for configurations touched since load.
	ConfigurationMuts(p *domain.Product) []*spanner.Mutation
}
