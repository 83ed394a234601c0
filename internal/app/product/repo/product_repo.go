package repo

import (
	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/models/m_client_price"
	"github.com/murkotick/b2b-catalog-service/internal/models/m_configuration"
	"github.com/murkotick/b2b-catalog-service/internal/models/m_product"
)

// ProductRepo is the Spanner implementation of the write-side repository.
// It returns *spanner.Mutation objects but never applies them.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildInsertValues constructs the values map used for insertion.
// It's unexported so tests in the same package can inspect the map without
// relying on spanner.Mutation internals.
func buildInsertValues(p *domain.Product) map[string]interface{} {
	price := p.DefaultPrice()
	return m_product.BuildInsertMap(
		p.ID(), p.SKU(), p.Name(), p.Description(), p.Category(), p.Brand(), p.Tags(),
		price.Numerator(), price.Denominator(),
		string(p.Status()), p.Version(),
		p.CreatedAt().UTC(), p.UpdatedAt().UTC(),
	)
}

// buildUpdateValues returns the dirty columns, or nil when the product row is untouched.
// Any change, including child rows only, bumps version and updated_at so that
// concurrent writers of the same product conflict on it.
func buildUpdateValues(p *domain.Product) map[string]interface{} {
	if p == nil || p.IsDeleted() || !p.HasChanges() {
		return nil
	}

	ch := p.Changes()
	updates := map[string]interface{}{}

	if ch.Dirty(domain.FieldSKU) {
		updates[m_product.ColSKU] = m_product.NullableString(p.SKU())
	}
	if ch.Dirty(domain.FieldName) {
		updates[m_product.ColName] = p.Name()
	}
	if ch.Dirty(domain.FieldDescription) {
		updates[m_product.ColDescription] = m_product.NullableString(p.Description())
	}
	if ch.Dirty(domain.FieldCategory) {
		updates[m_product.ColCategory] = p.Category()
	}
	if ch.Dirty(domain.FieldBrand) {
		updates[m_product.ColBrand] = m_product.NullableString(p.Brand())
	}
	if ch.Dirty(domain.FieldTags) {
		updates[m_product.ColTags] = p.Tags()
	}
	if ch.Dirty(domain.FieldDefaultPrice) {
		updates[m_product.ColDefaultPriceNumerator] = p.DefaultPrice().Numerator()
		updates[m_product.ColDefaultPriceDenominator] = p.DefaultPrice().Denominator()
	}
	if ch.Dirty(domain.FieldStatus) {
		updates[m_product.ColStatus] = string(p.Status())
	}

	updates[m_product.ColVersion] = p.Version() + 1
	updates[m_product.ColUpdatedAt] = p.UpdatedAt().UTC()
	return updates
}

// InsertMut builds an Insert mutation for a new product.
func (r *ProductRepo) InsertMut(p *domain.Product) *spanner.Mutation {
	return m_product.InsertMutation(buildInsertValues(p))
}

// UpdateMut builds an Update mutation using the aggregate's ChangeTracker.
func (r *ProductRepo) UpdateMut(p *domain.Product) *spanner.Mutation {
	values := buildUpdateValues(p)
	if values == nil {
		return nil
	}
	return m_product.UpdateMutation(p.ID(), values)
}

// DeleteMut returns the delete of a product the aggregate has marked deleted.
func (r *ProductRepo) DeleteMut(p *domain.Product) *spanner.Mutation {
	if p == nil || !p.IsDeleted() {
		return nil
	}
	return m_product.DeleteMutation(p.ID())
}

// ClientPriceMuts writes only the record rows the aggregate touched: one
// InsertOrUpdate per written record and one Delete per collapsed record. A
// whole-list replacement starts with a prefix delete of every stored row.
func (r *ProductRepo) ClientPriceMuts(p *domain.Product) []*spanner.Mutation {
	if p == nil || p.IsDeleted() {
		return nil
	}
	changes := p.ClientPriceRowChanges()
	if !changes.HasChanges() {
		return nil
	}

	var muts []*spanner.Mutation
	if changes.Cleared() {
		muts = append(muts, m_client_price.DeleteAllMutation(p.ID()))
	}
	for _, id := range changes.Removed() {
		muts = append(muts, m_client_price.DeleteMutation(p.ID(), id))
	}
	for _, id := range changes.Upserted() {
		rec, ok := p.ClientPrice(id)
		if !ok {
			continue
		}
		muts = append(muts, m_client_price.UpsertMutation(buildClientPriceValues(p, rec)))
	}
	return muts
}

func buildClientPriceValues(p *domain.Product, rec *domain.ClientPriceRecord) map[string]interface{} {
	return m_client_price.BuildUpsertMap(
		p.ID(), rec.ID(), rec.Position(), rec.ClientID(), rec.ClientEmail(),
		rec.Price().Numerator(), rec.Price().Denominator(),
		string(rec.Currency()), int64(rec.Discount().Percent()),
		rec.ValidFrom(), rec.ValidUntil(), p.UpdatedAt(),
	)
}

// ConfigurationMuts persists a configuration set replacement.
func (r *ProductRepo) ConfigurationMuts(p *domain.Product) []*spanner.Mutation {
	if p == nil || p.IsDeleted() {
		return nil
	}
	changes := p.ConfigurationRowChanges()
	if !changes.HasChanges() {
		return nil
	}

	var muts []*spanner.Mutation
	if changes.Cleared() {
		muts = append(muts, m_configuration.DeleteAllMutation(p.ID()))
	}
	for _, id := range changes.Removed() {
		muts = append(muts, m_configuration.DeleteMutation(p.ID(), id))
	}
	for _, values := range buildConfigurationValues(p, changes.Upserted()) {
		muts = append(muts, m_configuration.UpsertMutation(values))
	}
	return muts
}

func buildConfigurationValues(p *domain.Product, ids []string) []map[string]interface{} {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []map[string]interface{}
	for i, c := range p.Configurations().All() {
		if !wanted[c.ID()] {
			continue
		}
		out = append(out, m_configuration.BuildUpsertMap(
			p.ID(), c.ID(), int64(i), c.Name(), c.Description(),
			c.Price().Numerator(), c.Price().Denominator(), c.Specs(), c.IsDefault(),
		))
	}
	return out
}
