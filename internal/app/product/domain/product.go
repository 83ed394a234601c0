package domain

import (
	"strings"
	"time"
)

// Field constants for change tracking
const (
	FieldSKU          = "sku"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldCategory     = "category"
	FieldBrand        = "brand"
	FieldTags         = "tags"
	FieldDefaultPrice = "default_price"
	FieldStatus       = "status"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Details are the descriptive, price-independent fields of a product.
type Details struct {
	SKU         string
	Name        string
	Description string
	Category    string
	Brand       string
	Tags        []string
}

// ClientPriceEntry is one element of a whole-list client price replacement.
type ClientPriceEntry struct {
	Client ClientIdentity
	Terms  PriceTerms
}

// Product is the aggregate root of the catalog. It owns the default price, the
// ordered list of negotiated client prices and the configuration set.
//
// No two client price records of a product match the same client id or the
// same email.
type Product struct {
	id             string
	details        Details
	defaultPrice   *Money
	clientPrices   []*ClientPriceRecord
	configurations *ConfigurationSet
	status         ProductStatus
	version        int64
	createdAt      time.Time
	updatedAt      time.Time

	changes            *ChangeTracker
	priceChanges       *RowChanges
	configurationDelta *RowChanges
	deleted            bool
	events             []DomainEvent
}

// NewProduct creates an active product with no client prices and no configurations.
func NewProduct(id string, details Details, defaultPrice *Money, now time.Time) (*Product, error) {
	normalized, err := normalizeDetails(details)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(defaultPrice); err != nil {
		return nil, err
	}

	p := &Product{
		id:                 id,
		details:            normalized,
		defaultPrice:       defaultPrice,
		status:             ProductStatusActive,
		version:            1,
		createdAt:          now,
		updatedAt:          now,
		changes:            NewChangeTracker(),
		priceChanges:       &RowChanges{},
		configurationDelta: &RowChanges{},
		events:             make([]DomainEvent, 0),
	}

	p.events = append(p.events, &ProductCreatedEvent{
		ProductID:    p.id,
		SKU:          p.details.SKU,
		Name:         p.details.Name,
		Category:     p.details.Category,
		DefaultPrice: p.defaultPrice,
		CreatedAt:    now,
	})

	return p, nil
}

// ReconstructProduct rebuilds a Product from persisted state.
// Used by repositories and interactors when loading from the database.
func ReconstructProduct(
	id string,
	details Details,
	defaultPrice *Money,
	clientPrices []*ClientPriceRecord,
	configurations *ConfigurationSet,
	status ProductStatus,
	version int64,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:                 id,
		details:            details,
		defaultPrice:       defaultPrice,
		clientPrices:       append([]*ClientPriceRecord(nil), clientPrices...),
		configurations:     configurations,
		status:             status,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		changes:            NewChangeTracker(),
		priceChanges:       &RowChanges{},
		configurationDelta: &RowChanges{},
		events:             make([]DomainEvent, 0),
	}
}

// Getters

func (p *Product) ID() string          { return p.id }
func (p *Product) SKU() string         { return p.details.SKU }
func (p *Product) Name() string        { return p.details.Name }
func (p *Product) Description() string { return p.details.Description }
func (p *Product) Category() string    { return p.details.Category }
func (p *Product) Brand() string       { return p.details.Brand }
func (p *Product) Tags() []string      { return append([]string(nil), p.details.Tags...) }

func (p *Product) Details() Details {
	d := p.details
	d.Tags = p.Tags()
	return d
}

func (p *Product) DefaultPrice() *Money   { return p.defaultPrice }
func (p *Product) Status() ProductStatus  { return p.status }
func (p *Product) IsActive() bool         { return p.status == ProductStatusActive }
func (p *Product) CreatedAt() time.Time   { return p.createdAt }
func (p *Product) UpdatedAt() time.Time   { return p.updatedAt }
func (p *Product) IsDeleted() bool        { return p.deleted }

func (p *Product) Changes() *ChangeTracker { return p.changes }

// Version is the optimistic concurrency token the product was loaded at.
func (p *Product) Version() int64 { return p.version }

// ClientPrices returns the records in list order.
func (p *Product) ClientPrices() []*ClientPriceRecord {
	return append([]*ClientPriceRecord(nil), p.clientPrices...)
}

// ClientPrice looks a record up by its record id.
func (p *Product) ClientPrice(recordID string) (*ClientPriceRecord, bool) {
	for _, r := range p.clientPrices {
		if r.id == recordID {
			return r, true
		}
	}
	return nil, false
}

// ClientPriceFor returns the first record in list order that matches who.
func (p *Product) ClientPriceFor(who ClientIdentity) (*ClientPriceRecord, bool) {
	for _, r := range p.clientPrices {
		if r.Matches(who) {
			return r, true
		}
	}
	return nil, false
}

// ClientPriceRowChanges lists record rows written or removed since load.
func (p *Product) ClientPriceRowChanges() *RowChanges { return p.priceChanges }

func (p *Product) Configurations() *ConfigurationSet { return p.configurations }

// ConfigurationRowChanges lists configuration rows written or removed since load.
func (p *Product) ConfigurationRowChanges() *RowChanges { return p.configurationDelta }

// HasChanges reports whether anything needs persisting.
func (p *Product) HasChanges() bool {
	return p.changes.HasChanges() || p.priceChanges.HasChanges() || p.configurationDelta.HasChanges()
}

func (p *Product) DomainEvents() []DomainEvent {
	return p.events
}

// Business Methods

// UpdateDetails replaces the descriptive fields. Only changed fields are marked dirty.
func (p *Product) UpdateDetails(details Details, now time.Time) error {
	normalized, err := normalizeDetails(details)
	if err != nil {
		return err
	}

	changes := make(map[string]interface{})
	if normalized.SKU != p.details.SKU {
		p.changes.MarkDirty(FieldSKU)
		changes[FieldSKU] = normalized.SKU
	}
	if normalized.Name != p.details.Name {
		p.changes.MarkDirty(FieldName)
		changes[FieldName] = normalized.Name
	}
	if normalized.Description != p.details.Description {
		p.changes.MarkDirty(FieldDescription)
		changes[FieldDescription] = normalized.Description
	}
	if normalized.Category != p.details.Category {
		p.changes.MarkDirty(FieldCategory)
		changes[FieldCategory] = normalized.Category
	}
	if normalized.Brand != p.details.Brand {
		p.changes.MarkDirty(FieldBrand)
		changes[FieldBrand] = normalized.Brand
	}
	if !equalTags(normalized.Tags, p.details.Tags) {
		p.changes.MarkDirty(FieldTags)
		changes[FieldTags] = normalized.Tags
	}

	if len(changes) == 0 {
		return nil
	}

	p.details = normalized
	p.updatedAt = now
	p.events = append(p.events, &ProductUpdatedEvent{
		ProductID: p.id,
		UpdatedAt: now,
		Changes:   changes,
	})
	return nil
}

// UpdateDefaultPrice changes the public price used when no client record applies.
func (p *Product) UpdateDefaultPrice(newPrice *Money, now time.Time) error {
	if err := validatePrice(newPrice); err != nil {
		return err
	}
	if newPrice.Equals(p.defaultPrice) {
		return nil
	}

	oldPrice := p.defaultPrice
	p.defaultPrice = newPrice
	p.changes.MarkDirty(FieldDefaultPrice)
	p.updatedAt = now

	p.events = append(p.events, &DefaultPriceChangedEvent{
		ProductID: p.id,
		OldPrice:  oldPrice,
		NewPrice:  newPrice,
		ChangedAt: now,
	})
	return nil
}

// SetClientPrice upserts the negotiated price for who.
//
// The first record matching who (by id or email) is replaced in full, keeping
// its record id; absent terms take their defaults rather than the old values.
// Without a match a new record with newRecordID is appended. Any other record
// that also matches who is removed afterwards. Nothing changes on error.
func (p *Product) SetClientPrice(who ClientIdentity, terms PriceTerms, newRecordID string, now time.Time) (*ClientPriceRecord, error) {
	idx := -1
	for i, r := range p.clientPrices {
		if r.Matches(who) {
			idx = i
			break
		}
	}

	recordID, position := newRecordID, p.nextPosition()
	if idx >= 0 {
		recordID, position = p.clientPrices[idx].id, p.clientPrices[idx].position
	}

	record, err := newClientPriceRecord(recordID, position, who, terms, now)
	if err != nil {
		return nil, err
	}

	next := make([]*ClientPriceRecord, 0, len(p.clientPrices)+1)
	var collapsed []string
	for i, r := range p.clientPrices {
		switch {
		case i == idx:
			next = append(next, record)
		case r.Matches(who):
			collapsed = append(collapsed, r.id)
		default:
			next = append(next, r)
		}
	}
	if idx < 0 {
		next = append(next, record)
	}

	p.clientPrices = next
	p.priceChanges.Upsert(record.id)
	for _, id := range collapsed {
		p.priceChanges.Remove(id)
	}
	p.updatedAt = now

	p.events = append(p.events, &ClientPriceSetEvent{
		ProductID:          p.id,
		RecordID:           record.id,
		ClientID:           record.clientID,
		ClientEmail:        record.clientEmail,
		Price:              record.price,
		Currency:           record.currency,
		DiscountPercent:    record.discount.Percent(),
		ValidFrom:          record.validFrom,
		ValidUntil:         record.validUntil,
		Replaced:           idx >= 0,
		CollapsedRecordIDs: collapsed,
		SetAt:              now,
	})

	return record, nil
}

// nextPosition returns a sort key that places a new record after every existing one.
func (p *Product) nextPosition() int64 {
	next := int64(0)
	for _, r := range p.clientPrices {
		if r.position >= next {
			next = r.position + 1
		}
	}
	return next
}

// ReplaceClientPrices swaps the whole record list for entries, in order.
// Later entries matching an earlier one replace it. An empty list clears all records.
func (p *Product) ReplaceClientPrices(entries []ClientPriceEntry, newRecordID func() string, now time.Time) error {
	staged := &Product{id: p.id, priceChanges: &RowChanges{}}
	for _, e := range entries {
		if _, err := staged.SetClientPrice(e.Client, e.Terms, newRecordID(), now); err != nil {
			return err
		}
	}

	p.clientPrices = staged.clientPrices
	p.priceChanges.Clear()
	for _, r := range p.clientPrices {
		p.priceChanges.Upsert(r.id)
	}
	p.updatedAt = now

	p.events = append(p.events, &ClientPricesReplacedEvent{
		ProductID:   p.id,
		RecordCount: len(p.clientPrices),
		ReplacedAt:  now,
	})
	return nil
}

// ReplaceConfigurations swaps the whole configuration set. A nil set removes all.
func (p *Product) ReplaceConfigurations(set *ConfigurationSet, now time.Time) {
	p.configurations = set
	p.configurationDelta.Clear()
	ids := make([]string, 0, set.Len())
	for _, c := range set.All() {
		p.configurationDelta.Upsert(c.id)
		ids = append(ids, c.id)
	}
	p.updatedAt = now

	p.events = append(p.events, &ConfigurationsReplacedEvent{
		ProductID:        p.id,
		ConfigurationIDs: ids,
		ReplacedAt:       now,
	})
}

func (p *Product) Activate(now time.Time) error {
	if p.status == ProductStatusActive {
		return ErrProductAlreadyActive
	}

	p.status = ProductStatusActive
	p.changes.MarkDirty(FieldStatus)
	p.updatedAt = now

	p.events = append(p.events, &ProductActivatedEvent{
		ProductID:   p.id,
		ActivatedAt: now,
	})
	return nil
}

// Deactivate hides the product from client listings.
func (p *Product) Deactivate(now time.Time) error {
	if p.status == ProductStatusInactive {
		return ErrProductAlreadyInactive
	}

	p.status = ProductStatusInactive
	p.changes.MarkDirty(FieldStatus)
	p.updatedAt = now

	p.events = append(p.events, &ProductDeactivatedEvent{
		ProductID:     p.id,
		DeactivatedAt: now,
	})
	return nil
}

// MarkDeleted records an admin deletion. The repository turns it into a Delete
// mutation that cascades to client prices and configurations.
func (p *Product) MarkDeleted(now time.Time) {
	if p.deleted {
		return
	}
	p.deleted = true
	p.updatedAt = now
	p.events = append(p.events, &ProductDeletedEvent{
		ProductID: p.id,
		DeletedAt: now,
	})
}

// Validation helpers

func normalizeDetails(d Details) (Details, error) {
	out := Details{
		SKU:         strings.TrimSpace(d.SKU),
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Category:    strings.TrimSpace(d.Category),
		Brand:       strings.TrimSpace(d.Brand),
		Tags:        normalizeTags(d.Tags),
	}
	if out.Name == "" {
		return Details{}, ErrEmptyProductName
	}
	if len(out.Name) > 255 {
		return Details{}, ErrProductNameTooLong
	}
	if out.Category == "" {
		return Details{}, ErrEmptyProductCategory
	}
	if len(out.Category) > 100 {
		return Details{}, ErrProductCategoryTooLong
	}
	if len(out.SKU) > 64 {
		return Details{}, ErrProductSKUTooLong
	}
	return out, nil
}

// normalizeTags trims, drops empties and de-duplicates, keeping first occurrence.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func equalTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func validatePrice(price *Money) error {
	if price == nil {
		return ErrMissingPrice
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if !price.Storable() {
		return ErrPriceOutOfRange
	}
	return nil
}
