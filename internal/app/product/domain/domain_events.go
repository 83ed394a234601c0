package domain

import "time"

// DomainEvent is a fact about the catalog, written to the outbox in the same
// transaction as the state change that caused it.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

type ProductCreatedEvent struct {
	ProductID    string
	SKU          string
	Name         string
	Category     string
	DefaultPrice *Money
	CreatedAt    time.Time
}

func (e *ProductCreatedEvent) EventType() string      { return "product.created" }
func (e *ProductCreatedEvent) AggregateID() string    { return e.ProductID }
func (e *ProductCreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

// ProductUpdatedEvent carries the new value of every detail field that changed.
type ProductUpdatedEvent struct {
	ProductID string
	UpdatedAt time.Time
	Changes   map[string]interface{}
}

func (e *ProductUpdatedEvent) EventType() string      { return "product.updated" }
func (e *ProductUpdatedEvent) AggregateID() string    { return e.ProductID }
func (e *ProductUpdatedEvent) OccurredAt() time.Time { return e.UpdatedAt }

type ProductActivatedEvent struct {
	ProductID   string
	ActivatedAt time.Time
}

func (e *ProductActivatedEvent) EventType() string      { return "product.activated" }
func (e *ProductActivatedEvent) AggregateID() string    { return e.ProductID }
func (e *ProductActivatedEvent) OccurredAt() time.Time { return e.ActivatedAt }

type ProductDeactivatedEvent struct {
	ProductID     string
	DeactivatedAt time.Time
}

func (e *ProductDeactivatedEvent) EventType() string      { return "product.deactivated" }
func (e *ProductDeactivatedEvent) AggregateID() string    { return e.ProductID }
func (e *ProductDeactivatedEvent) OccurredAt() time.Time { return e.DeactivatedAt }

type ProductDeletedEvent struct {
	ProductID string
	DeletedAt time.Time
}

func (e *ProductDeletedEvent) EventType() string      { return "product.deleted" }
func (e *ProductDeletedEvent) AggregateID() string    { return e.ProductID }
func (e *ProductDeletedEvent) OccurredAt() time.Time { return e.DeletedAt }

type DefaultPriceChangedEvent struct {
	ProductID string
	OldPrice  *Money
	NewPrice  *Money
	ChangedAt time.Time
}

func (e *DefaultPriceChangedEvent) EventType() string      { return "product.default_price_changed" }
func (e *DefaultPriceChangedEvent) AggregateID() string    { return e.ProductID }
func (e *DefaultPriceChangedEvent) OccurredAt() time.Time { return e.ChangedAt }

// ClientPriceSetEvent is raised by every client price upsert.
// Replaced is false when the record was appended.
type ClientPriceSetEvent struct {
	ProductID          string
	RecordID           string
	ClientID           string
	ClientEmail        string
	Price              *Money
	Currency           Currency
	DiscountPercent    int
	ValidFrom          time.Time
	ValidUntil         *time.Time
	Replaced           bool
	CollapsedRecordIDs []string
	SetAt              time.Time
}

func (e *ClientPriceSetEvent) EventType() string      { return "client_price.set" }
func (e *ClientPriceSetEvent) AggregateID() string    { return e.ProductID }
func (e *ClientPriceSetEvent) OccurredAt() time.Time { return e.SetAt }

// ClientPricesReplacedEvent is raised when an admin edit replaces or clears the whole list.
type ClientPricesReplacedEvent struct {
	ProductID   string
	RecordCount int
	ReplacedAt  time.Time
}

func (e *ClientPricesReplacedEvent) EventType() string      { return "client_price.list_replaced" }
func (e *ClientPricesReplacedEvent) AggregateID() string    { return e.ProductID }
func (e *ClientPricesReplacedEvent) OccurredAt() time.Time { return e.ReplacedAt }

type ConfigurationsReplacedEvent struct {
	ProductID        string
	ConfigurationIDs []string
	ReplacedAt       time.Time
}

func (e *ConfigurationsReplacedEvent) EventType() string      { return "product.configurations_replaced" }
func (e *ConfigurationsReplacedEvent) AggregateID() string    { return e.ProductID }
func (e *ConfigurationsReplacedEvent) OccurredAt() time.Time { return e.ReplacedAt }
