package shared

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	contracts "github.com/murkotick/b2b-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/models/m_product"
	commitplan "github.com/murkotick/b2b-catalog-service/internal/pkg/committer"
)

// AggregateTypeProduct tags outbox rows raised by the product aggregate.
const AggregateTypeProduct = "product"

// LoadProduct reads a product through the read model and reconstructs the aggregate.
func LoadProduct(ctx context.Context, readModel contracts.ReadModel, productID string) (*domain.Product, error) {
	d, err := readModel.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return d.ToDomain()
}

// ExpectLoadedVersion guards the plan against writers that committed after p was read.
func ExpectLoadedVersion(plan *commitplan.Plan, p *domain.Product) {
	plan.ExpectVersion(m_product.TableName, spanner.Key{p.ID()}, m_product.ColVersion, p.Version())
}

// AddProductChanges appends the product row update, child row writes and
// deletion of an existing aggregate, in that order.
func AddProductChanges(plan *commitplan.Plan, repo contracts.ProductRepo, p *domain.Product) {
	plan.Add(repo.UpdateMut(p))
	plan.AddAll(repo.ClientPriceMuts(p))
	plan.AddAll(repo.ConfigurationMuts(p))
	plan.Add(repo.DeleteMut(p))
}

// AddOutboxEvents enriches every pending domain event into an outbox row.
func AddOutboxEvents(plan *commitplan.Plan, outbox contracts.OutboxRepo, events []domain.DomainEvent, now time.Time) error {
	for _, ev := range events {
		payload, err := MarshalDomainEventPayload(ev)
		if err != nil {
			return err
		}
		plan.Add(outbox.InsertMut(&contracts.OutboxEvent{
			EventID:       uuid.New().String(),
			EventType:     ev.EventType(),
			AggregateType: AggregateTypeProduct,
			AggregateID:   ev.AggregateID(),
			PayloadJSON:   payload,
			Status:        contracts.OutboxStatusPending,
			CreatedAtUTC:  now,
		}))
	}
	return nil
}
