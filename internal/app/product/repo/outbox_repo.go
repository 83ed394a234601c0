package repo

import (
	"cloud.google.com/go/spanner"

	contracts "github.com/murkotick/b2b-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/b2b-catalog-service/internal/models/m_outbox"
)

// OutboxRepo is the Spanner implementation of the transactional outbox repository.
// It returns *spanner.Mutation but never applies it.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) *spanner.Mutation {
	if e == nil {
		return nil
	}

	status := e.Status
	if status == "" {
		status = contracts.OutboxStatusPending
	}
	values := m_outbox.BuildInsertMap(
		e.EventID,
		e.EventType,
		e.AggregateType,
		e.AggregateID,
		e.PayloadJSON,
		status,
		e.CreatedAtUTC,
	)
	return m_outbox.InsertMutation(values)
}
