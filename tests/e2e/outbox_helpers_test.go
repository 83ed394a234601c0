package e2e

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"

	"github.com/murkotick/b2b-catalog-service/internal/models/m_outbox"
)

type outboxEvent struct {
	EventID       string
	EventType     string
	AggregateType string
	AggregateID   string
	Payload       map[string]any
	Status        string
	CreatedAt     time.Time
}

func mustFetchOutboxEvents(ctx context.Context, t *testing.T, client *spanner.Client, aggregateID string) []outboxEvent {
	t.Helper()
	items, err := fetchOutboxEvents(ctx, client, aggregateID)
	require.NoError(t, err)
	return items
}

// fetchOutboxEvents reads one aggregate's rows, decoding the JSON payloads.
func fetchOutboxEvents(ctx context.Context, client *spanner.Client, aggregateID string) ([]outboxEvent, error) {
	stmt := spanner.Statement{
		SQL: `SELECT event_id, event_type, aggregate_type, aggregate_id, payload, status, created_at
        FROM ` + m_outbox.TableName + `
        WHERE aggregate_id = @id
        ORDER BY created_at ASC, event_id ASC`,
		Params: map[string]any{"id": aggregateID},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]outboxEvent, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var (
			e   outboxEvent
			raw string
		)
		if err := row.Columns(&e.EventID, &e.EventType, &e.AggregateType, &e.AggregateID, &raw, &e.Status, &e.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(raw), &e.Payload); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

func eventTypes(events []outboxEvent) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.EventType)
	}
	return out
}

// lastOfType returns the most recent event of type eventType, or nil.
func lastOfType(events []outboxEvent, eventType string) *outboxEvent {
	var found *outboxEvent
	for i := range events {
		if events[i].EventType == eventType {
			found = &events[i]
		}
	}
	return found
}
