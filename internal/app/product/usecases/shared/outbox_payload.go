package shared

import (
	"encoding/json"
	"fmt"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/utils"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload suitable for the outbox.
//
// Money goes out as numerator/denominator plus a display string so consumers
// never have to parse floats.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	var payload map[string]interface{}
	switch e := ev.(type) {
	case *domain.ProductCreatedEvent:
		payload = map[string]interface{}{
			"product_id":    e.ProductID,
			"sku":           e.SKU,
			"name":          e.Name,
			"category":      e.Category,
			"default_price": money(e.DefaultPrice),
			"created_at":    utils.FormatTime(e.CreatedAt),
		}

	case *domain.ProductUpdatedEvent:
		payload = map[string]interface{}{
			"product_id": e.ProductID,
			"changes":    e.Changes,
			"updated_at": utils.FormatTime(e.UpdatedAt),
		}

	case *domain.ProductActivatedEvent:
		payload = map[string]interface{}{
			"product_id":   e.ProductID,
			"activated_at": utils.FormatTime(e.ActivatedAt),
		}

	case *domain.ProductDeactivatedEvent:
		payload = map[string]interface{}{
			"product_id":     e.ProductID,
			"deactivated_at": utils.FormatTime(e.DeactivatedAt),
		}

	case *domain.ProductDeletedEvent:
		payload = map[string]interface{}{
			"product_id": e.ProductID,
			"deleted_at": utils.FormatTime(e.DeletedAt),
		}

	case *domain.DefaultPriceChangedEvent:
		payload = map[string]interface{}{
			"product_id": e.ProductID,
			"old_price":  money(e.OldPrice),
			"new_price":  money(e.NewPrice),
			"changed_at": utils.FormatTime(e.ChangedAt),
		}

	case *domain.ClientPriceSetEvent:
		payload = map[string]interface{}{
			"product_id":           e.ProductID,
			"record_id":            e.RecordID,
			"client_id":            e.ClientID,
			"client_email":         e.ClientEmail,
			"price":                money(e.Price),
			"currency":             string(e.Currency),
			"discount_percentage":  e.DiscountPercent,
			"valid_from":           utils.FormatTime(e.ValidFrom),
			"valid_until":          utils.FormatTimePtr(e.ValidUntil),
			"replaced":             e.Replaced,
			"collapsed_record_ids": e.CollapsedRecordIDs,
			"set_at":               utils.FormatTime(e.SetAt),
		}

	case *domain.ClientPricesReplacedEvent:
		payload = map[string]interface{}{
			"product_id":   e.ProductID,
			"record_count": e.RecordCount,
			"replaced_at":  utils.FormatTime(e.ReplacedAt),
		}

	case *domain.ConfigurationsReplacedEvent:
		payload = map[string]interface{}{
			"product_id":        e.ProductID,
			"configuration_ids": e.ConfigurationIDs,
			"replaced_at":       utils.FormatTime(e.ReplacedAt),
		}

	default:
		// Fallback: try to marshal the event directly.
		b, err := json.Marshal(ev)
		if err != nil {
			return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
		}
		return string(b), nil
	}

	payload["event_type"] = ev.EventType()
	payload["occurred_at"] = utils.FormatTime(ev.OccurredAt())
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %s: %w", ev.EventType(), err)
	}
	return string(b), nil
}

func money(m *domain.Money) map[string]interface{} {
	if m == nil {
		return nil
	}
	return map[string]interface{}{
		"numerator":   m.Numerator(),
		"denominator": m.Denominator(),
		"amount":      m.String(),
	}
}
