package shared

import (
	"strings"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
)

// ConfigurationInput describes one configuration in an admin create or update.
type ConfigurationInput struct {
	ID          string
	Name        string
	Description string
	Price       *domain.Money
	Specs       map[string]string
	IsDefault   bool
}

// ClientPriceInput is one entry of an admin whole-list client price edit.
type ClientPriceInput struct {
	ClientID    string
	ClientEmail string
	Terms       domain.PriceTerms
}

// BuildConfigurationSet validates inputs into a set. An empty list yields nil.
func BuildConfigurationSet(in []ConfigurationInput) (*domain.ConfigurationSet, error) {
	if len(in) == 0 {
		return nil, nil
	}
	items := make([]*domain.Configuration, 0, len(in))
	for _, c := range in {
		cfg, err := domain.NewConfiguration(c.ID, c.Name, c.Description, c.Price, c.Specs, c.IsDefault)
		if err != nil {
			return nil, err
		}
		items = append(items, cfg)
	}
	return domain.NewConfigurationSet(items...)
}

// ClientPriceEntries converts inputs to domain entries, keeping order.
func ClientPriceEntries(in []ClientPriceInput) []domain.ClientPriceEntry {
	out := make([]domain.ClientPriceEntry, 0, len(in))
	for _, cp := range in {
		out = append(out, domain.ClientPriceEntry{
			Client: domain.ClientIdentity{ID: strings.TrimSpace(cp.ClientID), Email: cp.ClientEmail},
			Terms:  cp.Terms,
		})
	}
	return out
}
