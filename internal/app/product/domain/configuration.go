package domain

import "strings"

// NoConfigurationID stands for "no configuration" in cart line keys, so no
// configuration may use it as its id.
const NoConfigurationID = "none"

// Configuration is a purchasable variant of a product. Its price is the absolute
// unit price in the base currency, not a surcharge on the default price.
type Configuration struct {
	id          string
	name        string
	description string
	price       *Money
	specs       map[string]string
	isDefault   bool
}

func NewConfiguration(id, name, description string, price *Money, specs map[string]string, isDefault bool) (*Configuration, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" || name == "" {
		return nil, ErrInvalidConfiguration
	}
	if strings.EqualFold(id, NoConfigurationID) {
		return nil, ErrReservedConfigurationID
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	return &Configuration{
		id:          id,
		name:        name,
		description: strings.TrimSpace(description),
		price:       price,
		specs:       copySpecs(specs),
		isDefault:   isDefault,
	}, nil
}

// ReconstructConfiguration rebuilds a configuration from persisted state without validation.
func ReconstructConfiguration(id, name, description string, price *Money, specs map[string]string, isDefault bool) *Configuration {
	return &Configuration{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		specs:       copySpecs(specs),
		isDefault:   isDefault,
	}
}

func (c *Configuration) ID() string          { return c.id }
func (c *Configuration) Name() string        { return c.name }
func (c *Configuration) Description() string { return c.description }
func (c *Configuration) Price() *Money       { return c.price }
func (c *Configuration) IsDefault() bool     { return c.isDefault }

// Specs returns a copy of the spec fields (processor, memory, ...).
func (c *Configuration) Specs() map[string]string {
	return copySpecs(c.specs)
}

func copySpecs(specs map[string]string) map[string]string {
	out := make(map[string]string, len(specs))
	for k, v := range specs {
		out[k] = v
	}
	return out
}

// ConfigurationSet is the ordered set of configurations a product offers.
// A nil set behaves as empty.
type ConfigurationSet struct {
	items []*Configuration
}

func NewConfigurationSet(items ...*Configuration) (*ConfigurationSet, error) {
	seen := make(map[string]bool, len(items))
	defaults := 0
	for _, c := range items {
		if seen[c.id] {
			return nil, ErrDuplicateConfiguration
		}
		seen[c.id] = true
		if c.isDefault {
			defaults++
		}
	}
	if defaults > 1 {
		return nil, ErrMultipleDefaultConfigurations
	}
	return &ConfigurationSet{items: append([]*Configuration(nil), items...)}, nil
}

// Find looks a configuration up by id.
func (s *ConfigurationSet) Find(id string) (*Configuration, bool) {
	if s == nil {
		return nil, false
	}
	for _, c := range s.items {
		if c.id == id {
			return c, true
		}
	}
	return nil, false
}

// Default returns the configuration to pre-select: the flagged one, else the first.
// It has no effect on pricing.
func (s *ConfigurationSet) Default() *Configuration {
	if s == nil || len(s.items) == 0 {
		return nil
	}
	for _, c := range s.items {
		if c.isDefault {
			return c
		}
	}
	return s.items[0]
}

func (s *ConfigurationSet) All() []*Configuration {
	if s == nil {
		return nil
	}
	return append([]*Configuration(nil), s.items...)
}

func (s *ConfigurationSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}
