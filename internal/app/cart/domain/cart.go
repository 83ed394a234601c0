package domain

import (
	"time"

	catalog "github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
)

// Cart is one client's session cart. Lines keep insertion order.
type Cart struct {
	clientID  string
	lines     []*Line
	open      bool
	updatedAt time.Time
}

// NewCart returns an empty, closed cart.
func NewCart(clientID string) (*Cart, error) {
	if clientID == "" {
		return nil, ErrMissingClient
	}
	return &Cart{clientID: clientID}, nil
}

// ReconstructCart rebuilds a cart from storage without validation.
func ReconstructCart(clientID string, lines []*Line, open bool, updatedAt time.Time) *Cart {
	c := &Cart{clientID: clientID, open: open, updatedAt: updatedAt}
	for _, l := range lines {
		c.lines = append(c.lines, l.clone())
	}
	return c
}

func (c *Cart) ClientID() string     { return c.clientID }
func (c *Cart) IsOpen() bool         { return c.open }
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }
func (c *Cart) IsEmpty() bool        { return len(c.lines) == 0 }

// Lines returns copies of the lines in insertion order.
func (c *Cart) Lines() []*Line {
	out := make([]*Line, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, l.clone())
	}
	return out
}

func (c *Cart) Line(productID, configurationID string) (*Line, bool) {
	i := c.find(NewLineKey(productID, configurationID))
	if i < 0 {
		return nil, false
	}
	return c.lines[i].clone(), true
}

// AddItem adds quantity units of item in the given configuration. If a line
// with the same key exists its quantity grows and its price snapshot is
// refreshed; otherwise a new line is appended.
func (c *Cart) AddItem(item Item, quantity int, configurationID string, now time.Time) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	unit, currency, source, err := item.unitPrice(configurationID)
	if err != nil {
		return err
	}

	key := NewLineKey(item.ProductID, configurationID)
	if i := c.find(key); i >= 0 {
		l := c.lines[i]
		l.Quantity += quantity
		l.ProductName = item.ProductName
		l.UnitPrice, l.Currency, l.PriceSource = unit, currency, source
	} else {
		c.lines = append(c.lines, &Line{
			ProductID:       key.ProductID,
			ProductName:     item.ProductName,
			ConfigurationID: key.ConfigurationID,
			Quantity:        quantity,
			UnitPrice:       unit,
			Currency:        currency,
			PriceSource:     source,
		})
	}
	c.updatedAt = now
	return nil
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less removes
// the line. Unknown lines are ignored.
func (c *Cart) UpdateQuantity(productID, configurationID string, quantity int, now time.Time) {
	i := c.find(NewLineKey(productID, configurationID))
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.removeAt(i)
	} else {
		c.lines[i].Quantity = quantity
	}
	c.updatedAt = now
}

// RemoveItem drops a line. Unknown lines are ignored.
func (c *Cart) RemoveItem(productID, configurationID string, now time.Time) {
	if i := c.find(NewLineKey(productID, configurationID)); i >= 0 {
		c.removeAt(i)
		c.updatedAt = now
	}
}

// RemoveProduct drops every line of a product regardless of configuration.
func (c *Cart) RemoveProduct(productID string, now time.Time) int {
	kept := c.lines[:0]
	removed := 0
	for _, l := range c.lines {
		if l.ProductID == productID {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	c.lines = kept
	if removed > 0 {
		c.updatedAt = now
	}
	return removed
}

func (c *Cart) Clear(now time.Time) {
	c.lines = nil
	c.updatedAt = now
}

// Reprice refreshes the snapshots of item's lines from a fresh resolution.
// Lines whose configuration no longer exists are dropped; their count is returned.
func (c *Cart) Reprice(item Item, now time.Time) int {
	kept := c.lines[:0]
	dropped := 0
	for _, l := range c.lines {
		if l.ProductID != item.ProductID {
			kept = append(kept, l)
			continue
		}
		unit, currency, source, err := item.unitPrice(l.ConfigurationID)
		if err != nil {
			dropped++
			continue
		}
		l.ProductName = item.ProductName
		l.UnitPrice, l.Currency, l.PriceSource = unit, currency, source
		kept = append(kept, l)
	}
	c.lines = kept
	c.updatedAt = now
	return dropped
}

// Toggle flips the display flag of the cart.
func (c *Cart) Toggle() { c.open = !c.open }

func (c *Cart) Close() { c.open = false }

// TotalItems is the sum of line quantities.
func (c *Cart) TotalItems() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Total sums unit price times quantity over all lines. Lines in different
// currencies cannot be summed and yield ErrCurrencyMismatch. An empty cart
// totals zero in the base currency.
func (c *Cart) Total() (*catalog.Money, catalog.Currency, error) {
	total := catalog.Zero()
	if len(c.lines) == 0 {
		return total, catalog.BaseCurrency, nil
	}

	currency := c.lines[0].Currency
	for _, l := range c.lines {
		if l.Currency != currency {
			return nil, "", ErrCurrencyMismatch
		}
		total = total.Add(l.Subtotal())
	}
	return total, currency, nil
}

func (c *Cart) find(key LineKey) int {
	for i, l := range c.lines {
		if l.Key() == key {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}
