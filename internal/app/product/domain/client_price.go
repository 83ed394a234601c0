package domain

import (
	"strings"
	"time"
)

// ClientPriceRecord is a negotiated price for one client on one product.
//
// A record matches a client when either its client id or its email equals the
// client's. The record id is stable: replacing a record's terms keeps it.
type ClientPriceRecord struct {
	id          string
	position    int64
	clientID    string
	clientEmail string
	price       *Money
	currency    Currency
	discount    Discount
	validFrom   time.Time
	validUntil  *time.Time
}

// PriceTerms is the input of a client price upsert. Zero values take defaults:
// BaseCurrency, no discount, valid from the time of the upsert, no expiry.
type PriceTerms struct {
	Price              *Money
	Currency           Currency
	DiscountPercentage int
	ValidFrom          *time.Time
	ValidUntil         *time.Time
}

func newClientPriceRecord(id string, position int64, who ClientIdentity, terms PriceTerms, now time.Time) (*ClientPriceRecord, error) {
	clientID := strings.TrimSpace(who.ID)
	if clientID == "" {
		return nil, ErrMissingClientID
	}
	email := normalizeEmail(who.Email)
	if email == "" {
		return nil, ErrMissingClientEmail
	}
	if err := validatePrice(terms.Price); err != nil {
		return nil, err
	}

	currency := BaseCurrency
	if terms.Currency != "" {
		c, err := ParseCurrency(string(terms.Currency))
		if err != nil {
			return nil, err
		}
		currency = c
	}

	discount, err := NewDiscount(terms.DiscountPercentage)
	if err != nil {
		return nil, err
	}

	validFrom := now
	if terms.ValidFrom != nil {
		validFrom = *terms.ValidFrom
	}
	var validUntil *time.Time
	if terms.ValidUntil != nil {
		if !terms.ValidUntil.After(validFrom) {
			return nil, ErrInvalidValidityWindow
		}
		until := *terms.ValidUntil
		validUntil = &until
	}

	return &ClientPriceRecord{
		id:          id,
		position:    position,
		clientID:    clientID,
		clientEmail: email,
		price:       terms.Price,
		currency:    currency,
		discount:    discount,
		validFrom:   validFrom,
		validUntil:  validUntil,
	}, nil
}

// ReconstructClientPriceRecord rebuilds a record from persisted state without validation.
func ReconstructClientPriceRecord(
	id string,
	position int64,
	clientID, clientEmail string,
	price *Money,
	currency Currency,
	discountPercent int,
	validFrom time.Time,
	validUntil *time.Time,
) *ClientPriceRecord {
	return &ClientPriceRecord{
		id:          id,
		position:    position,
		clientID:    clientID,
		clientEmail: clientEmail,
		price:       price,
		currency:    currency,
		discount:    Discount{percent: discountPercent},
		validFrom:   validFrom,
		validUntil:  validUntil,
	}
}

func (r *ClientPriceRecord) ID() string             { return r.id }
func (r *ClientPriceRecord) Position() int64        { return r.position }
func (r *ClientPriceRecord) ClientID() string       { return r.clientID }
func (r *ClientPriceRecord) ClientEmail() string    { return r.clientEmail }
func (r *ClientPriceRecord) Price() *Money          { return r.price }
func (r *ClientPriceRecord) Currency() Currency     { return r.currency }
func (r *ClientPriceRecord) Discount() Discount     { return r.discount }
func (r *ClientPriceRecord) ValidFrom() time.Time   { return r.validFrom }
func (r *ClientPriceRecord) ValidUntil() *time.Time { return r.validUntil }

// Matches reports whether the record belongs to who, by id or by email.
func (r *ClientPriceRecord) Matches(who ClientIdentity) bool {
	if id := strings.TrimSpace(who.ID); id != "" && r.clientID == id {
		return true
	}
	if email := normalizeEmail(who.Email); email != "" && r.clientEmail == email {
		return true
	}
	return false
}

// IsExpiredAt reports whether valid-until lies strictly before now.
// A record whose valid-until equals now still applies.
func (r *ClientPriceRecord) IsExpiredAt(now time.Time) bool {
	return r.validUntil != nil && r.validUntil.Before(now)
}

// IsEffectiveAt reports whether the record applies at now.
func (r *ClientPriceRecord) IsEffectiveAt(now time.Time) bool {
	if !r.validFrom.IsZero() && now.Before(r.validFrom) {
		return false
	}
	return !r.IsExpiredAt(now)
}

// DiscountedPrice returns price * (1 - discount/100).
func (r *ClientPriceRecord) DiscountedPrice() *Money {
	return r.discount.ApplyTo(r.price)
}
