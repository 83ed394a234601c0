package domain

import "errors"

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrCurrencyMismatch = errors.New("cart lines are priced in different currencies")
	ErrMissingClient    = errors.New("cart requires a client id")
)
