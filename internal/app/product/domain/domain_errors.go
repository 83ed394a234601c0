package domain

import "errors"

// Domain errors for Product aggregate
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist.
	ErrProductNotFound = errors.New("product not found")

	ErrProductAlreadyActive   = errors.New("product is already active")
	ErrProductAlreadyInactive = errors.New("product is already inactive")

	// ErrConcurrentModification indicates the product changed between read and commit.
	// Callers may retry the whole operation.
	ErrConcurrentModification = errors.New("product was modified concurrently")
)

// Domain errors for Product validation
var (
	ErrEmptyProductName          = errors.New("product name cannot be empty")
	ErrEmptyProductCategory      = errors.New("product category cannot be empty")
	ErrProductNameTooLong        = errors.New("product name exceeds maximum length of 255 characters")
	ErrProductCategoryTooLong    = errors.New("product category exceeds maximum length of 100 characters")
	ErrProductSKUTooLong         = errors.New("product sku exceeds maximum length of 64 characters")
	ErrMissingPrice              = errors.New("price is required")
	ErrNegativePrice             = errors.New("price cannot be negative")
	ErrPriceOutOfRange           = errors.New("price does not fit a 64-bit numerator and denominator")
	ErrInvalidCurrency           = errors.New("currency must be one of AED, USD, EUR")
	ErrInvalidDiscountPercentage = errors.New("discount percentage must be between 0 and 100")
)

// Domain errors for client price records
var (
	ErrMissingClientID    = errors.New("client id is required")
	ErrMissingClientEmail = errors.New("client email is required")

	// ErrInvalidValidityWindow indicates valid-until is not after valid-from.
	ErrInvalidValidityWindow = errors.New("valid until must be after valid from")
)

// Domain errors for configurations
var (
	// ErrConfigurationNotFound indicates a configuration id the product does not offer.
	// This is a missing-entity condition, unrelated to whether a client price exists.
	ErrConfigurationNotFound = errors.New("configuration not found")

	ErrInvalidConfiguration          = errors.New("configuration id and name are required")
	ErrReservedConfigurationID       = errors.New("configuration id \"none\" is reserved")
	ErrDuplicateConfiguration        = errors.New("configuration ids must be unique within a product")
	ErrMultipleDefaultConfigurations = errors.New("at most one configuration can be the default")
)
