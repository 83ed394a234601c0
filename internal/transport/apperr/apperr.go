// Package apperr classifies application errors for the transports.
package apperr

import (
	"context"
	"errors"

	cartdomain "github.com/murkotick/b2b-catalog-service/internal/app/cart/domain"
	cartrepo "github.com/murkotick/b2b-catalog-service/internal/app/cart/repo"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/auth"
	commitplan "github.com/murkotick/b2b-catalog-service/internal/pkg/committer"
)

type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindNotFound
	KindConflict
	KindPrecondition
	KindUnauthenticated
	KindForbidden
	KindCanceled
	KindDeadline
)

var invalid = []error{
	domain.ErrEmptyProductName,
	domain.ErrEmptyProductCategory,
	domain.ErrProductNameTooLong,
	domain.ErrProductCategoryTooLong,
	domain.ErrProductSKUTooLong,
	domain.ErrMissingPrice,
	domain.ErrNegativePrice,
	domain.ErrPriceOutOfRange,
	domain.ErrInvalidCurrency,
	domain.ErrInvalidDiscountPercentage,
	domain.ErrMissingClientID,
	domain.ErrMissingClientEmail,
	domain.ErrInvalidValidityWindow,
	domain.ErrInvalidConfiguration,
	domain.ErrReservedConfigurationID,
	domain.ErrDuplicateConfiguration,
	domain.ErrMultipleDefaultConfigurations,
	cartdomain.ErrInvalidQuantity,
	cartdomain.ErrMissingClient,
}

var notFound = []error{
	domain.ErrProductNotFound,
	domain.ErrConfigurationNotFound,
}

var conflict = []error{
	domain.ErrConcurrentModification,
	cartrepo.ErrCartBusy,
	commitplan.ErrVersionConflict,
}

var precondition = []error{
	domain.ErrProductAlreadyActive,
	domain.ErrProductAlreadyInactive,
	cartdomain.ErrCurrencyMismatch,
}

// Classify returns the kind of err. Unrecognized errors are KindInternal.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return KindDeadline
	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, auth.ErrInvalidToken):
		return KindUnauthenticated
	case errors.Is(err, auth.ErrForbidden):
		return KindForbidden
	case isAny(err, notFound):
		return KindNotFound
	case isAny(err, invalid):
		return KindInvalid
	case isAny(err, conflict):
		return KindConflict
	case isAny(err, precondition):
		return KindPrecondition
	}
	return KindInternal
}

// Retryable reports whether the caller may repeat the request unchanged.
func Retryable(err error) bool {
	return Classify(err) == KindConflict
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
