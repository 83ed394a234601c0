package catalog

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/b2b-catalog-service/internal/transport/apperr"
)

// mapError translates application errors into gRPC status codes.
// A lost version race becomes Aborted, which clients treat as retryable.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var code codes.Code
	switch apperr.Classify(err) {
	case apperr.KindInvalid:
		code = codes.InvalidArgument
	case apperr.KindNotFound:
		code = codes.NotFound
	case apperr.KindConflict:
		code = codes.Aborted
	case apperr.KindPrecondition:
		code = codes.FailedPrecondition
	case apperr.KindUnauthenticated:
		code = codes.Unauthenticated
	case apperr.KindForbidden:
		code = codes.PermissionDenied
	case apperr.KindCanceled:
		code = codes.Canceled
	case apperr.KindDeadline:
		code = codes.DeadlineExceeded
	default:
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}
