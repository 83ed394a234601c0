package shared

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	commitplan "github.com/murkotick/b2b-catalog-service/internal/pkg/committer"
)

// DefaultMaxAttempts bounds read-modify-commit retries when no limit is configured.
const DefaultMaxAttempts = 3

// RetryOnConflict runs attempt until it stops failing with a version conflict
// or maxAttempts is reached. Each attempt must re-read the aggregate.
// Exhaustion is reported as domain.ErrConcurrentModification.
func RetryOnConflict(ctx context.Context, log *zap.Logger, op string, maxAttempts int, attempt func(ctx context.Context) error) error {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	for i := 1; i <= maxAttempts; i++ {
		err := attempt(ctx)
		if !errors.Is(err, commitplan.ErrVersionConflict) {
			return err
		}
		log.Warn("concurrent modification",
			zap.String("op", op),
			zap.Int("attempt", i),
			zap.Int("max_attempts", maxAttempts),
			zap.Error(err),
		)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return fmt.Errorf("%s: %w after %d attempts", op, domain.ErrConcurrentModification, maxAttempts)
}
