package contracts

import (
	"context"

	commitplan "github.com/murkotick/b2b-catalog-service/internal/pkg/committer"
)

// Committer applies a mutation plan atomically, honoring the plan's version
// expectations. A failed expectation surfaces as commitplan.ErrVersionConflict.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
