package committer

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"
)

// ErrVersionConflict is returned by Apply when an expectation does not hold,
// including when the expected row no longer exists.
var ErrVersionConflict = errors.New("committer: version conflict")

type Adapter struct {
	client *spanner.Client
}

func NewAdapter(client *spanner.Client) *Adapter {
	return &Adapter{client: client}
}

// Apply runs the plan in a read-write transaction. Expectations are read
// first, so a concurrent writer of the same row makes one of the two
// transactions either abort and re-run or observe the new version.
func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}

	if a.client == nil {
		return fmt.Errorf("committer: spanner client is nil")
	}

	_, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		for _, exp := range plan.Expectations() {
			if err := checkExpectation(ctx, tx, exp); err != nil {
				return err
			}
		}
		return tx.BufferWrite(plan.Mutations())
	})
	return err
}

func checkExpectation(ctx context.Context, tx *spanner.ReadWriteTransaction, exp Expectation) error {
	row, err := tx.ReadRow(ctx, exp.Table, exp.Key, []string{exp.Column})
	if spanner.ErrCode(err) == codes.NotFound {
		return fmt.Errorf("%w: %s %v is gone", ErrVersionConflict, exp.Table, exp.Key)
	}
	if err != nil {
		return err
	}

	var current int64
	if err := row.Columns(&current); err != nil {
		return err
	}
	if current != exp.Version {
		return fmt.Errorf("%w: %s %v at version %d, expected %d", ErrVersionConflict, exp.Table, exp.Key, current, exp.Version)
	}
	return nil
}
