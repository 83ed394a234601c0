package delete_product

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/repo"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/b2b-catalog-service/internal/pkg/committer"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeReadModel struct {
	product *dto.ProductDTO
	loads   int
}

func (f *fakeReadModel) GetProduct(_ context.Context, id string) (*dto.ProductDTO, error) {
	f.loads++
	if f.product == nil || f.product.ProductID != id {
		return nil, domain.ErrProductNotFound
	}
	return f.product, nil
}

func (f *fakeReadModel) ListProducts(context.Context, dto.ProductFilter, int, int) ([]*dto.ProductDTO, error) {
	return nil, nil
}

func (f *fakeReadModel) ListClientProducts(context.Context, domain.ClientIdentity, dto.ClientProductFilter, int, int) ([]*dto.ProductDTO, error) {
	return nil, nil
}

type fakeCommitter struct {
	errs  []error
	plans []*commitplan.Plan
}

func (f *fakeCommitter) Apply(_ context.Context, plan *commitplan.Plan) error {
	f.plans = append(f.plans, plan)
	if len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return err
}

func setup(t *testing.T, errs ...error) (*fakeReadModel, *fakeCommitter, *Interactor) {
	t.Helper()
	p, err := domain.NewProduct("prod-1", domain.Details{Name: "ThinkPad X1", Category: "laptops"}, domain.NewMoney(4000, 1), now)
	require.NoError(t, err)
	d := dto.FromDomain(p)
	d.Status = string(domain.ProductStatusActive)
	d.Version = 4

	rm := &fakeReadModel{product: d}
	c := &fakeCommitter{errs: errs}
	return rm, c, NewInteractor(repo.NewProductRepo(), repo.NewOutboxRepo(), c, rm, clock.NewFake(now), 3, nil)
}

func conflict() error {
	return fmt.Errorf("%w: products [prod-1] at version 5", commitplan.ErrVersionConflict)
}

func TestExecute_GuardsLoadedVersion(t *testing.T) {
	_, c, it := setup(t)

	require.NoError(t, it.Execute(context.Background(), Request{ProductID: "prod-1"}))

	require.Len(t, c.plans, 1)
	require.Len(t, c.plans[0].Expectations(), 1)
	assert.Equal(t, int64(4), c.plans[0].Expectations()[0].Version)
}

func TestExecute_RetriesOnVersionConflict(t *testing.T) {
	rm, c, it := setup(t, conflict())

	require.NoError(t, it.Execute(context.Background(), Request{ProductID: "prod-1"}))

	assert.Equal(t, 2, rm.loads)
	assert.Len(t, c.plans, 2)
}

func TestExecute_ExhaustedRetriesReportConcurrentModification(t *testing.T) {
	rm, _, it := setup(t, conflict(), conflict(), conflict())

	err := it.Execute(context.Background(), Request{ProductID: "prod-1"})

	assert.ErrorIs(t, err, domain.ErrConcurrentModification)
	assert.Equal(t, 3, rm.loads)
}

func TestExecute_UnknownProduct(t *testing.T) {
	_, c, it := setup(t)

	err := it.Execute(context.Background(), Request{ProductID: "missing"})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, c.plans)
}
