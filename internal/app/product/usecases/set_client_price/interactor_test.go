package set_client_price

import (
	"context"
	"errors"
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

// fakeCommitter fails with the queued errors first, then succeeds.
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

func storedProduct(t *testing.T) *dto.ProductDTO {
	t.Helper()
	p, err := domain.NewProduct("prod-1", domain.Details{Name: "ThinkPad X1", Category: "laptops"}, domain.NewMoney(4000, 1), now)
	require.NoError(t, err)
	d := dto.FromDomain(p)
	d.Version = 5
	return d
}

func newInteractor(rm *fakeReadModel, c *fakeCommitter) *Interactor {
	it := NewInteractor(repo.NewProductRepo(), repo.NewOutboxRepo(), c, rm, clock.NewFake(now), 3, nil)
	it.NewID = func() string { return "rec-new" }
	return it
}

func request() Request {
	return Request{
		ProductID:          "prod-1",
		ClientID:           "c1",
		ClientEmail:        "a@x.com",
		Price:              domain.NewMoney(3200, 1),
		DiscountPercentage: 15,
	}
}

func TestExecute_AppendsRecord(t *testing.T) {
	rm := &fakeReadModel{product: storedProduct(t)}
	c := &fakeCommitter{}

	res, err := newInteractor(rm, c).Execute(context.Background(), request())
	require.NoError(t, err)

	assert.False(t, res.Replaced)
	assert.Equal(t, "rec-new", res.Record.RecordID)
	assert.Equal(t, "AED", res.Record.Currency)
	assert.Equal(t, int64(15), res.Record.DiscountPercent)

	require.Len(t, c.plans, 1)
	plan := c.plans[0]
	// product row version bump, one record row, one outbox row
	assert.Len(t, plan.Mutations(), 3)
	require.Len(t, plan.Expectations(), 1)
	assert.Equal(t, int64(5), plan.Expectations()[0].Version)
}

func TestExecute_ReplacesExistingRecord(t *testing.T) {
	stored := storedProduct(t)
	stored.ClientPrices = []*dto.ClientPriceDTO{{
		RecordID: "rec-old", ClientID: "c1", ClientEmail: "a@x.com",
		PriceNum: 3000, PriceDen: 1, Currency: "USD", DiscountPercent: 5,
	}}
	rm := &fakeReadModel{product: stored}

	res, err := newInteractor(rm, &fakeCommitter{}).Execute(context.Background(), request())
	require.NoError(t, err)

	assert.True(t, res.Replaced)
	assert.Equal(t, "rec-old", res.Record.RecordID)
	assert.Equal(t, "AED", res.Record.Currency)
}

func TestExecute_RetriesOnVersionConflict(t *testing.T) {
	rm := &fakeReadModel{product: storedProduct(t)}
	c := &fakeCommitter{errs: []error{commitplan.ErrVersionConflict}}

	_, err := newInteractor(rm, c).Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, 2, rm.loads)
	assert.Len(t, c.plans, 2)
}

func TestExecute_GivesUpAfterMaxAttempts(t *testing.T) {
	rm := &fakeReadModel{product: storedProduct(t)}
	conflict := commitplan.ErrVersionConflict
	c := &fakeCommitter{errs: []error{conflict, conflict, conflict, conflict}}

	_, err := newInteractor(rm, c).Execute(context.Background(), request())

	assert.ErrorIs(t, err, domain.ErrConcurrentModification)
	assert.Equal(t, 3, rm.loads)
}

func TestExecute_OtherCommitErrorsAreNotRetried(t *testing.T) {
	rm := &fakeReadModel{product: storedProduct(t)}
	boom := errors.New("boom")
	c := &fakeCommitter{errs: []error{boom}}

	_, err := newInteractor(rm, c).Execute(context.Background(), request())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, rm.loads)
}

func TestExecute_ValidationErrorCommitsNothing(t *testing.T) {
	rm := &fakeReadModel{product: storedProduct(t)}
	c := &fakeCommitter{}
	req := request()
	req.DiscountPercentage = 150

	_, err := newInteractor(rm, c).Execute(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInvalidDiscountPercentage)
	assert.Empty(t, c.plans)
}

func TestExecute_UnknownProduct(t *testing.T) {
	rm := &fakeReadModel{product: storedProduct(t)}
	req := request()
	req.ProductID = "missing"

	_, err := newInteractor(rm, &fakeCommitter{}).Execute(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
