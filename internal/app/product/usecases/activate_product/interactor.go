package activate_product

import (
	"context"

	"go.uber.org/zap"

	contracts "github.com/murkotick/b2b-catalog-service/internal/app/product/contracts"
	shared "github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/b2b-catalog-service/internal/pkg/committer"
)

type Request struct {
	ProductID string
}

type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
	MaxAttempts int
	Logger      *zap.Logger
}

func NewInteractor(repo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock, maxAttempts int, logger *zap.Logger) *Interactor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{
		ProductRepo: repo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Clock:       clk,
		MaxAttempts: maxAttempts,
		Logger:      logger,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	return shared.RetryOnConflict(ctx, it.Logger, "activate_product", it.MaxAttempts, func(ctx context.Context) error {
		return it.attempt(ctx, req)
	})
}

func (it *Interactor) attempt(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	product, err := shared.LoadProduct(ctx, it.ReadModel, req.ProductID)
	if err != nil {
		return err
	}

	if err := product.Activate(now); err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	shared.ExpectLoadedVersion(plan, product)
	shared.AddProductChanges(plan, it.ProductRepo, product)
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return err
	}

	return it.Committer.Apply(ctx, plan)
}
