package update_product

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	contracts "github.com/murkotick/b2b-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	shared "github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/b2b-catalog-service/internal/pkg/committer"
)

// Request represents an admin edit. Nil fields are left untouched; a non-nil
// ClientPrices or Configurations replaces the whole list (empty clears it).
type Request struct {
	ProductID      string
	SKU            *string
	Name           *string
	Description    *string
	Category       *string
	Brand          *string
	Tags           *[]string
	DefaultPrice   *domain.Money
	ClientPrices   *[]shared.ClientPriceInput
	Configurations *[]shared.ConfigurationInput
}

// Interactor applies admin edits using the Golden Mutation Pattern, retrying
// on concurrent modification.
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
	return shared.RetryOnConflict(ctx, it.Logger, "update_product", it.MaxAttempts, func(ctx context.Context) error {
		return it.attempt(ctx, req)
	})
}

func (it *Interactor) attempt(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	// 1. Load aggregate via read model
	product, err := shared.LoadProduct(ctx, it.ReadModel, req.ProductID)
	if err != nil {
		return err
	}

	// 2. Domain calls
	details := product.Details()
	if req.SKU != nil {
		details.SKU = *req.SKU
	}
	if req.Name != nil {
		details.Name = *req.Name
	}
	if req.Description != nil {
		details.Description = *req.Description
	}
	if req.Category != nil {
		details.Category = *req.Category
	}
	if req.Brand != nil {
		details.Brand = *req.Brand
	}
	if req.Tags != nil {
		details.Tags = *req.Tags
	}
	if err := product.UpdateDetails(details, now); err != nil {
		return err
	}

	if req.DefaultPrice != nil {
		if err := product.UpdateDefaultPrice(req.DefaultPrice, now); err != nil {
			return err
		}
	}

	if req.ClientPrices != nil {
		newID := func() string { return uuid.New().String() }
		if err := product.ReplaceClientPrices(shared.ClientPriceEntries(*req.ClientPrices), newID, now); err != nil {
			return err
		}
	}

	if req.Configurations != nil {
		set, err := shared.BuildConfigurationSet(*req.Configurations)
		if err != nil {
			return err
		}
		product.ReplaceConfigurations(set, now)
	}

	if !product.HasChanges() {
		return nil
	}

	// 3. Build commit plan guarded by the loaded version
	plan := commitplan.NewPlan()
	shared.ExpectLoadedVersion(plan, product)
	shared.AddProductChanges(plan, it.ProductRepo, product)

	// 4. Outbox events
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return err
	}

	// 5. Apply plan
	return it.Committer.Apply(ctx, plan)
}
