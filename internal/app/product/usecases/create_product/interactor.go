package create_product

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/murkotick/b2b-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	shared "github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/b2b-catalog-service/internal/pkg/committer"
)

// Request is the application-level create-product request.
type Request struct {
	SKU            string
	Name           string
	Description    string
	Category       string
	Brand          string
	Tags           []string
	DefaultPrice   *domain.Money
	Configurations []shared.ConfigurationInput
	ClientPrices   []shared.ClientPriceInput
}

// Interactor implements the create-product usecase following the Golden Mutation pattern.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	Clock       clock.Clock
}

func NewInteractor(prodRepo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: prodRepo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		Clock:       clk,
	}
}

// Execute creates a new product with its optional configurations and client
// prices, and writes outbox events in the same commit.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	// 1. Build domain aggregate
	product, err := domain.NewProduct(uuid.New().String(), domain.Details{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Brand:       req.Brand,
		Tags:        req.Tags,
	}, req.DefaultPrice, now)
	if err != nil {
		return "", err
	}

	if len(req.Configurations) > 0 {
		set, err := shared.BuildConfigurationSet(req.Configurations)
		if err != nil {
			return "", err
		}
		product.ReplaceConfigurations(set, now)
	}
	if len(req.ClientPrices) > 0 {
		newID := func() string { return uuid.New().String() }
		if err := product.ReplaceClientPrices(shared.ClientPriceEntries(req.ClientPrices), newID, now); err != nil {
			return "", err
		}
	}

	// 2. Build commit plan: product row first, children after
	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.InsertMut(product))
	plan.AddAll(it.ProductRepo.ClientPriceMuts(product))
	plan.AddAll(it.ProductRepo.ConfigurationMuts(product))

	// 3. Outbox events
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return "", err
	}

	// 4. Apply plan via Committer
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}

	return product.ID(), nil
}
