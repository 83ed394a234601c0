package set_client_price

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	contracts "github.com/murkotick/b2b-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/dto"
	shared "github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/shared"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/b2b-catalog-service/internal/pkg/committer"
)

// Request upserts one client's negotiated price on a product.
// Optional fields left zero take their defaults, not the previous values.
type Request struct {
	ProductID          string
	ClientID           string
	ClientEmail        string
	Price              *domain.Money
	Currency           string
	DiscountPercentage int
	ValidFrom          *time.Time
	ValidUntil         *time.Time
}

type Result struct {
	Record *dto.ClientPriceDTO
	// Replaced is false when a new record was appended.
	Replaced bool
}

// Interactor is the price record upsert. Only the affected record row is
// written; the product version check makes concurrent upserts on the same
// product serialize through retries instead of overwriting each other.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
	MaxAttempts int
	Logger      *zap.Logger
	NewID       func() string
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
		NewID:       func() string { return uuid.New().String() },
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*Result, error) {
	who := domain.ClientIdentity{ID: req.ClientID, Email: req.ClientEmail}
	terms := domain.PriceTerms{
		Price:              req.Price,
		Currency:           domain.Currency(req.Currency),
		DiscountPercentage: req.DiscountPercentage,
		ValidFrom:          req.ValidFrom,
		ValidUntil:         req.ValidUntil,
	}

	var result *Result
	err := shared.RetryOnConflict(ctx, it.Logger, "set_client_price", it.MaxAttempts, func(ctx context.Context) error {
		r, err := it.attempt(ctx, req.ProductID, who, terms)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	it.Logger.Info("client price set",
		zap.String("product_id", req.ProductID),
		zap.String("record_id", result.Record.RecordID),
		zap.String("client_id", result.Record.ClientID),
		zap.Bool("replaced", result.Replaced),
	)
	return result, nil
}

func (it *Interactor) attempt(ctx context.Context, productID string, who domain.ClientIdentity, terms domain.PriceTerms) (*Result, error) {
	now := it.Clock.Now()

	// 1. Load aggregate
	product, err := shared.LoadProduct(ctx, it.ReadModel, productID)
	if err != nil {
		return nil, err
	}
	_, existed := product.ClientPriceFor(who)

	// 2. Domain call
	record, err := product.SetClientPrice(who, terms, it.NewID(), now)
	if err != nil {
		return nil, err
	}

	// 3. Build commit plan guarded by the version the upsert was computed from
	plan := commitplan.NewPlan()
	shared.ExpectLoadedVersion(plan, product)
	shared.AddProductChanges(plan, it.ProductRepo, product)

	// 4. Outbox events
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return nil, err
	}

	// 5. Apply plan
	if err := it.Committer.Apply(ctx, plan); err != nil {
		return nil, err
	}

	return &Result{Record: dto.ClientPriceFromDomain(record), Replaced: existed}, nil
}
