package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/spanner"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/murkotick/b2b-catalog-service/internal/app/cart/adapters"
	cartcontracts "github.com/murkotick/b2b-catalog-service/internal/app/cart/contracts"
	cartrepo "github.com/murkotick/b2b-catalog-service/internal/app/cart/repo"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/usecases/add_item"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/usecases/clear_cart"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/usecases/get_cart"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/usecases/remove_item"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/usecases/toggle_cart"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/usecases/update_quantity"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain/services"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/get_client_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/get_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/list_client_products"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/list_products"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/repo"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/activate_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/create_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/deactivate_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/delete_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/set_client_price"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/update_product"
	"github.com/murkotick/b2b-catalog-service/internal/config"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/auth"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/clock"
	committer "github.com/murkotick/b2b-catalog-service/internal/pkg/committer"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/logging"
	grpccatalog "github.com/murkotick/b2b-catalog-service/internal/transport/grpc/catalog"
	"github.com/murkotick/b2b-catalog-service/internal/transport/grpc/middleware"
	"github.com/murkotick/b2b-catalog-service/internal/transport/http/storefront"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
	logger.Info("server stopped")
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		return fmt.Errorf("spanner.NewClient: %w", err)
	}
	defer client.Close()

	carts, closeCarts, err := newCartRepo(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeCarts()

	clk := clock.RealClock{}
	prodRepo := repo.NewProductRepo()
	outboxRepo := repo.NewOutboxRepo()
	cm := committer.NewAdapter(client)
	readModel := queries.NewSpannerReadModel(client)
	resolver := services.NewPricingResolver()
	verifier := auth.NewVerifier(cfg.JWTSecret)
	attempts := cfg.Pricing.UpsertMaxAttempts

	clientProduct := get_client_product.NewHandler(readModel, resolver, clk)
	lookup := adapters.NewCatalogLookup(clientProduct)

	// CQRS wiring
	cmds := grpccatalog.Commands{
		Create:         create_product.NewInteractor(prodRepo, outboxRepo, cm, clk),
		Update:         update_product.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk, attempts, logger),
		Activate:       activate_product.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk, attempts, logger),
		Deactivate:     deactivate_product.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk, attempts, logger),
		Delete:         delete_product.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk, attempts, logger),
		SetClientPrice: set_client_price.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk, attempts, logger),
	}
	qrys := grpccatalog.Queries{
		Get:           get_product.NewHandler(readModel),
		List:          list_products.NewHandler(readModel),
		ClientProduct: clientProduct,
	}

	// gRPC admin server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		middleware.Logging(logger),
		middleware.AdminAuth(verifier, "/grpc.health.v1.Health/"),
	))
	grpccatalog.RegisterCatalogAdminServer(srv, grpccatalog.NewHandler(cmds, qrys, clk))
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)

	// HTTP storefront
	front := storefront.NewHandler(list_client_products.NewHandler(readModel, resolver, clk), clientProduct, storefront.Cart{
		Get:    get_cart.NewInteractor(carts, lookup, clk, logger),
		Add:    add_item.NewInteractor(carts, lookup, clk, logger),
		Update: update_quantity.NewInteractor(carts, clk),
		Remove: remove_item.NewInteractor(carts, clk),
		Clear:  clear_cart.NewInteractor(carts, clk),
		Toggle: toggle_cart.NewInteractor(carts),
	})
	httpSrv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: storefront.NewRouter(front, verifier, cfg, logger),
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCAddr, err)
	}

	errs := make(chan error, 2)
	go func() {
		logger.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		if err := srv.Serve(lis); err != nil {
			errs <- fmt.Errorf("grpc serve: %w", err)
		}
	}()
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- fmt.Errorf("http serve: %w", err)
		}
	}()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case serveErr = <-errs:
	}
	healthSrv.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		srv.Stop()
	}

	return serveErr
}

func newCartRepo(ctx context.Context, cfg *config.Config, logger *zap.Logger) (cartcontracts.CartRepo, func(), error) {
	if cfg.Redis.Store == "memory" {
		logger.Warn("carts are kept in memory and lost on restart")
		return cartrepo.NewMemoryCartRepo(), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
	}
	logger.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))
	return cartrepo.NewRedisCartRepo(rdb, cfg.Redis.CartTTL), func() { _ = rdb.Close() }, nil
}
