package e2e

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	database "cloud.google.com/go/spanner/admin/database/apiv1"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instancepb "cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"

	"github.com/murkotick/b2b-catalog-service/internal/app/cart/adapters"
	cartrepo "github.com/murkotick/b2b-catalog-service/internal/app/cart/repo"
	"github.com/murkotick/b2b-catalog-service/internal/app/cart/usecases/add_item"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/domain/services"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/get_client_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/queries/list_client_products"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/repo"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/activate_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/create_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/deactivate_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/delete_product"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/set_client_price"
	"github.com/murkotick/b2b-catalog-service/internal/app/product/usecases/update_product"
	"github.com/murkotick/b2b-catalog-service/internal/pkg/clock"
	committer "github.com/murkotick/b2b-catalog-service/internal/pkg/committer"
)

// upsertAttempts is generous so that concurrent upserts against the
// single-transaction emulator all land.
const upsertAttempts = 20

var (
	spClient *spanner.Client
	clk      *clock.FakeClock

	createUC     *create_product.Interactor
	updateUC     *update_product.Interactor
	activateUC   *activate_product.Interactor
	deactivateUC *deactivate_product.Interactor
	deleteUC     *delete_product.Interactor
	setPriceUC   *set_client_price.Interactor

	readModel     *queries.SpannerReadModel
	clientProduct *get_client_product.Handler
	clientList    *list_client_products.Handler
	addItemUC     *add_item.Interactor

	dbName string
)

func TestMain(m *testing.M) {
	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		fmt.Println("SPANNER_EMULATOR_HOST not set, skipping e2e tests")
		os.Exit(0)
	}

	// Keep time in UTC everywhere.
	now := time.Now().UTC().Truncate(time.Second)
	clk = clock.NewFake(now)

	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
	defer cancel()

	projectID := env("SPANNER_PROJECT_ID", "test-project")
	instanceID := env("SPANNER_INSTANCE_ID", "emulator-instance")
	// Use a unique database per "go test" run to avoid flakiness and id collisions.
	databaseID := fmt.Sprintf("e2e_%s", strings.ReplaceAll(uuid.New().String(), "-", "")[:20])

	parent := fmt.Sprintf("projects/%s", projectID)
	instName := fmt.Sprintf("%s/instances/%s", parent, instanceID)
	dbName = fmt.Sprintf("%s/databases/%s", instName, databaseID)

	instAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		panic(fmt.Sprintf("instance admin client: %v", err))
	}
	defer instAdmin.Close()

	dbAdmin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		panic(fmt.Sprintf("database admin client: %v", err))
	}
	defer dbAdmin.Close()

	ensureInstance(ctx, instAdmin, parent, instName, instanceID)

	stmts, err := readMigrations(filepath.Join("..", "..", "migrations"))
	if err != nil {
		panic(fmt.Sprintf("read migrations: %v", err))
	}
	op, err := dbAdmin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          instName,
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", databaseID),
		ExtraStatements: stmts,
	})
	if err != nil {
		panic(fmt.Sprintf("CreateDatabase: %v", err))
	}
	if _, err := op.Wait(ctx); err != nil {
		panic(fmt.Sprintf("CreateDatabase wait: %v", err))
	}

	spClient, err = spanner.NewClient(ctx, dbName)
	if err != nil {
		panic(fmt.Sprintf("spanner.NewClient: %v", err))
	}

	// Wire dependencies.
	logger := zap.NewNop()
	prodRepo := repo.NewProductRepo()
	outboxRepo := repo.NewOutboxRepo()
	cm := committer.NewAdapter(spClient)
	readModel = queries.NewSpannerReadModel(spClient)
	resolver := services.NewPricingResolver()

	createUC = create_product.NewInteractor(prodRepo, outboxRepo, cm, clk)
	updateUC = update_product.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk, upsertAttempts, logger)
	activateUC = activate_product.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk, upsertAttempts, logger)
	deactivateUC = deactivate_product.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk, upsertAttempts, logger)
	deleteUC = delete_product.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk, upsertAttempts, logger)
	setPriceUC = set_client_price.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk, upsertAttempts, logger)

	clientProduct = get_client_product.NewHandler(readModel, resolver, clk)
	clientList = list_client_products.NewHandler(readModel, resolver, clk)
	addItemUC = add_item.NewInteractor(cartrepo.NewMemoryCartRepo(), adapters.NewCatalogLookup(clientProduct), clk, logger)

	code := m.Run()

	spClient.Close()

	// Best-effort cleanup (emulator only).
	ctx2, cancel2 := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel2()
	_ = dbAdmin.DropDatabase(ctx2, &databasepb.DropDatabaseRequest{Database: dbName})

	os.Exit(code)
}

func ensureInstance(ctx context.Context, admin *instance.InstanceAdminClient, parent, instName, instanceID string) {
	_, err := admin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: instName})
	if err == nil {
		return
	}
	if status.Code(err) != codes.NotFound {
		panic(fmt.Sprintf("GetInstance: %v", err))
	}

	op, err := admin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     parent,
		InstanceId: instanceID,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("%s/instanceConfigs/emulator-config", parent),
			DisplayName: "E2E Test Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) != codes.AlreadyExists {
			panic(fmt.Sprintf("CreateInstance: %v", err))
		}
		return
	}
	if _, err := op.Wait(ctx); err != nil {
		panic(fmt.Sprintf("CreateInstance wait: %v", err))
	}
}

func readMigrations(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var out []string
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		sql := strings.ReplaceAll(string(b), "\r\n", "\n")
		for _, p := range strings.Split(sql, ";") {
			if stmt := strings.TrimSpace(p); stmt != "" {
				out = append(out, stmt)
			}
		}
	}
	return out, nil
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
