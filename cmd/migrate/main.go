package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/murkotick/b2b-catalog-service/internal/pkg/logging"
)

// migrate applies every migrations/*.sql file, in name order, to a Cloud
// Spanner database (typically the emulator for local dev).
//
// Usage (emulator):
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	export SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate
func main() {
	dir := flag.String("dir", "migrations", "directory holding the DDL files")
	flag.Parse()

	_ = godotenv.Load()
	logger, err := logging.New(os.Getenv("ENV"))
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	db := os.Getenv("SPANNER_DATABASE")
	if db == "" {
		logger.Fatal("SPANNER_DATABASE is required (e.g. projects/test-project/instances/emulator-instance/databases/test-db)")
	}

	stmts, err := readDir(*dir)
	if err != nil {
		logger.Fatal("read DDL", zap.Error(err))
	}
	if len(stmts) == 0 {
		logger.Fatal("no DDL statements found", zap.String("dir", *dir))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		logger.Fatal("database admin client", zap.Error(err))
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		logger.Fatal("UpdateDatabaseDdl", zap.Error(err))
	}
	if err := op.Wait(ctx); err != nil {
		logger.Fatal("UpdateDatabaseDdl wait", zap.Error(err))
	}

	logger.Info("schema applied", zap.Int("statements", len(stmts)), zap.String("database", db))
}

func readDir(dir string) ([]string, error) {
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
		out = append(out, splitStatements(string(b))...)
	}
	return out, nil
}

// splitStatements splits a DDL file on semicolons, dropping blanks and
// full-line "--" comments.
func splitStatements(sql string) []string {
	sql = strings.ReplaceAll(sql, "\r\n", "\n")

	var kept []string
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}

	parts := strings.Split(strings.Join(kept, "\n"), ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if stmt := strings.TrimSpace(p); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
