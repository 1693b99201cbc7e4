//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/vendapp/vendapp/internal/testutil"
)

// newRepoTestEnv connects to the test database, serializes against other
// DB tests, and resets the schema. Skipped unless DATABASE_URL is set.
func newRepoTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetCoreSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset core schema: %v", err)
	}

	return ctx, repo
}

// seedClient inserts a client and returns its id.
func seedClient(ctx context.Context, t *testing.T, repo *Repository) int {
	t.Helper()
	client := testutil.NewTestClient(t)
	if err := repo.CreateClient(ctx, client); err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return client.ID
}

// seedProduct inserts a product and returns its id.
func seedProduct(ctx context.Context, t *testing.T, repo *Repository, price float64) int {
	t.Helper()
	product := testutil.NewTestProduct(t, price)
	if err := repo.CreateProduct(ctx, product); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product.ID
}

// countRows returns the row count of the given table.
func countRows(ctx context.Context, t *testing.T, repo *Repository, table string) int {
	t.Helper()
	var n int
	if err := repo.Pool().QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
