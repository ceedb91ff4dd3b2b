package database

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	testPool     *pgxpool.Pool
	testPoolOnce sync.Once
	testPoolErr  error
)

// TestPool returns a shared database connection pool for testing.
// The pool is created once and reused across all tests, with migrations
// applied on first use. Skips the test if TEST_DATABASE_URL is not set.
func TestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	testPoolOnce.Do(func() {
		ctx := context.Background()
		testPool, testPoolErr = Connect(ctx, dbURL)
		if testPoolErr != nil {
			return
		}
		testPoolErr = RunMigrations(ctx, testPool)
	})

	if testPoolErr != nil {
		t.Fatalf("failed to setup test database: %v", testPoolErr)
	}

	return testPool
}

// TestTx returns a database transaction for testing. The transaction is
// rolled back when the test completes, so tests stay isolated and can run
// in parallel without table cleanup.
func TestTx(t *testing.T) PGXDB {
	t.Helper()

	pool := TestPool(t)
	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return tx
}
