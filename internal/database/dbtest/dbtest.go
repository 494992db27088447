// Package dbtest connects store tests to a throwaway PostgreSQL database.
package dbtest

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/MrJamesThe3rd/invoicedash/internal/database"
)

// Open returns a migrated, emptied database from TEST_DATABASE_URL and skips
// the test when none is reachable.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("Skipping test: TEST_DATABASE_URL not set")
	}

	db, err := database.New(dbURL, 5)
	if err != nil {
		t.Skipf("Skipping test: cannot connect to test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	if _, err := db.ExecContext(ctx, "TRUNCATE TABLE invoices, customers, users, revenue"); err != nil {
		t.Fatalf("cleaning test database: %v", err)
	}

	return db
}
