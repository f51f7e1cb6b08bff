package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/Liam44/Dios-sub002/migrations"
	"github.com/Liam44/Dios-sub002/testutil"
)

// TestMain applies all pending migrations to the test database once for the
// whole test binary, so individual tests never need to think about schema state.
func TestMain(m *testing.M) {
	if os.Getenv(testutil.DSNEnv) == "" {
		// No test DB configured; the tests skip themselves.
		os.Exit(m.Run())
	}

	// TestMain has no *testing.T, so open the database by hand.
	db := testutil.MustOpenSQLDB(os.Getenv(testutil.DSNEnv))

	if _, err := migrations.Up(context.Background(), db); err != nil {
		db.Close()
		log.Fatalf("TestMain: %v", err)
	}
	db.Close()

	os.Exit(m.Run())
}
