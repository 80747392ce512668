package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/planner-app/planner/testutil"
)

// TestMain migrates the test database once per binary. Without
// TEST_DATABASE_URL every test skips itself via testutil.NewPool.
func TestMain(m *testing.M) {
	if dsn := os.Getenv(testutil.EnvDSN); dsn != "" {
		if err := testutil.MigrateUp(context.Background(), dsn); err != nil {
			log.Fatalf("TestMain: %v", err)
		}
	}
	os.Exit(m.Run())
}
