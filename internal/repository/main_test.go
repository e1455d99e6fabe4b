//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tribelet/kit-service/internal/testutil"
)

// TestMain shares a single MongoDB container across the package's
// integration tests; one container per test is prohibitively slow.
func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithSharedMongoDB(context.Background(), m))
}

// setupTestDB connects to the shared container using a unique database
// name for test isolation.
func setupTestDB(t *testing.T) *MongoDB {
	t.Helper()
	db, err := NewMongoDB(testutil.SharedMongoDBURI(), testutil.UniqueDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(context.Background())
	})
	return db
}
