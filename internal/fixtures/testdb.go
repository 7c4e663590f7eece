package fixtures

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// NewSeededTestDB opens a database in a temporary directory and loads the
// demo data. The database is closed when the test ends.
func NewSeededTestDB(t testing.TB) (*database.DB, *SeededDataIDs) {
	t.Helper()
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "hrms.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ids, err := Seed(context.Background(), db)
	require.NoError(t, err)
	return db, ids
}
