package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a fresh database file with the full schema applied.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func createTestEmployee(t *testing.T, db *database.DB, number, email string) employee.Employee {
	t.Helper()
	repo := sqlite.NewEmployeeRepository(db)
	e, err := repo.Create(context.Background(), employee.Employee{
		EmployeeNumber: number,
		FirstName:      "Test",
		LastName:       number,
		Email:          strPtr(email),
		HireDate:       strPtr("2024-01-15"),
		Status:         employee.StatusActive,
	})
	require.NoError(t, err)
	return e
}
