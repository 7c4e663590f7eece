package fixtures

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedIfEmpty(t *testing.T) {
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	ctx := context.Background()

	ids, err := SeedIfEmpty(ctx, db, false)
	require.NoError(t, err)
	require.NotNil(t, ids)
	assert.Len(t, ids.DepartmentIDs, 5)
	assert.Len(t, ids.EmployeeIDs, 5)

	admin, err := sqlite.NewUserRepository(db).GetByEmail(ctx, AdminEmail)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(AdminPassword)))
	require.NotNil(t, admin.EmployeeID)
	assert.Equal(t, ids.EmployeeIDs["EMP001"], *admin.EmployeeID)

	hr, err := sqlite.NewDepartmentRepository(db).GetByID(ctx, ids.DepartmentIDs["HR"])
	require.NoError(t, err)
	assert.Equal(t, int64(2), hr.EmployeeCount)

	again, err := SeedIfEmpty(ctx, db, false)
	require.NoError(t, err)
	assert.Nil(t, again)
}
