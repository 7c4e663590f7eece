package sqlite_test

import (
	"context"
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndPrincipal(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewUserRepository(db)
	emp := createTestEmployee(t, db, "EMP00000001", "jane@example.com")

	created, err := repo.Create(ctx, user.User{
		Email:        "jane@example.com",
		PasswordHash: "hash",
		Role:         user.RoleManager,
		EmployeeID:   &emp.ID,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	p, err := repo.GetPrincipal(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleManager, p.Role)
	require.NotNil(t, p.EmployeeID)
	assert.Equal(t, emp.ID, *p.EmployeeID)
	require.NotNil(t, p.FirstName)
	assert.Equal(t, "Test", *p.FirstName)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := repo.Create(ctx, user.User{Email: "jane@example.com", PasswordHash: "x", Role: user.RoleEmployee})
		assert.ErrorIs(t, err, user.ErrUserEmailExists)
	})

	t.Run("inactive user has no principal", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(ctx, created.ID, false))
		_, err := repo.GetPrincipal(ctx, created.ID)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.ErrorIs(t, repo.UpdateLastLogin(ctx, 9999), user.ErrUserNotFound)
	})
}

func TestUserRepository_Profile(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewUserRepository(db)

	u, err := repo.Create(ctx, user.User{Email: "nolink@example.com", PasswordHash: "x", Role: user.RoleFinance})
	require.NoError(t, err)

	profile, err := repo.GetProfile(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, profile.EmployeeNumber)
	assert.Nil(t, profile.DepartmentName)
	assert.Equal(t, "nolink@example.com", profile.Email)
}
