package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := sqlite.WithTransaction(ctx, db, func(txCtx context.Context) error {
		_, err := repo.Create(txCtx, user.User{Email: "tx@example.com", PasswordHash: "x", Role: user.RoleEmployee})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.GetByEmail(ctx, "tx@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestWithTransaction_Commits(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	err := sqlite.WithTransaction(ctx, db, func(txCtx context.Context) error {
		_, err := repo.Create(txCtx, user.User{Email: "ok@example.com", PasswordHash: "x", Role: user.RoleHR})
		return err
	})
	require.NoError(t, err)

	u, err := repo.GetByEmail(ctx, "ok@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleHR, u.Role)
}
