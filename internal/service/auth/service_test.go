package auth

import (
	"context"
	"testing"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/fixtures"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type authTestEnv struct {
	db      *database.DB
	ids     *fixtures.SeededDataIDs
	jwt     jwt.Service
	service auth.AuthService
}

func newAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()
	db, ids := fixtures.NewSeededTestDB(t)

	jwtService := jwt.NewJWTService(testSecret, time.Hour)
	svc := NewAuthService(sqlite.NewUserRepository(db), sqlite.NewEmployeeRepository(db), jwtService)
	return authTestEnv{db: db, ids: ids, jwt: jwtService, service: svc}
}

func (env authTestEnv) asAdmin() context.Context {
	return user.WithPrincipal(context.Background(), user.Principal{UserID: env.ids.AdminUserID, Role: user.RoleAdmin})
}

func TestLogin(t *testing.T) {
	env := newAuthTestEnv(t)
	ctx := context.Background()

	t.Run("seeded admin", func(t *testing.T) {
		resp, err := env.service.Login(ctx, auth.LoginRequest{Email: fixtures.AdminEmail, Password: fixtures.AdminPassword})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "admin", resp.User.Role)
		assert.NotNil(t, resp.User.LastLogin)

		token, err := env.jwt.JWTAuth().Decode(resp.Token)
		require.NoError(t, err)
		id, err := env.jwt.ParseSubject(token)
		require.NoError(t, err)
		assert.Equal(t, env.ids.AdminUserID, id)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.service.Login(ctx, auth.LoginRequest{Email: fixtures.AdminEmail, Password: "nope"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := env.service.Login(ctx, auth.LoginRequest{Email: "ghost@hrms.com", Password: "whatever"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("disabled user", func(t *testing.T) {
		created, err := env.service.Register(env.asAdmin(), auth.RegisterRequest{Email: "off@hrms.com", Password: "secret1"})
		require.NoError(t, err)
		require.NoError(t, env.service.UpdateUserStatus(env.asAdmin(), user.UpdateUserStatusRequest{ID: created.ID, IsActive: boolPtr(false)}))

		_, err = env.service.Login(ctx, auth.LoginRequest{Email: "off@hrms.com", Password: "secret1"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestLogin_AlwaysComparesHash(t *testing.T) {
	env := newAuthTestEnv(t)
	ctx := context.Background()

	impl := env.service.(*AuthServiceImpl)
	var compared int
	impl.compare = func(hash, password []byte) error {
		compared++
		return bcrypt.CompareHashAndPassword(hash, password)
	}

	created, err := env.service.Register(env.asAdmin(), auth.RegisterRequest{Email: "idle@hrms.com", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, env.service.UpdateUserStatus(env.asAdmin(), user.UpdateUserStatusRequest{ID: created.ID, IsActive: boolPtr(false)}))

	for _, req := range []auth.LoginRequest{
		{Email: "ghost@hrms.com", Password: "whatever"},
		{Email: "idle@hrms.com", Password: "secret1"},
		{Email: fixtures.AdminEmail, Password: "nope"},
	} {
		compared = 0
		_, err := env.service.Login(ctx, req)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Equal(t, 1, compared, req.Email)
	}
}

func TestRegister(t *testing.T) {
	env := newAuthTestEnv(t)
	ctx := env.asAdmin()

	resp, err := env.service.Register(ctx, auth.RegisterRequest{Email: "new@hrms.com", Password: "secret1", Role: "finance"})
	require.NoError(t, err)
	assert.Equal(t, "finance", resp.Role)
	assert.NotEmpty(t, resp.Token)

	_, err = env.service.Register(ctx, auth.RegisterRequest{Email: "new@hrms.com", Password: "secret1"})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	_, err = env.service.Register(ctx, auth.RegisterRequest{Email: "bad", Password: "1"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "email")
	assert.Contains(t, verrs.ToMap(), "password")
}

func TestUpdatePassword(t *testing.T) {
	env := newAuthTestEnv(t)
	ctx := env.asAdmin()

	err := env.service.UpdatePassword(ctx, auth.UpdatePasswordRequest{CurrentPassword: "wrong", NewPassword: "newpass1"})
	assert.ErrorIs(t, err, auth.ErrWrongPassword)

	require.NoError(t, env.service.UpdatePassword(ctx, auth.UpdatePasswordRequest{CurrentPassword: fixtures.AdminPassword, NewPassword: "newpass1"}))

	_, err = env.service.Login(context.Background(), auth.LoginRequest{Email: fixtures.AdminEmail, Password: "newpass1"})
	assert.NoError(t, err)
}

func TestUpdateUserStatus_CannotDisableSelf(t *testing.T) {
	env := newAuthTestEnv(t)
	err := env.service.UpdateUserStatus(env.asAdmin(), user.UpdateUserStatusRequest{ID: env.ids.AdminUserID, IsActive: boolPtr(false)})
	assert.ErrorIs(t, err, user.ErrCannotDisableSelf)
}

func TestGetCurrentUser(t *testing.T) {
	env := newAuthTestEnv(t)

	profile, err := env.service.GetCurrentUser(env.asAdmin())
	require.NoError(t, err)
	assert.Equal(t, fixtures.AdminEmail, profile.Email)
	require.NotNil(t, profile.DepartmentName)
	assert.Equal(t, "Human Resources", *profile.DepartmentName)

	_, err = env.service.GetCurrentUser(context.Background())
	assert.ErrorIs(t, err, user.ErrUnauthenticated)
}

func boolPtr(b bool) *bool { return &b }
