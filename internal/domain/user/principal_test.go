package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryRoleHasPermissions(t *testing.T) {
	for _, r := range Roles {
		perms, ok := RolePermissions[r]
		assert.True(t, ok, "role %q has no permission entry", r)
		assert.NotEmpty(t, perms, "role %q has no permissions", r)
	}
	assert.Len(t, RolePermissions, len(Roles))
}

func TestEveryRoleHasSelfService(t *testing.T) {
	for _, r := range Roles {
		p := Principal{UserID: 1, Role: r}
		assert.True(t, p.Can(PermissionAttendanceSelf), "role %q cannot record attendance", r)
		assert.True(t, p.Can(PermissionLeaveCreate), "role %q cannot request leave", r)
	}
	assert.False(t, Principal{UserID: 1, Role: Role("guest")}.Can(PermissionAttendanceSelf))
}

func TestParseRole(t *testing.T) {
	for _, r := range Roles {
		got, err := ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := ParseRole("owner")
	assert.ErrorIs(t, err, ErrInvalidRole)
	_, err = ParseRole("")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestScopeEmployee(t *testing.T) {
	own := int64(7)
	other := int64(42)

	hr := Principal{UserID: 1, Role: RoleHR}
	scoped, err := hr.ScopeEmployee(PermissionAttendanceViewAll, nil)
	require.NoError(t, err)
	assert.Nil(t, scoped)

	scoped, err = hr.ScopeEmployee(PermissionAttendanceViewAll, &other)
	require.NoError(t, err)
	assert.Equal(t, other, *scoped)

	emp := Principal{UserID: 2, Role: RoleEmployee, EmployeeID: &own}
	scoped, err = emp.ScopeEmployee(PermissionAttendanceViewAll, &other)
	require.NoError(t, err)
	assert.Equal(t, own, *scoped)

	unlinked := Principal{UserID: 3, Role: RoleEmployee}
	_, err = unlinked.ScopeEmployee(PermissionAttendanceViewAll, nil)
	assert.ErrorIs(t, err, ErrNoEmployeeLink)
}

func TestCanView(t *testing.T) {
	own := int64(7)
	finance := Principal{Role: RoleFinance, EmployeeID: &own}
	assert.True(t, finance.CanView(PermissionPayrollViewAll, 99))
	assert.False(t, finance.CanView(PermissionPerformanceViewAll, 99))
	assert.True(t, finance.CanView(PermissionPerformanceViewAll, own))
}

func TestPrincipalContext(t *testing.T) {
	_, err := PrincipalFromContext(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)

	ctx := WithPrincipal(context.Background(), Principal{UserID: 5, Role: RoleAdmin})
	p, err := PrincipalFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.UserID)
	assert.True(t, p.HasRole(RoleHR, RoleAdmin))
	assert.False(t, p.HasRole(RoleEmployee))
}
