package user

import "context"

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID       int64
	Email        string
	Role         Role
	EmployeeID   *int64
	FirstName    *string
	LastName     *string
	DepartmentID *int64
	JobTitleID   *int64
}

// HasRole reports whether the principal holds one of roles.
func (p Principal) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

func (p Principal) Can(permission Permission) bool {
	return HasPermission(p.Role, permission)
}

// IsEmployee reports whether the principal is linked to employeeID.
func (p Principal) IsEmployee(employeeID int64) bool {
	return p.EmployeeID != nil && *p.EmployeeID == employeeID
}

// ScopeEmployee resolves the employee filter for a read. Holders of
// viewAll keep whatever filter they asked for (nil means everyone); all
// other callers are pinned to their own employee record.
func (p Principal) ScopeEmployee(viewAll Permission, requested *int64) (*int64, error) {
	if p.Can(viewAll) {
		return requested, nil
	}
	if p.EmployeeID == nil {
		return nil, ErrNoEmployeeLink
	}
	own := *p.EmployeeID
	return &own, nil
}

// CanView reports whether the principal may read a row owned by employeeID.
func (p Principal) CanView(viewAll Permission, employeeID int64) bool {
	return p.Can(viewAll) || p.IsEmployee(employeeID)
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns ErrUnauthenticated when no principal is set.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok {
		return Principal{}, ErrUnauthenticated
	}
	return p, nil
}
