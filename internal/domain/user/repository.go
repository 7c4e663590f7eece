package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmployeeID(ctx context.Context, employeeID int64) (User, error)
	// GetPrincipal loads an active user joined with its employee.
	GetPrincipal(ctx context.Context, id int64) (Principal, error)
	GetProfile(ctx context.Context, id int64) (Profile, error)
	Create(ctx context.Context, newUser User) (User, error)
	List(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int64, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, isActive bool) error
}
