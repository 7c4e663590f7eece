package auth

import (
	"context"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
)

type AuthService interface {
	// Login verifies credentials of an active user and issues a token.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Register creates a user account. Callers are restricted to admin and hr.
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)

	// GetCurrentUser returns the caller's joined profile.
	GetCurrentUser(ctx context.Context) (user.ProfileResponse, error)

	UpdatePassword(ctx context.Context, req UpdatePasswordRequest) error

	ListUsers(ctx context.Context) ([]user.UserResponse, error)
	UpdateUserStatus(ctx context.Context, req user.UpdateUserStatusRequest) error
}
