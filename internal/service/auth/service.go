package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when no usable account matches, so a failed
// login costs one bcrypt comparison whether or not the email exists.
var dummyHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
})

type AuthServiceImpl struct {
	user.UserRepository
	employeeRepo employee.EmployeeRepository
	jwt.Service
	compare func(hash, password []byte) error
}

func NewAuthService(userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		employeeRepo:   employeeRepository,
		Service:        jwtService,
		compare:        bcrypt.CompareHashAndPassword,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			_ = a.compare(dummyHash(), []byte(req.Password))
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !userData.IsActive {
		_ = a.compare(dummyHash(), []byte(req.Password))
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := a.compare([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := a.UserRepository.UpdateLastLogin(ctx, userData.ID); err != nil {
		slog.Warn("failed to record last login", "user_id", userData.ID, "error", err)
	}

	token, _, err := a.GenerateToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	refreshed, err := a.UserRepository.GetByID(ctx, userData.ID)
	if err == nil {
		userData = refreshed
	}

	return auth.LoginResponse{
		User:  user.NewUserResponse(userData),
		Token: token,
	}, nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	if _, err := a.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return auth.RegisterResponse{}, user.ErrUserEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.RegisterResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	if req.EmployeeID != nil {
		exists, err := a.employeeRepo.Exists(ctx, *req.EmployeeID)
		if err != nil {
			return auth.RegisterResponse{}, err
		}
		if !exists {
			return auth.RegisterResponse{}, employee.ErrEmployeeNotFound
		}
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         role,
		EmployeeID:   req.EmployeeID,
	})
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	token, _, err := a.GenerateToken(created.ID)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return auth.RegisterResponse{
		ID:    created.ID,
		Email: created.Email,
		Role:  string(created.Role),
		Token: token,
	}, nil
}

// GetCurrentUser implements auth.AuthService.
func (a *AuthServiceImpl) GetCurrentUser(ctx context.Context) (user.ProfileResponse, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	profile, err := a.UserRepository.GetProfile(ctx, principal.UserID)
	if err != nil {
		return user.ProfileResponse{}, err
	}
	return user.NewProfileResponse(profile), nil
}

// UpdatePassword implements auth.AuthService.
func (a *AuthServiceImpl) UpdatePassword(ctx context.Context, req auth.UpdatePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return err
	}

	userData, err := a.UserRepository.GetByID(ctx, principal.UserID)
	if err != nil {
		return err
	}
	if err := a.compare([]byte(userData.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrWrongPassword
	}

	hashed, err := a.hashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return a.UserRepository.UpdatePassword(ctx, userData.ID, hashed)
}

// ListUsers implements auth.AuthService.
func (a *AuthServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := a.UserRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.NewUserResponse(u))
	}
	return responses, nil
}

// UpdateUserStatus implements auth.AuthService.
func (a *AuthServiceImpl) UpdateUserStatus(ctx context.Context, req user.UpdateUserStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return err
	}
	if principal.UserID == req.ID && !*req.IsActive {
		return user.ErrCannotDisableSelf
	}

	return a.UserRepository.UpdateStatus(ctx, req.ID, *req.IsActive)
}
