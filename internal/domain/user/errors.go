package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserEmailExists   = errors.New("email already registered")
	ErrInvalidRole       = errors.New("invalid role")
	ErrUnauthenticated   = errors.New("authentication required")
	ErrForbidden         = errors.New("you do not have permission to perform this action")
	ErrNoEmployeeLink    = errors.New("user account is not linked to an employee")
	ErrCannotDisableSelf = errors.New("you cannot disable your own account")
)
