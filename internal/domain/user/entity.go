package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access
	RoleHR       Role = "hr"       // People operations
	RoleFinance  Role = "finance"  // Payroll
	RoleManager  Role = "manager"  // Reviews and leave approval
	RoleEmployee Role = "employee" // Self service
)

// Roles lists every role the system accepts.
var Roles = []Role{RoleAdmin, RoleHR, RoleFinance, RoleManager, RoleEmployee}

// ParseRole returns ErrInvalidRole for anything outside Roles.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *int64
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the user joined with its employee, department and job title.
type Profile struct {
	User
	EmployeeNumber *string
	FirstName      *string
	LastName       *string
	Phone          *string
	ProfileImage   *string
	DepartmentID   *int64
	DepartmentName *string
	JobTitleID     *int64
	JobTitle       *string
}
