package user

import (
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID         int64      `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	EmployeeID *int64     `json:"employee_id"`
	IsActive   bool       `json:"is_active"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ProfileResponse struct {
	UserResponse
	EmployeeNumber *string `json:"employee_number"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Phone          *string `json:"phone"`
	ProfileImage   *string `json:"profile_image"`
	DepartmentID   *int64  `json:"department_id"`
	DepartmentName *string `json:"department_name"`
	JobTitleID     *int64  `json:"job_title_id"`
	JobTitle       *string `json:"job_title"`
}

type UpdateUserStatusRequest struct {
	ID       int64 `json:"-"`
	IsActive *bool `json:"is_active"`
}

func (r *UpdateUserStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.IsActive == nil {
		errs.Add("is_active", "is_active is required")
	}
	return errs.Err()
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Role:       string(u.Role),
		EmployeeID: u.EmployeeID,
		IsActive:   u.IsActive,
		LastLogin:  u.LastLogin,
		CreatedAt:  u.CreatedAt,
	}
}

func NewProfileResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		UserResponse:   NewUserResponse(p.User),
		EmployeeNumber: p.EmployeeNumber,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Phone:          p.Phone,
		ProfileImage:   p.ProfileImage,
		DepartmentID:   p.DepartmentID,
		DepartmentName: p.DepartmentName,
		JobTitleID:     p.JobTitleID,
		JobTitle:       p.JobTitle,
	}
}
