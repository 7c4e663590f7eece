package employee

import (
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/utils"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var validGenders = []string{"male", "female"}

type CreateEmployeeRequest struct {
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Email          string           `json:"email"`
	Phone          *string          `json:"phone,omitempty"`
	DateOfBirth    *string          `json:"date_of_birth,omitempty"`
	Gender         *string          `json:"gender,omitempty"`
	NationalID     string           `json:"national_id"`
	MaritalStatus  *string          `json:"marital_status,omitempty"`
	Address        *string          `json:"address,omitempty"`
	City           *string          `json:"city,omitempty"`
	Country        *string          `json:"country,omitempty"`
	DepartmentID   *int64           `json:"department_id,omitempty"`
	JobTitleID     *int64           `json:"job_title_id,omitempty"`
	ManagerID      *int64           `json:"manager_id,omitempty"`
	HireDate       string           `json:"hire_date"`
	EmploymentType *string          `json:"employment_type,omitempty"`
	WorkLocation   *string          `json:"work_location,omitempty"`
	Salary         *decimal.Decimal `json:"salary,omitempty"`
	ProfileImage   *string          `json:"profile_image,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs.Add("first_name", "first_name is required")
	}
	if validator.IsEmpty(r.LastName) {
		errs.Add("last_name", "last_name is required")
	}
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}
	if validator.IsEmpty(r.NationalID) {
		errs.Add("national_id", "national_id is required")
	}
	if validator.IsEmpty(r.HireDate) {
		errs.Add("hire_date", "hire_date is required")
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs.Add("hire_date", "hire_date must be in YYYY-MM-DD format")
	}
	validateOptional(&errs, r.Phone, r.DateOfBirth, r.Gender, r.Salary)

	return errs.Err()
}

// UpdateEmployeeRequest carries only the fields the caller supplied.
type UpdateEmployeeRequest struct {
	ID             int64            `json:"-"`
	FirstName      *string          `json:"first_name,omitempty"`
	LastName       *string          `json:"last_name,omitempty"`
	Email          *string          `json:"email,omitempty"`
	Phone          *string          `json:"phone,omitempty"`
	DateOfBirth    *string          `json:"date_of_birth,omitempty"`
	Gender         *string          `json:"gender,omitempty"`
	NationalID     *string          `json:"national_id,omitempty"`
	MaritalStatus  *string          `json:"marital_status,omitempty"`
	Address        *string          `json:"address,omitempty"`
	City           *string          `json:"city,omitempty"`
	Country        *string          `json:"country,omitempty"`
	DepartmentID   *int64           `json:"department_id,omitempty"`
	JobTitleID     *int64           `json:"job_title_id,omitempty"`
	ManagerID      *int64           `json:"manager_id,omitempty"`
	HireDate       *string          `json:"hire_date,omitempty"`
	EmploymentType *string          `json:"employment_type,omitempty"`
	WorkLocation   *string          `json:"work_location,omitempty"`
	Salary         *decimal.Decimal `json:"salary,omitempty"`
	Status         *string          `json:"status,omitempty"`
	ProfileImage   *string          `json:"profile_image,omitempty"`
}

func (r *UpdateEmployeeRequest) isEmpty() bool {
	return r.FirstName == nil && r.LastName == nil && r.Email == nil && r.Phone == nil &&
		r.DateOfBirth == nil && r.Gender == nil && r.NationalID == nil && r.MaritalStatus == nil &&
		r.Address == nil && r.City == nil && r.Country == nil && r.DepartmentID == nil &&
		r.JobTitleID == nil && r.ManagerID == nil && r.HireDate == nil && r.EmploymentType == nil &&
		r.WorkLocation == nil && r.Salary == nil && r.Status == nil && r.ProfileImage == nil
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.isEmpty() {
		errs.Add("body", "no fields to update")
		return errs
	}
	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs.Add("first_name", "first_name must not be empty")
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs.Add("last_name", "last_name must not be empty")
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "invalid email format")
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs.Add("hire_date", "hire_date must be in YYYY-MM-DD format")
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs.Add("status", "status must be active or inactive")
	}
	if r.ManagerID != nil && *r.ManagerID == r.ID {
		errs.Add("manager_id", "an employee cannot manage themself")
	}
	validateOptional(&errs, r.Phone, r.DateOfBirth, r.Gender, r.Salary)

	return errs.Err()
}

func validateOptional(errs *validator.ValidationErrors, phone, dob, gender *string, salary *decimal.Decimal) {
	if phone != nil && *phone != "" && !validator.IsValidPhoneNumber(*phone) {
		errs.Add("phone", "invalid phone number")
	}
	if dob != nil && *dob != "" {
		if _, ok := validator.IsValidDate(*dob); !ok {
			errs.Add("date_of_birth", "date_of_birth must be in YYYY-MM-DD format")
		}
	}
	if gender != nil && *gender != "" && !validator.IsInSlice(*gender, validGenders) {
		errs.Add("gender", "gender must be male or female")
	}
	if salary != nil && salary.IsNegative() {
		errs.Add("salary", "salary must be non-negative")
	}
}

type EmployeeFilter struct {
	DepartmentID *int64
	Status       *string
	Search       *string
	Page         int
	Limit        int
}

type EmployeeResponse struct {
	ID             int64            `json:"id"`
	EmployeeNumber string           `json:"employee_number"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Email          *string          `json:"email"`
	Phone          *string          `json:"phone"`
	DateOfBirth    *string          `json:"date_of_birth"`
	Gender         *string          `json:"gender"`
	NationalID     *string          `json:"national_id"`
	MaritalStatus  *string          `json:"marital_status"`
	Address        *string          `json:"address"`
	City           *string          `json:"city"`
	Country        *string          `json:"country"`
	DepartmentID   *int64           `json:"department_id"`
	DepartmentName *string          `json:"department_name"`
	JobTitleID     *int64           `json:"job_title_id"`
	JobTitle       *string          `json:"job_title"`
	JobDescription *string          `json:"job_description,omitempty"`
	ManagerID      *int64           `json:"manager_id"`
	ManagerName    *string          `json:"manager_name"`
	HireDate       *string          `json:"hire_date"`
	EmploymentType *string          `json:"employment_type"`
	WorkLocation   *string          `json:"work_location"`
	Salary         *decimal.Decimal `json:"salary"`
	Status         string           `json:"status"`
	ProfileImage   *string          `json:"profile_image"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID,
		EmployeeNumber: e.EmployeeNumber,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Phone:          e.Phone,
		DateOfBirth:    e.DateOfBirth,
		Gender:         e.Gender,
		NationalID:     e.NationalID,
		MaritalStatus:  e.MaritalStatus,
		Address:        e.Address,
		City:           e.City,
		Country:        e.Country,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		JobTitleID:     e.JobTitleID,
		JobTitle:       e.JobTitle,
		JobDescription: e.JobDescription,
		ManagerID:      e.ManagerID,
		ManagerName:    e.ManagerName,
		HireDate:       e.HireDate,
		EmploymentType: e.EmploymentType,
		WorkLocation:   e.WorkLocation,
		Status:         string(e.Status),
		ProfileImage:   e.ProfileImage,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	if e.Salary.Valid {
		salary := e.Salary.Decimal
		resp.Salary = &salary
	}
	return resp
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	Pagination utils.Pagination   `json:"pagination"`
}

type CreateEmployeeResponse struct {
	ID             int64  `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
}

type EmployeeStatsResponse struct {
	TotalEmployees  int64        `json:"total_employees"`
	DepartmentStats []NamedCount `json:"department_stats"`
	GenderStats     []NamedCount `json:"gender_stats"`
	NewHires        int64        `json:"new_hires"`
}
