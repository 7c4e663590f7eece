package jobtitle

import (
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateJobTitleRequest struct {
	Title            string           `json:"title"`
	Code             *string          `json:"code,omitempty"`
	DepartmentID     *int64           `json:"department_id,omitempty"`
	Level            *string          `json:"level,omitempty"`
	Description      *string          `json:"description,omitempty"`
	Responsibilities *string          `json:"responsibilities,omitempty"`
	Requirements     *string          `json:"requirements,omitempty"`
	MinSalary        *decimal.Decimal `json:"min_salary,omitempty"`
	MaxSalary        *decimal.Decimal `json:"max_salary,omitempty"`
}

func (r *CreateJobTitleRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Title) {
		errs.Add("title", "title is required")
	}
	validateSalaryRange(&errs, r.MinSalary, r.MaxSalary)
	return errs.Err()
}

type UpdateJobTitleRequest struct {
	ID               int64            `json:"-"`
	Title            *string          `json:"title,omitempty"`
	Code             *string          `json:"code,omitempty"`
	DepartmentID     *int64           `json:"department_id,omitempty"`
	Level            *string          `json:"level,omitempty"`
	Description      *string          `json:"description,omitempty"`
	Responsibilities *string          `json:"responsibilities,omitempty"`
	Requirements     *string          `json:"requirements,omitempty"`
	MinSalary        *decimal.Decimal `json:"min_salary,omitempty"`
	MaxSalary        *decimal.Decimal `json:"max_salary,omitempty"`
}

func (r *UpdateJobTitleRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Title == nil && r.Code == nil && r.DepartmentID == nil && r.Level == nil && r.Description == nil &&
		r.Responsibilities == nil && r.Requirements == nil && r.MinSalary == nil && r.MaxSalary == nil {
		errs.Add("body", "no fields to update")
		return errs
	}
	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs.Add("title", "title must not be empty")
	}
	validateSalaryRange(&errs, r.MinSalary, r.MaxSalary)
	return errs.Err()
}

func validateSalaryRange(errs *validator.ValidationErrors, min, max *decimal.Decimal) {
	if min != nil && min.IsNegative() {
		errs.Add("min_salary", "min_salary must be non-negative")
	}
	if max != nil && max.IsNegative() {
		errs.Add("max_salary", "max_salary must be non-negative")
	}
	if min != nil && max != nil && min.GreaterThan(*max) {
		errs.Add("max_salary", "max_salary must not be below min_salary")
	}
}

type JobTitleResponse struct {
	ID               int64            `json:"id"`
	Title            string           `json:"title"`
	Code             *string          `json:"code"`
	DepartmentID     *int64           `json:"department_id"`
	DepartmentName   *string          `json:"department_name"`
	Level            *string          `json:"level"`
	Description      *string          `json:"description"`
	Responsibilities *string          `json:"responsibilities"`
	Requirements     *string          `json:"requirements"`
	MinSalary        *decimal.Decimal `json:"min_salary"`
	MaxSalary        *decimal.Decimal `json:"max_salary"`
}

func NewJobTitleResponse(j JobTitle) JobTitleResponse {
	resp := JobTitleResponse{
		ID:               j.ID,
		Title:            j.Title,
		Code:             j.Code,
		DepartmentID:     j.DepartmentID,
		DepartmentName:   j.DepartmentName,
		Level:            j.Level,
		Description:      j.Description,
		Responsibilities: j.Responsibilities,
		Requirements:     j.Requirements,
	}
	if j.MinSalary.Valid {
		v := j.MinSalary.Decimal
		resp.MinSalary = &v
	}
	if j.MaxSalary.Valid {
		v := j.MaxSalary.Decimal
		resp.MaxSalary = &v
	}
	return resp
}
