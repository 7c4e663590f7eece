package department

import (
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateDepartmentRequest struct {
	Name        string           `json:"name"`
	Code        *string          `json:"code,omitempty"`
	Description *string          `json:"description,omitempty"`
	ParentID    *int64           `json:"parent_id,omitempty"`
	ManagerID   *int64           `json:"manager_id,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if r.Budget != nil && r.Budget.IsNegative() {
		errs.Add("budget", "budget must be non-negative")
	}
	return errs.Err()
}

type UpdateDepartmentRequest struct {
	ID          int64            `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Code        *string          `json:"code,omitempty"`
	Description *string          `json:"description,omitempty"`
	ParentID    *int64           `json:"parent_id,omitempty"`
	ManagerID   *int64           `json:"manager_id,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Name == nil && r.Code == nil && r.Description == nil && r.ParentID == nil && r.ManagerID == nil && r.Budget == nil {
		errs.Add("body", "no fields to update")
		return errs
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.Budget != nil && r.Budget.IsNegative() {
		errs.Add("budget", "budget must be non-negative")
	}
	if r.ParentID != nil && *r.ParentID == r.ID {
		errs.Add("parent_id", "a department cannot be its own parent")
	}
	return errs.Err()
}

type DepartmentResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Code          *string         `json:"code"`
	Description   *string         `json:"description"`
	ParentID      *int64          `json:"parent_id"`
	ParentName    *string         `json:"parent_name"`
	ManagerID     *int64          `json:"manager_id"`
	ManagerName   *string         `json:"manager_name"`
	Budget        decimal.Decimal `json:"budget"`
	EmployeeCount int64           `json:"employee_count"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func NewDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		Code:          d.Code,
		Description:   d.Description,
		ParentID:      d.ParentID,
		ParentName:    d.ParentName,
		ManagerID:     d.ManagerID,
		ManagerName:   d.ManagerName,
		Budget:        d.Budget,
		EmployeeCount: d.EmployeeCount,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

type DepartmentDetailResponse struct {
	DepartmentResponse
	Employees []RosterEntry `json:"employees"`
}

type CreateDepartmentResponse struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Code *string `json:"code"`
}

type TreeNode struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Code          *string    `json:"code"`
	ManagerName   *string    `json:"manager_name"`
	EmployeeCount int64      `json:"employee_count"`
	Children      []TreeNode `json:"children"`
}

type StatsResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Code          *string         `json:"code"`
	EmployeeCount int64           `json:"employee_count"`
	Budget        decimal.Decimal `json:"budget"`
	JobPositions  int64           `json:"job_positions"`
	AvgSalary     *float64        `json:"avg_salary"`
}
