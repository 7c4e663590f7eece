package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees pages through employees with optional filters
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// GetEmployee retrieves a single employee with department, job title and manager
	GetEmployee(ctx context.Context, id int64) (EmployeeResponse, error)

	// CreateEmployee assigns an employee number and recounts the department
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)

	// UpdateEmployee writes only the supplied fields
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee marks the employee inactive
	DeleteEmployee(ctx context.Context, id int64) error

	GetStats(ctx context.Context) (EmployeeStatsResponse, error)

	// ExportEmployees renders the filtered roster as an xlsx workbook
	ExportEmployees(ctx context.Context, filter EmployeeFilter) ([]byte, error)
}
