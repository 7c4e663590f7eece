package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, newDepartment Department) (Department, error)
	// GetByID returns active departments only.
	GetByID(ctx context.Context, id int64) (Department, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]Department, error)
	ListRoster(ctx context.Context, departmentID int64) ([]RosterEntry, error)
	Update(ctx context.Context, req UpdateDepartmentRequest) error
	SoftDelete(ctx context.Context, id int64) error
	CountActiveEmployees(ctx context.Context, id int64) (int64, error)
	// RecountEmployees sets employee_count to the live count of active employees.
	RecountEmployees(ctx context.Context, id int64) error
	ListStats(ctx context.Context) ([]Stats, error)
}
