package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// List returns one page and the total match count; Limit 0 returns every match.
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	SoftDelete(ctx context.Context, id int64) error

	CountActive(ctx context.Context) (int64, error)
	CountByDepartment(ctx context.Context) ([]NamedCount, error)
	CountByGender(ctx context.Context) ([]NamedCount, error)
	CountHiredBetween(ctx context.Context, from, to time.Time) (int64, error)
}
