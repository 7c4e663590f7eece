package department

import "context"

type DepartmentService interface {
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)
	// GetTree nests active departments under their parents.
	GetTree(ctx context.Context) ([]TreeNode, error)
	GetDepartment(ctx context.Context, id int64) (DepartmentDetailResponse, error)
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (CreateDepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req UpdateDepartmentRequest) (DepartmentResponse, error)
	// DeleteDepartment refuses while active employees reference the department.
	DeleteDepartment(ctx context.Context, id int64) error
	GetStats(ctx context.Context) ([]StatsResponse, error)
}
