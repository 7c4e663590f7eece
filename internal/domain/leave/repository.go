package leave

import "context"

type LeaveRequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id int64) (Request, error)
	List(ctx context.Context, filter LeaveFilter) ([]Request, error)
	// HasOverlap reports pending or approved requests of the employee intersecting [start, end].
	HasOverlap(ctx context.Context, employeeID int64, start, end string) (bool, error)
	// UpdateStatus changes a request that is still pending and reports whether a row changed.
	UpdateStatus(ctx context.Context, id int64, status Status, approvedBy *int64, approvalDate *string, notes *string) (bool, error)
}
