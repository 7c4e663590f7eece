package leave

import "context"

type LeaveService interface {
	// CreateRequest files a request for the caller's employee.
	CreateRequest(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	ListRequests(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, error)
	GetRequest(ctx context.Context, id int64) (LeaveResponse, error)
	// Decide approves or rejects a pending request and notifies its owner.
	Decide(ctx context.Context, req DecisionRequest) (LeaveResponse, error)
	// CancelRequest lets the owner withdraw a pending request.
	CancelRequest(ctx context.Context, id int64) (LeaveResponse, error)
}
