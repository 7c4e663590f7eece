package notification

import "context"

type Service interface {
	// Notify stores a notification for a user. Failures are logged, not returned.
	Notify(ctx context.Context, req CreateNotificationRequest)
	List(ctx context.Context, userID int64, unreadOnly bool) (ListResponse, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) (MarkAllReadResponse, error)
}
