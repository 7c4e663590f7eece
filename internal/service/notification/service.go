package notification

import (
	"context"
	"log/slog"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/notification"
	"golang.org/x/sync/errgroup"
)

type service struct {
	repo notification.Repository
}

func NewNotificationService(repo notification.Repository) notification.Service {
	return &service{repo: repo}
}

// Notify implements notification.Service.
func (s *service) Notify(ctx context.Context, req notification.CreateNotificationRequest) {
	if req.Type == "" {
		req.Type = notification.TypeInfo
	}

	_, err := s.repo.Create(ctx, notification.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
		Link:    req.Link,
	})
	if err != nil {
		slog.Error("failed to store notification", "user_id", req.UserID, "title", req.Title, "error", err)
	}
}

// List implements notification.Service.
func (s *service) List(ctx context.Context, userID int64, unreadOnly bool) (notification.ListResponse, error) {
	var (
		items  []notification.Notification
		unread int64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repo.ListByUser(gCtx, userID, unreadOnly, notification.ListLimit)
		return err
	})
	g.Go(func() error {
		var err error
		unread, err = s.repo.CountUnread(gCtx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return notification.ListResponse{}, err
	}

	responses := make([]notification.NotificationResponse, 0, len(items))
	for _, n := range items {
		responses = append(responses, notification.NewNotificationResponse(n))
	}
	return notification.ListResponse{Notifications: responses, UnreadCount: unread}, nil
}

// MarkRead implements notification.Service.
func (s *service) MarkRead(ctx context.Context, id, userID int64) error {
	ok, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return notification.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead implements notification.Service.
func (s *service) MarkAllRead(ctx context.Context, userID int64) (notification.MarkAllReadResponse, error) {
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return notification.MarkAllReadResponse{}, err
	}
	return notification.MarkAllReadResponse{Updated: n}, nil
}
