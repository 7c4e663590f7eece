package notification

import (
	"context"
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/notification"
	"github.com/hrms-suite/hrms-backend-go/internal/fixtures"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationFlow(t *testing.T) {
	db, ids := fixtures.NewSeededTestDB(t)
	svc := NewNotificationService(sqlite.NewNotificationRepository(db))
	ctx := context.Background()
	admin := ids.AdminUserID

	svc.Notify(ctx, notification.CreateNotificationRequest{UserID: admin, Title: "Leave approved", Message: "Your leave was approved", Type: notification.TypeSuccess})
	svc.Notify(ctx, notification.CreateNotificationRequest{UserID: admin, Title: "Payroll paid", Message: "March payroll paid"})

	list, err := svc.List(ctx, admin, false)
	require.NoError(t, err)
	require.Len(t, list.Notifications, 2)
	assert.Equal(t, int64(2), list.UnreadCount)

	var info notification.NotificationResponse
	for _, n := range list.Notifications {
		if n.Title == "Payroll paid" {
			info = n
		}
	}
	assert.Equal(t, "info", info.Type)

	require.NoError(t, svc.MarkRead(ctx, info.ID, admin))
	assert.ErrorIs(t, svc.MarkRead(ctx, info.ID, admin+100), notification.ErrNotificationNotFound)

	unread, err := svc.List(ctx, admin, true)
	require.NoError(t, err)
	assert.Len(t, unread.Notifications, 1)
	assert.Equal(t, int64(1), unread.UnreadCount)

	all, err := svc.MarkAllRead(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), all.Updated)
}

func TestNotify_UnknownUserIsLogged(t *testing.T) {
	db, _ := fixtures.NewSeededTestDB(t)
	svc := NewNotificationService(sqlite.NewNotificationRepository(db))

	assert.NotPanics(t, func() {
		svc.Notify(context.Background(), notification.CreateNotificationRequest{UserID: 9999, Title: "x", Message: "y"})
	})
}
