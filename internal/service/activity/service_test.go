package activity

import (
	"context"
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/activity"
	"github.com/hrms-suite/hrms-backend-go/internal/fixtures"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRecordAndList(t *testing.T) {
	db, ids := fixtures.NewSeededTestDB(t)
	svc := NewActivityService(sqlite.NewActivityLogRepository(db))
	ctx := context.Background()
	admin := ids.AdminUserID

	for i := int64(1); i <= 3; i++ {
		entityID := i
		require.NoError(t, svc.Record(ctx, activity.Log{
			UserID: &admin, Action: "update_employee", EntityType: strPtr("employee"), EntityID: &entityID,
			Details: strPtr(`{"method":"PUT"}`), IPAddress: strPtr("127.0.0.1"),
		}))
	}
	require.NoError(t, svc.Record(ctx, activity.Log{UserID: &admin, Action: "create_department", EntityType: strPtr("department")}))

	page, err := svc.List(ctx, activity.LogFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.Pages)
	require.Len(t, page.Logs, 2)
	require.NotNil(t, page.Logs[0].UserEmail)
	assert.Equal(t, fixtures.AdminEmail, *page.Logs[0].UserEmail)

	filtered, err := svc.List(ctx, activity.LogFilter{EntityType: strPtr("department")})
	require.NoError(t, err)
	require.Len(t, filtered.Logs, 1)
	assert.Equal(t, "create_department", filtered.Logs[0].Action)
}
