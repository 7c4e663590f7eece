package leave

import (
	"context"
	"testing"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/fixtures"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	notificationService "github.com/hrms-suite/hrms-backend-go/internal/service/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leaveTestEnv struct {
	svc        *LeaveServiceImpl
	ids        *fixtures.SeededDataIDs
	staffUser  user.User
	staff      context.Context
	hr         context.Context
	notifyList func(userID int64) int
}

func newLeaveTestEnv(t *testing.T) leaveTestEnv {
	t.Helper()
	db, ids := fixtures.NewSeededTestDB(t)
	userRepo := sqlite.NewUserRepository(db)
	notificationRepo := sqlite.NewNotificationRepository(db)
	notifier := notificationService.NewNotificationService(notificationRepo)

	svc := NewLeaveService(db, sqlite.NewLeaveRequestRepository(db), userRepo, notifier).(*LeaveServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC) }

	staffID := ids.EmployeeIDs["EMP005"]
	staffUser, err := userRepo.Create(context.Background(), user.User{
		Email: "fahad@company.com", PasswordHash: "x", Role: user.RoleEmployee, EmployeeID: &staffID,
	})
	require.NoError(t, err)

	hrID := ids.EmployeeIDs["EMP001"]
	return leaveTestEnv{
		svc:       svc,
		ids:       ids,
		staffUser: staffUser,
		staff:     user.WithPrincipal(context.Background(), user.Principal{UserID: staffUser.ID, Role: user.RoleEmployee, EmployeeID: &staffID}),
		hr:        user.WithPrincipal(context.Background(), user.Principal{UserID: ids.AdminUserID, Role: user.RoleHR, EmployeeID: &hrID}),
		notifyList: func(userID int64) int {
			items, err := notificationRepo.ListByUser(context.Background(), userID, false, 50)
			require.NoError(t, err)
			return len(items)
		},
	}
}

func TestCreateRequest(t *testing.T) {
	env := newLeaveTestEnv(t)

	created, err := env.svc.CreateRequest(env.staff, leave.CreateLeaveRequest{LeaveType: "annual", StartDate: "2025-06-01", EndDate: "2025-06-05"})
	require.NoError(t, err)
	assert.Equal(t, 5, created.DaysCount)
	assert.Equal(t, "pending", created.Status)

	_, err = env.svc.CreateRequest(env.staff, leave.CreateLeaveRequest{LeaveType: "sick", StartDate: "2025-06-05", EndDate: "2025-06-06"})
	assert.ErrorIs(t, err, leave.ErrLeaveOverlap)

	_, err = env.svc.CreateRequest(env.staff, leave.CreateLeaveRequest{LeaveType: "sick", StartDate: "2025-06-06", EndDate: "2025-06-06"})
	assert.NoError(t, err)
}

func TestDecide(t *testing.T) {
	env := newLeaveTestEnv(t)

	created, err := env.svc.CreateRequest(env.staff, leave.CreateLeaveRequest{LeaveType: "annual", StartDate: "2025-06-01", EndDate: "2025-06-02"})
	require.NoError(t, err)

	_, err = env.svc.Decide(env.staff, leave.DecisionRequest{ID: created.ID, Status: leave.StatusApproved})
	assert.ErrorIs(t, err, user.ErrForbidden)

	approved, err := env.svc.Decide(env.hr, leave.DecisionRequest{ID: created.ID, Status: leave.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.ApprovalDate)
	assert.Equal(t, "2025-05-02", *approved.ApprovalDate)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, env.ids.EmployeeIDs["EMP001"], *approved.ApprovedBy)
	assert.Equal(t, 1, env.notifyList(env.staffUser.ID))

	_, err = env.svc.Decide(env.hr, leave.DecisionRequest{ID: created.ID, Status: leave.StatusRejected})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	_, err = env.svc.Decide(env.hr, leave.DecisionRequest{ID: 9999, Status: leave.StatusRejected})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestDecide_RejectsOwnRequest(t *testing.T) {
	env := newLeaveTestEnv(t)

	own, err := env.svc.CreateRequest(env.hr, leave.CreateLeaveRequest{LeaveType: "annual", StartDate: "2025-07-01", EndDate: "2025-07-03"})
	require.NoError(t, err)

	_, err = env.svc.Decide(env.hr, leave.DecisionRequest{ID: own.ID, Status: leave.StatusApproved})
	assert.ErrorIs(t, err, leave.ErrSelfDecision)

	got, err := env.svc.GetRequest(env.hr, own.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)
}

func TestScopingAndCancel(t *testing.T) {
	env := newLeaveTestEnv(t)

	created, err := env.svc.CreateRequest(env.staff, leave.CreateLeaveRequest{LeaveType: "annual", StartDate: "2025-06-01", EndDate: "2025-06-02"})
	require.NoError(t, err)

	otherID := env.ids.EmployeeIDs["EMP002"]
	other := user.WithPrincipal(context.Background(), user.Principal{UserID: 77, Role: user.RoleEmployee, EmployeeID: &otherID})

	_, err = env.svc.GetRequest(other, created.ID)
	assert.ErrorIs(t, err, user.ErrForbidden)

	mine, err := env.svc.ListRequests(other, leave.LeaveFilter{})
	require.NoError(t, err)
	assert.Empty(t, mine)

	all, err := env.svc.ListRequests(env.hr, leave.LeaveFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = env.svc.CancelRequest(other, created.ID)
	assert.ErrorIs(t, err, user.ErrForbidden)

	cancelled, err := env.svc.CancelRequest(env.staff, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	_, err = env.svc.CreateRequest(env.staff, leave.CreateLeaveRequest{LeaveType: "annual", StartDate: "2025-06-01", EndDate: "2025-06-02"})
	assert.NoError(t, err)
}
