package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/fixtures"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestService(t *testing.T) (*AttendanceServiceImpl, *fixtures.SeededDataIDs, *clock) {
	t.Helper()
	db, ids := fixtures.NewSeededTestDB(t)
	c := &clock{t: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}
	svc := NewAttendanceService(sqlite.NewAttendanceRepository(db)).(*AttendanceServiceImpl)
	svc.now = c.now
	return svc, ids, c
}

func asEmployee(employeeID int64, role user.Role) context.Context {
	return user.WithPrincipal(context.Background(), user.Principal{UserID: employeeID, Role: role, EmployeeID: &employeeID})
}

func TestCheckInCheckOut(t *testing.T) {
	svc, ids, c := newTestService(t)
	ctx := asEmployee(ids.EmployeeIDs["EMP002"], user.RoleEmployee)

	in, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", in.Date)
	assert.Equal(t, "08:00:00", in.CheckIn)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	c.t = c.t.Add(8*time.Hour + 30*time.Minute)
	out, err := svc.CheckOut(ctx)
	require.NoError(t, err)
	assert.Equal(t, "16:30:00", out.CheckOut)
	assert.Equal(t, 8.5, out.WorkHours)

	_, err = svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	svc, ids, _ := newTestService(t)
	_, err := svc.CheckOut(asEmployee(ids.EmployeeIDs["EMP003"], user.RoleEmployee))
	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)
}

func TestCheckIn_RequiresEmployeeLink(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := user.WithPrincipal(context.Background(), user.Principal{UserID: 42, Role: user.RoleFinance})
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	assert.ErrorIs(t, err, user.ErrNoEmployeeLink)
}

func TestListAttendance_Scoping(t *testing.T) {
	svc, ids, c := newTestService(t)
	emp2 := asEmployee(ids.EmployeeIDs["EMP002"], user.RoleEmployee)
	emp3 := asEmployee(ids.EmployeeIDs["EMP003"], user.RoleEmployee)

	_, err := svc.CheckIn(emp2, attendance.CheckInRequest{})
	require.NoError(t, err)
	_, err = svc.CheckIn(emp3, attendance.CheckInRequest{})
	require.NoError(t, err)
	c.t = c.t.AddDate(0, 1, 0)
	_, err = svc.CheckIn(emp2, attendance.CheckInRequest{})
	require.NoError(t, err)

	other := ids.EmployeeIDs["EMP003"]
	own, err := svc.ListAttendance(emp2, attendance.AttendanceFilter{EmployeeID: &other})
	require.NoError(t, err)
	require.Len(t, own, 2)
	for _, r := range own {
		assert.Equal(t, ids.EmployeeIDs["EMP002"], r.EmployeeID)
	}
	assert.Equal(t, "2025-04-10", own[0].Date)

	hr := asEmployee(ids.EmployeeIDs["EMP001"], user.RoleHR)
	everyone, err := svc.ListAttendance(hr, attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Len(t, everyone, 3)

	month, year := 3, 2025
	march, err := svc.ListAttendance(hr, attendance.AttendanceFilter{Month: &month, Year: &year})
	require.NoError(t, err)
	assert.Len(t, march, 2)
}

func TestUpdateAttendance_RecomputesHours(t *testing.T) {
	svc, ids, _ := newTestService(t)
	emp := asEmployee(ids.EmployeeIDs["EMP002"], user.RoleEmployee)

	in, err := svc.CheckIn(emp, attendance.CheckInRequest{})
	require.NoError(t, err)

	checkIn, checkOut := "09:00:00", "17:15:00"
	updated, err := svc.UpdateAttendance(context.Background(), attendance.UpdateAttendanceRequest{ID: in.ID, CheckIn: &checkIn, CheckOut: &checkOut})
	require.NoError(t, err)
	require.NotNil(t, updated.WorkHours)
	assert.Equal(t, 8.25, *updated.WorkHours)

	late := string(attendance.StatusLate)
	updated, err = svc.UpdateAttendance(context.Background(), attendance.UpdateAttendanceRequest{ID: in.ID, Status: &late})
	require.NoError(t, err)
	assert.Equal(t, "late", updated.Status)
	assert.Equal(t, 8.25, *updated.WorkHours)

	_, err = svc.UpdateAttendance(context.Background(), attendance.UpdateAttendanceRequest{ID: 9999, Status: &late})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestGetStats(t *testing.T) {
	svc, ids, c := newTestService(t)
	emp := asEmployee(ids.EmployeeIDs["EMP002"], user.RoleEmployee)

	for day := 0; day < 2; day++ {
		c.t = time.Date(2025, 3, 10+day, 8, 0, 0, 0, time.UTC)
		_, err := svc.CheckIn(emp, attendance.CheckInRequest{})
		require.NoError(t, err)
		c.t = c.t.Add(9 * time.Hour)
		_, err = svc.CheckOut(emp)
		require.NoError(t, err)
	}

	stats, err := svc.GetStats(emp, attendance.StatsFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Month)
	assert.Equal(t, int64(2), stats.TotalDays)
	assert.Equal(t, int64(2), stats.PresentDays)
	assert.Equal(t, 18.0, stats.TotalHours)
	assert.Equal(t, 9.0, stats.AvgHours)

	_, err = svc.GetStats(emp, attendance.StatsFilter{Month: 13})
	assert.ErrorIs(t, err, attendance.ErrInvalidPeriod)
}
