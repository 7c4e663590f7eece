package attendance

import "context"

type AttendanceService interface {
	// CheckIn opens today's record for the caller's employee.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut closes today's open record and stores the worked hours.
	CheckOut(ctx context.Context) (CheckOutResponse, error)

	// ListAttendance returns the caller's records, or any employee's for admin and hr.
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)

	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	GetStats(ctx context.Context, filter StatsFilter) (StatsResponse, error)
}
