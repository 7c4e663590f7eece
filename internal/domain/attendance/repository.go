package attendance

import "context"

type AttendanceRepository interface {
	// Create fails with ErrAlreadyCheckedIn when the employee already has a row for the date.
	Create(ctx context.Context, record Attendance) (Attendance, error)
	GetByID(ctx context.Context, id int64) (Attendance, error)
	GetOpenByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (Attendance, error)
	// CloseCheckIn sets check-out only while it is still empty and reports whether a row changed.
	CloseCheckIn(ctx context.Context, id int64, checkOut string, workHours float64) (bool, error)
	Update(ctx context.Context, req UpdateAttendanceRequest, workHours *float64) error
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
	GetStats(ctx context.Context, employeeID int64, from, to string) (Stats, error)
}
