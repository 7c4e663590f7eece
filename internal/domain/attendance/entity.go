package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
	StatusOnLeave Status = "on_leave"
)

var validStatuses = []string{
	string(StatusPresent), string(StatusAbsent), string(StatusLate), string(StatusHalfDay), string(StatusOnLeave),
}

// Attendance is one employee's record for one calendar day. A row moves from
// checked-in (CheckOut nil) to checked-out exactly once.
type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       string
	CheckIn    *string
	CheckOut   *string
	WorkHours  *float64
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join
	EmployeeNumber *string
	EmployeeName   *string
	DepartmentName *string
}

type Stats struct {
	TotalDays   int64
	PresentDays int64
	AbsentDays  int64
	LateDays    int64
	TotalHours  float64
	AvgHours    float64
}
