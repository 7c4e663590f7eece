package attendance

import (
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type CheckInResponse struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	CheckIn string `json:"check_in"`
}

type CheckOutResponse struct {
	CheckOut  string  `json:"check_out"`
	WorkHours float64 `json:"work_hours"`
}

type UpdateAttendanceRequest struct {
	ID       int64   `json:"-"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Status   *string `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckIn == nil && r.CheckOut == nil && r.Status == nil && r.Notes == nil {
		errs.Add("body", "no fields to update")
		return errs
	}

	var in, out time.Time
	var inOK, outOK bool
	if r.CheckIn != nil {
		if in, inOK = validator.IsValidTime(*r.CheckIn); !inOK {
			errs.Add("check_in", "check_in must be in HH:MM:SS format")
		}
	}
	if r.CheckOut != nil {
		if out, outOK = validator.IsValidTime(*r.CheckOut); !outOK {
			errs.Add("check_out", "check_out must be in HH:MM:SS format")
		}
	}
	if inOK && outOK && out.Before(in) {
		errs.Add("check_out", "check_out must not be before check_in")
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs.Add("status", "invalid attendance status")
	}

	return errs.Err()
}

type AttendanceFilter struct {
	EmployeeID *int64
	StartDate  *string
	EndDate    *string
	Month      *int
	Year       *int
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
		}
	}
	if f.Month != nil && !validator.IsValidMonth(*f.Month) {
		errs.Add("month", "month must be between 1 and 12")
	}
	if f.Year != nil && !validator.IsValidYear(*f.Year) {
		errs.Add("year", "invalid year")
	}
	return errs.Err()
}

type StatsFilter struct {
	EmployeeID *int64
	Month      int
	Year       int
}

type AttendanceResponse struct {
	ID             int64     `json:"id"`
	EmployeeID     int64     `json:"employee_id"`
	EmployeeNumber *string   `json:"employee_number,omitempty"`
	EmployeeName   *string   `json:"employee_name,omitempty"`
	DepartmentName *string   `json:"department_name,omitempty"`
	Date           string    `json:"date"`
	CheckIn        *string   `json:"check_in"`
	CheckOut       *string   `json:"check_out"`
	WorkHours      *float64  `json:"work_hours"`
	Status         string    `json:"status"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		EmployeeNumber: a.EmployeeNumber,
		EmployeeName:   a.EmployeeName,
		DepartmentName: a.DepartmentName,
		Date:           a.Date,
		CheckIn:        a.CheckIn,
		CheckOut:       a.CheckOut,
		WorkHours:      a.WorkHours,
		Status:         string(a.Status),
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

type StatsResponse struct {
	EmployeeID  int64   `json:"employee_id"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	TotalDays   int64   `json:"total_days"`
	PresentDays int64   `json:"present_days"`
	AbsentDays  int64   `json:"absent_days"`
	LateDays    int64   `json:"late_days"`
	TotalHours  float64 `json:"total_hours"`
	AvgHours    float64 `json:"avg_hours"`
}
