package leave

import (
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	LeaveType string  `json:"leave_type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs.Add("leave_type", "leave_type is required")
	} else if !validator.IsInSlice(r.LeaveType, validTypes) {
		errs.Add("leave_type", "invalid leave type")
	}

	_, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	_, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if startOK && endOK && !validator.IsDateRange(r.StartDate, r.EndDate) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	return errs.Err()
}

type DecisionRequest struct {
	ID     int64   `json:"-"`
	Status Status  `json:"-"`
	Notes  *string `json:"notes,omitempty"`
}

type LeaveFilter struct {
	EmployeeID *int64
	Status     *string
	LeaveType  *string
}

type LeaveResponse struct {
	ID             int64     `json:"id"`
	EmployeeID     int64     `json:"employee_id"`
	EmployeeName   *string   `json:"employee_name,omitempty"`
	EmployeeNumber *string   `json:"employee_number,omitempty"`
	LeaveType      string    `json:"leave_type"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	DaysCount      int       `json:"days_count"`
	Reason         *string   `json:"reason"`
	Status         string    `json:"status"`
	ApprovedBy     *int64    `json:"approved_by"`
	ApproverName   *string   `json:"approver_name,omitempty"`
	ApprovalDate   *string   `json:"approval_date"`
	ApprovalNotes  *string   `json:"approval_notes"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewLeaveResponse(r Request) LeaveResponse {
	return LeaveResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		EmployeeName:   r.EmployeeName,
		EmployeeNumber: r.EmployeeNumber,
		LeaveType:      string(r.LeaveType),
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		DaysCount:      r.DaysCount,
		Reason:         r.Reason,
		Status:         string(r.Status),
		ApprovedBy:     r.ApprovedBy,
		ApproverName:   r.ApproverName,
		ApprovalDate:   r.ApprovalDate,
		ApprovalNotes:  r.ApprovalNotes,
		CreatedAt:      r.CreatedAt,
	}
}
