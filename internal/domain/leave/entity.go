package leave

import "time"

type Type string

const (
	TypeAnnual    Type = "annual"
	TypeSick      Type = "sick"
	TypeEmergency Type = "emergency"
	TypeUnpaid    Type = "unpaid"
	TypeMaternity Type = "maternity"
	TypeOther     Type = "other"
)

var validTypes = []string{
	string(TypeAnnual), string(TypeSick), string(TypeEmergency), string(TypeUnpaid), string(TypeMaternity), string(TypeOther),
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

type Request struct {
	ID            int64
	EmployeeID    int64
	LeaveType     Type
	StartDate     string
	EndDate       string
	DaysCount     int
	Reason        *string
	Status        Status
	ApprovedBy    *int64
	ApprovalDate  *string
	ApprovalNotes *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Join
	EmployeeName   *string
	EmployeeNumber *string
	ApproverName   *string
}
