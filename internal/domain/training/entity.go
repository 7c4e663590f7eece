package training

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProgramStatus string

const (
	ProgramScheduled ProgramStatus = "scheduled"
	ProgramOngoing   ProgramStatus = "ongoing"
	ProgramCompleted ProgramStatus = "completed"
	ProgramCancelled ProgramStatus = "cancelled"
)

var validProgramStatuses = []string{
	string(ProgramScheduled), string(ProgramOngoing), string(ProgramCompleted), string(ProgramCancelled),
}

type CompletionStatus string

const (
	CompletionEnrolled   CompletionStatus = "enrolled"
	CompletionInProgress CompletionStatus = "in_progress"
	CompletionCompleted  CompletionStatus = "completed"
	CompletionDropped    CompletionStatus = "dropped"
)

var validCompletionStatuses = []string{
	string(CompletionEnrolled), string(CompletionInProgress), string(CompletionCompleted), string(CompletionDropped),
}

// Program keeps EnrolledCount equal to its enrollment rows and never above Capacity.
type Program struct {
	ID            int64
	Name          string
	Description   *string
	Trainer       *string
	Location      *string
	StartDate     string
	EndDate       string
	DurationHours *int
	Capacity      int
	EnrolledCount int
	Cost          decimal.NullDecimal
	Status        ProgramStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsFull reports whether no seat is left.
func (p Program) IsFull() bool {
	return p.EnrolledCount >= p.Capacity
}

type Enrollment struct {
	ID                int64
	TrainingProgramID int64
	EmployeeID        int64
	EnrollmentDate    string
	CompletionStatus  CompletionStatus
	CompletionDate    *string
	Score             *float64
	Feedback          *string
	CertificateIssued bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Join
	EmployeeNumber *string
	EmployeeName   *string
	EmployeeEmail  *string
	DepartmentName *string
}

type StatusCount struct {
	Status string
	Count  int64
}

type CompletionStats struct {
	Completed    int64
	AverageScore *float64
}
