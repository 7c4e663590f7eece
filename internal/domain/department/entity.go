package department

import (
	"time"

	"github.com/shopspring/decimal"
)

type Department struct {
	ID            int64
	Name          string
	Code          *string
	Description   *string
	ParentID      *int64
	ManagerID     *int64
	Budget        decimal.Decimal
	EmployeeCount int64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Join
	ManagerName *string
	ParentName  *string
}

// RosterEntry is an active employee listed under a department.
type RosterEntry struct {
	ID             int64   `json:"id"`
	EmployeeNumber string  `json:"employee_number"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	JobTitle       *string `json:"job_title"`
	HireDate       *string `json:"hire_date"`
}

type Stats struct {
	ID            int64
	Name          string
	Code          *string
	EmployeeCount int64
	Budget        decimal.Decimal
	JobPositions  int64
	AvgSalary     *float64
}
