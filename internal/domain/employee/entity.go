package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Employee struct {
	ID             int64
	EmployeeNumber string
	FirstName      string
	LastName       string
	Email          *string
	Phone          *string
	DateOfBirth    *string
	Gender         *string
	NationalID     *string
	MaritalStatus  *string
	Address        *string
	City           *string
	Country        *string
	DepartmentID   *int64
	JobTitleID     *int64
	ManagerID      *int64
	HireDate       *string
	EmploymentType *string
	WorkLocation   *string
	Salary         decimal.NullDecimal
	Status         Status
	ProfileImage   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Join
	DepartmentName *string
	JobTitle       *string
	JobDescription *string
	ManagerName    *string
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// NamedCount is one bucket of an employee breakdown.
type NamedCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
