package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Record is one employee's pay for one (month, year) period.
type Record struct {
	ID             int64
	EmployeeID     int64
	Month          int
	Year           int
	BasicSalary    decimal.Decimal
	Allowances     decimal.Decimal
	Bonuses        decimal.Decimal
	Deductions     decimal.Decimal
	OvertimeHours  decimal.Decimal
	OvertimeAmount decimal.Decimal
	NetSalary      decimal.Decimal
	PaymentDate    *string
	PaymentMethod  *string
	Status         Status
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Join
	EmployeeNumber *string
	EmployeeName   *string
	EmployeeEmail  *string
	DepartmentName *string
	JobTitle       *string
}

// CalculateNetSalary is basic + allowances + bonuses + overtime - deductions.
func CalculateNetSalary(basic, allowances, bonuses, overtimeAmount, deductions decimal.Decimal) decimal.Decimal {
	return basic.Add(allowances).Add(bonuses).Add(overtimeAmount).Sub(deductions)
}

// RecalculateNet derives NetSalary from the stored components.
func (r *Record) RecalculateNet() {
	r.NetSalary = CalculateNetSalary(r.BasicSalary, r.Allowances, r.Bonuses, r.OvertimeAmount, r.Deductions)
}

type Totals struct {
	TotalRecords  int64
	TotalPayroll  decimal.Decimal
	PaidAmount    decimal.Decimal
	PendingAmount decimal.Decimal
}

type DepartmentTotal struct {
	Department    *string
	EmployeeCount int64
	TotalSalary   decimal.Decimal
}

// Eligible is an active employee with a positive salary.
type Eligible struct {
	EmployeeID int64
	Salary     decimal.Decimal
}
