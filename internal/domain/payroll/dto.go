package payroll

import (
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var validPaymentMethods = []string{"bank_transfer", "cash", "cheque"}

type CreatePayrollRequest struct {
	EmployeeID     int64            `json:"employee_id"`
	Month          int              `json:"month"`
	Year           int              `json:"year"`
	BasicSalary    decimal.Decimal  `json:"basic_salary"`
	Allowances     *decimal.Decimal `json:"allowances,omitempty"`
	Bonuses        *decimal.Decimal `json:"bonuses,omitempty"`
	Deductions     *decimal.Decimal `json:"deductions,omitempty"`
	OvertimeHours  *decimal.Decimal `json:"overtime_hours,omitempty"`
	OvertimeAmount *decimal.Decimal `json:"overtime_amount,omitempty"`
	PaymentMethod  *string          `json:"payment_method,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id is required")
	}
	if !validator.IsValidMonth(r.Month) {
		errs.Add("month", "month must be between 1 and 12")
	}
	if !validator.IsValidYear(r.Year) {
		errs.Add("year", "year is required")
	}
	if !r.BasicSalary.IsPositive() {
		errs.Add("basic_salary", "basic_salary must be greater than zero")
	}
	validateComponents(&errs, r.Allowances, r.Bonuses, r.Deductions, r.OvertimeHours, r.OvertimeAmount)
	validatePaymentMethod(&errs, r.PaymentMethod)

	return errs.Err()
}

// ToRecord builds a pending record with its net salary computed.
func (r *CreatePayrollRequest) ToRecord() Record {
	rec := Record{
		EmployeeID:     r.EmployeeID,
		Month:          r.Month,
		Year:           r.Year,
		BasicSalary:    r.BasicSalary,
		Allowances:     orZero(r.Allowances),
		Bonuses:        orZero(r.Bonuses),
		Deductions:     orZero(r.Deductions),
		OvertimeHours:  orZero(r.OvertimeHours),
		OvertimeAmount: orZero(r.OvertimeAmount),
		PaymentMethod:  r.PaymentMethod,
		Status:         StatusPending,
		Notes:          r.Notes,
	}
	rec.RecalculateNet()
	return rec
}

type UpdatePayrollRequest struct {
	ID             int64            `json:"-"`
	BasicSalary    *decimal.Decimal `json:"basic_salary,omitempty"`
	Allowances     *decimal.Decimal `json:"allowances,omitempty"`
	Bonuses        *decimal.Decimal `json:"bonuses,omitempty"`
	Deductions     *decimal.Decimal `json:"deductions,omitempty"`
	OvertimeHours  *decimal.Decimal `json:"overtime_hours,omitempty"`
	OvertimeAmount *decimal.Decimal `json:"overtime_amount,omitempty"`
	PaymentDate    *string          `json:"payment_date,omitempty"`
	PaymentMethod  *string          `json:"payment_method,omitempty"`
	Status         *string          `json:"status,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BasicSalary == nil && r.Allowances == nil && r.Bonuses == nil && r.Deductions == nil &&
		r.OvertimeHours == nil && r.OvertimeAmount == nil && r.PaymentDate == nil &&
		r.PaymentMethod == nil && r.Status == nil && r.Notes == nil {
		errs.Add("body", "no fields to update")
		return errs
	}
	if r.BasicSalary != nil && !r.BasicSalary.IsPositive() {
		errs.Add("basic_salary", "basic_salary must be greater than zero")
	}
	validateComponents(&errs, r.Allowances, r.Bonuses, r.Deductions, r.OvertimeHours, r.OvertimeAmount)
	validatePaymentMethod(&errs, r.PaymentMethod)
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs.Add("payment_date", "payment_date must be in YYYY-MM-DD format")
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusPending), string(StatusPaid)}) {
		errs.Add("status", "status must be pending or paid")
	}

	return errs.Err()
}

// Apply merges the supplied fields into rec and recomputes its net salary.
func (r *UpdatePayrollRequest) Apply(rec *Record) {
	if r.BasicSalary != nil {
		rec.BasicSalary = *r.BasicSalary
	}
	if r.Allowances != nil {
		rec.Allowances = *r.Allowances
	}
	if r.Bonuses != nil {
		rec.Bonuses = *r.Bonuses
	}
	if r.Deductions != nil {
		rec.Deductions = *r.Deductions
	}
	if r.OvertimeHours != nil {
		rec.OvertimeHours = *r.OvertimeHours
	}
	if r.OvertimeAmount != nil {
		rec.OvertimeAmount = *r.OvertimeAmount
	}
	if r.PaymentDate != nil {
		rec.PaymentDate = r.PaymentDate
	}
	if r.PaymentMethod != nil {
		rec.PaymentMethod = r.PaymentMethod
	}
	if r.Status != nil {
		rec.Status = Status(*r.Status)
	}
	if r.Notes != nil {
		rec.Notes = r.Notes
	}
	rec.RecalculateNet()
}

type ApprovePayrollRequest struct {
	ID          int64   `json:"-"`
	PaymentDate *string `json:"payment_date,omitempty"`
}

func (r *ApprovePayrollRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs.Add("payment_date", "payment_date must be in YYYY-MM-DD format")
		}
	}
	return errs.Err()
}

type GenerateMonthlyRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GenerateMonthlyRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidMonth(r.Month) {
		errs.Add("month", "month must be between 1 and 12")
	}
	if !validator.IsValidYear(r.Year) {
		errs.Add("year", "year is required")
	}
	return errs.Err()
}

type GenerateMonthlyResponse struct {
	Generated int `json:"generated"`
	Total     int `json:"total"`
}

type PayrollFilter struct {
	EmployeeID *int64
	Month      *int
	Year       *int
	Status     *string
}

func validateComponents(errs *validator.ValidationErrors, allowances, bonuses, deductions, overtimeHours, overtimeAmount *decimal.Decimal) {
	fields := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"allowances", allowances},
		{"bonuses", bonuses},
		{"deductions", deductions},
		{"overtime_hours", overtimeHours},
		{"overtime_amount", overtimeAmount},
	}
	for _, f := range fields {
		if f.value != nil && f.value.IsNegative() {
			errs.Add(f.name, f.name+" must be non-negative")
		}
	}
}

func validatePaymentMethod(errs *validator.ValidationErrors, method *string) {
	if method != nil && *method != "" && !validator.IsInSlice(*method, validPaymentMethods) {
		errs.Add("payment_method", "payment_method must be bank_transfer, cash or cheque")
	}
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

type CreatePayrollResponse struct {
	ID        int64           `json:"id"`
	NetSalary decimal.Decimal `json:"net_salary"`
}

type PayrollResponse struct {
	ID             int64           `json:"id"`
	EmployeeID     int64           `json:"employee_id"`
	EmployeeNumber *string         `json:"employee_number,omitempty"`
	EmployeeName   *string         `json:"employee_name,omitempty"`
	Email          *string         `json:"email,omitempty"`
	DepartmentName *string         `json:"department_name,omitempty"`
	JobTitle       *string         `json:"job_title,omitempty"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	BasicSalary    decimal.Decimal `json:"basic_salary"`
	Allowances     decimal.Decimal `json:"allowances"`
	Bonuses        decimal.Decimal `json:"bonuses"`
	Deductions     decimal.Decimal `json:"deductions"`
	OvertimeHours  decimal.Decimal `json:"overtime_hours"`
	OvertimeAmount decimal.Decimal `json:"overtime_amount"`
	NetSalary      decimal.Decimal `json:"net_salary"`
	PaymentDate    *string         `json:"payment_date"`
	PaymentMethod  *string         `json:"payment_method"`
	Status         string          `json:"status"`
	Notes          *string         `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func NewPayrollResponse(r Record) PayrollResponse {
	return PayrollResponse{
		ID:             r.ID,
		EmployeeID:     r.EmployeeID,
		EmployeeNumber: r.EmployeeNumber,
		EmployeeName:   r.EmployeeName,
		Email:          r.EmployeeEmail,
		DepartmentName: r.DepartmentName,
		JobTitle:       r.JobTitle,
		Month:          r.Month,
		Year:           r.Year,
		BasicSalary:    r.BasicSalary,
		Allowances:     r.Allowances,
		Bonuses:        r.Bonuses,
		Deductions:     r.Deductions,
		OvertimeHours:  r.OvertimeHours,
		OvertimeAmount: r.OvertimeAmount,
		NetSalary:      r.NetSalary,
		PaymentDate:    r.PaymentDate,
		PaymentMethod:  r.PaymentMethod,
		Status:         string(r.Status),
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

type TotalsResponse struct {
	TotalRecords  int64           `json:"total_records"`
	TotalPayroll  decimal.Decimal `json:"total_payroll"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
}

type DepartmentTotalResponse struct {
	Department    *string         `json:"department"`
	EmployeeCount int64           `json:"employee_count"`
	TotalSalary   decimal.Decimal `json:"total_salary"`
}

type StatsResponse struct {
	Month        int                       `json:"month"`
	Year         int                       `json:"year"`
	Totals       TotalsResponse            `json:"totals"`
	ByDepartment []DepartmentTotalResponse `json:"by_department"`
}
