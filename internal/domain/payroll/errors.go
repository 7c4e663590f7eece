package payroll

import "errors"

var (
	ErrPayrollRecordNotFound         = errors.New("payroll record not found")
	ErrPayrollRecordAlreadyExists    = errors.New("payroll record already exists for this period")
	ErrPayrollPeriodAlreadyGenerated = errors.New("payroll for this period has already been generated")
	ErrNoEligibleEmployees           = errors.New("no active employees with a salary")
	ErrEmployeeNotFound              = errors.New("employee not found")
)
