package payroll

import "context"

type PayrollService interface {
	// ListRecords is scoped to the caller unless they hold payroll.view_all.
	ListRecords(ctx context.Context, filter PayrollFilter) ([]PayrollResponse, error)
	GetRecord(ctx context.Context, id int64) (PayrollResponse, error)
	CreateRecord(ctx context.Context, req CreatePayrollRequest) (CreatePayrollResponse, error)
	// UpdateRecord recomputes net salary from the merged components.
	UpdateRecord(ctx context.Context, req UpdatePayrollRequest) (PayrollResponse, error)
	Approve(ctx context.Context, req ApprovePayrollRequest) (PayrollResponse, error)
	DeleteRecord(ctx context.Context, id int64) error
	GenerateMonthly(ctx context.Context, req GenerateMonthlyRequest) (GenerateMonthlyResponse, error)
	GetStats(ctx context.Context, month, year int) (StatsResponse, error)
	// RenderPayslip returns the record as a PDF document.
	RenderPayslip(ctx context.Context, id int64) ([]byte, error)
}
