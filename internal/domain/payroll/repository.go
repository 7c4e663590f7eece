package payroll

import "context"

type PayrollRepository interface {
	// Create fails with ErrPayrollRecordAlreadyExists on a duplicate period.
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id int64) (Record, error)
	List(ctx context.Context, filter PayrollFilter) ([]Record, error)
	Update(ctx context.Context, record Record) error
	MarkPaid(ctx context.Context, id int64, paymentDate string) error
	Delete(ctx context.Context, id int64) error
	CountForPeriod(ctx context.Context, month, year int) (int64, error)
	ListEligible(ctx context.Context) ([]Eligible, error)
	GetTotals(ctx context.Context, month, year int) (Totals, error)
	GetDepartmentTotals(ctx context.Context, month, year int) ([]DepartmentTotal, error)
}
