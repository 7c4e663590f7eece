package payroll

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/fixtures"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	notificationService "github.com/hrms-suite/hrms-backend-go/internal/service/notification"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

func newTestService(t *testing.T) (*PayrollServiceImpl, *fixtures.SeededDataIDs) {
	t.Helper()
	db, ids := fixtures.NewSeededTestDB(t)
	notifier := notificationService.NewNotificationService(sqlite.NewNotificationRepository(db))
	svc := NewPayrollService(
		db,
		sqlite.NewPayrollRepository(db),
		sqlite.NewEmployeeRepository(db),
		sqlite.NewUserRepository(db),
		notifier,
	).(*PayrollServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 4, 28, 12, 0, 0, 0, time.UTC) }
	return svc, ids
}

func asRole(role user.Role, employeeID *int64) context.Context {
	return user.WithPrincipal(context.Background(), user.Principal{UserID: 1, Role: role, EmployeeID: employeeID})
}

func TestCreateRecord_NetSalary(t *testing.T) {
	svc, ids := newTestService(t)
	ctx := asRole(user.RoleFinance, nil)

	created, err := svc.CreateRecord(ctx, payroll.CreatePayrollRequest{
		EmployeeID:  ids.EmployeeIDs["EMP002"],
		Month:       3,
		Year:        2025,
		BasicSalary: dec("10000"),
		Allowances:  decPtr("1000"),
		Deductions:  decPtr("500"),
	})
	require.NoError(t, err)
	assert.True(t, created.NetSalary.Equal(dec("10500")), "net %s", created.NetSalary)

	_, err = svc.CreateRecord(ctx, payroll.CreatePayrollRequest{
		EmployeeID: ids.EmployeeIDs["EMP002"], Month: 3, Year: 2025, BasicSalary: dec("10000"),
	})
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordAlreadyExists)

	_, err = svc.CreateRecord(ctx, payroll.CreatePayrollRequest{EmployeeID: 9999, Month: 3, Year: 2025, BasicSalary: dec("1")})
	assert.ErrorIs(t, err, payroll.ErrEmployeeNotFound)
}

func TestUpdateRecord_RecomputesNet(t *testing.T) {
	svc, ids := newTestService(t)
	ctx := asRole(user.RoleFinance, nil)

	created, err := svc.CreateRecord(ctx, payroll.CreatePayrollRequest{
		EmployeeID: ids.EmployeeIDs["EMP002"], Month: 3, Year: 2025,
		BasicSalary: dec("10000"), Allowances: decPtr("1000"), Deductions: decPtr("500"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateRecord(ctx, payroll.UpdatePayrollRequest{ID: created.ID, Bonuses: decPtr("750")})
	require.NoError(t, err)
	assert.True(t, updated.NetSalary.Equal(dec("11250")), "net %s", updated.NetSalary)
	assert.True(t, updated.Allowances.Equal(dec("1000")))

	_, err = svc.UpdateRecord(ctx, payroll.UpdatePayrollRequest{ID: 9999, Bonuses: decPtr("1")})
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestGenerateMonthly(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := asRole(user.RoleHR, nil)

	resp, err := svc.GenerateMonthly(ctx, payroll.GenerateMonthlyRequest{Month: 4, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Generated)
	assert.Equal(t, 5, resp.Total)

	_, err = svc.GenerateMonthly(ctx, payroll.GenerateMonthlyRequest{Month: 4, Year: 2025})
	assert.ErrorIs(t, err, payroll.ErrPayrollPeriodAlreadyGenerated)

	month, year := 4, 2025
	records, err := svc.ListRecords(ctx, payroll.PayrollFilter{Month: &month, Year: &year})
	require.NoError(t, err)
	assert.Len(t, records, 5)
	for _, r := range records {
		assert.True(t, r.NetSalary.Equal(r.BasicSalary))
		assert.Equal(t, "pending", r.Status)
	}

	stats, err := svc.GetStats(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Month)
	assert.Equal(t, int64(5), stats.Totals.TotalRecords)
	assert.True(t, stats.Totals.TotalPayroll.Equal(dec("82000")), "total %s", stats.Totals.TotalPayroll)
	assert.True(t, stats.Totals.PaidAmount.IsZero())
	assert.NotEmpty(t, stats.ByDepartment)
}

// conflictingPayrollRepo inserts the record for conflictEmployee twice so the
// second insert hits the period's UNIQUE constraint inside the transaction.
type conflictingPayrollRepo struct {
	payroll.PayrollRepository
	conflictEmployee int64
}

func (r *conflictingPayrollRepo) Create(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	if record.EmployeeID == r.conflictEmployee {
		if _, err := r.PayrollRepository.Create(ctx, record); err != nil {
			return payroll.Record{}, err
		}
	}
	return r.PayrollRepository.Create(ctx, record)
}

func TestGenerateMonthly_SkipsFailedInsert(t *testing.T) {
	db, ids := fixtures.NewSeededTestDB(t)
	repo := &conflictingPayrollRepo{
		PayrollRepository: sqlite.NewPayrollRepository(db),
		conflictEmployee:  ids.EmployeeIDs["EMP003"],
	}
	svc := NewPayrollService(db, repo, sqlite.NewEmployeeRepository(db), sqlite.NewUserRepository(db),
		notificationService.NewNotificationService(sqlite.NewNotificationRepository(db))).(*PayrollServiceImpl)
	ctx := asRole(user.RoleHR, nil)

	resp, err := svc.GenerateMonthly(ctx, payroll.GenerateMonthlyRequest{Month: 5, Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, payroll.GenerateMonthlyResponse{Generated: 4, Total: 5}, resp)

	month, year := 5, 2025
	records, err := svc.ListRecords(ctx, payroll.PayrollFilter{Month: &month, Year: &year})
	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestApprove_NotifiesOwner(t *testing.T) {
	db, ids := fixtures.NewSeededTestDB(t)
	notificationRepo := sqlite.NewNotificationRepository(db)
	svc := NewPayrollService(db, sqlite.NewPayrollRepository(db), sqlite.NewEmployeeRepository(db),
		sqlite.NewUserRepository(db), notificationService.NewNotificationService(notificationRepo)).(*PayrollServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 4, 28, 12, 0, 0, 0, time.UTC) }
	ctx := asRole(user.RoleFinance, nil)

	created, err := svc.CreateRecord(ctx, payroll.CreatePayrollRequest{
		EmployeeID: ids.EmployeeIDs["EMP001"], Month: 4, Year: 2025, BasicSalary: dec("18000"),
	})
	require.NoError(t, err)

	paid, err := svc.Approve(ctx, payroll.ApprovePayrollRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "paid", paid.Status)
	require.NotNil(t, paid.PaymentDate)
	assert.Equal(t, "2025-04-28", *paid.PaymentDate)

	unread, err := notificationRepo.CountUnread(context.Background(), ids.AdminUserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	_, err = svc.Approve(ctx, payroll.ApprovePayrollRequest{ID: 9999})
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestReadScoping(t *testing.T) {
	svc, ids := newTestService(t)

	created, err := svc.CreateRecord(asRole(user.RoleFinance, nil), payroll.CreatePayrollRequest{
		EmployeeID: ids.EmployeeIDs["EMP002"], Month: 4, Year: 2025, BasicSalary: dec("20000"),
	})
	require.NoError(t, err)

	owner := ids.EmployeeIDs["EMP002"]
	other := ids.EmployeeIDs["EMP003"]

	_, err = svc.GetRecord(asRole(user.RoleEmployee, &other), created.ID)
	assert.ErrorIs(t, err, user.ErrForbidden)

	own, err := svc.GetRecord(asRole(user.RoleEmployee, &owner), created.ID)
	require.NoError(t, err)
	assert.Equal(t, owner, own.EmployeeID)

	list, err := svc.ListRecords(asRole(user.RoleEmployee, &other), payroll.PayrollFilter{EmployeeID: &owner})
	require.NoError(t, err)
	assert.Empty(t, list)

	pdf, err := svc.RenderPayslip(asRole(user.RoleEmployee, &owner), created.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	_, err = svc.RenderPayslip(asRole(user.RoleEmployee, &other), created.ID)
	assert.ErrorIs(t, err, user.ErrForbidden)

	require.NoError(t, svc.DeleteRecord(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteRecord(context.Background(), created.ID), payroll.ErrPayrollRecordNotFound)
}
