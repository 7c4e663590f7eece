package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/notification"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/export"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/utils"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	db                  *database.DB
	payrollRepo         payroll.PayrollRepository
	employeeRepo        employee.EmployeeRepository
	userRepo            user.UserRepository
	notificationService notification.Service
	now                 func() time.Time
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	notificationService notification.Service,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                  db,
		payrollRepo:         payrollRepo,
		employeeRepo:        employeeRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
		now:                 time.Now,
	}
}

// ListRecords implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollResponse, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	filter.EmployeeID, err = principal.ScopeEmployee(user.PermissionPayrollViewAll, filter.EmployeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapToResponses(records), nil
}

// getVisible loads a record the caller is allowed to read.
func (s *PayrollServiceImpl) getVisible(ctx context.Context, id int64) (payroll.Record, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return payroll.Record{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.Record{}, err
	}
	if !principal.CanView(user.PermissionPayrollViewAll, record.EmployeeID) {
		return payroll.Record{}, user.ErrForbidden
	}
	return record, nil
}

// GetRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id int64) (payroll.PayrollResponse, error) {
	record, err := s.getVisible(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.NewPayrollResponse(record), nil
}

// CreateRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateRecord(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.CreatePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.CreatePayrollResponse{}, err
	}

	exists, err := s.employeeRepo.Exists(ctx, req.EmployeeID)
	if err != nil {
		return payroll.CreatePayrollResponse{}, err
	}
	if !exists {
		return payroll.CreatePayrollResponse{}, payroll.ErrEmployeeNotFound
	}

	created, err := s.payrollRepo.Create(ctx, req.ToRecord())
	if err != nil {
		return payroll.CreatePayrollResponse{}, err
	}

	return payroll.CreatePayrollResponse{
		ID:        created.ID,
		NetSalary: created.NetSalary,
	}, nil
}

// UpdateRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdateRecord(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	var updated payroll.Record
	err := sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		record, err := s.payrollRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		req.Apply(&record)
		if err := s.payrollRepo.Update(txCtx, record); err != nil {
			return err
		}

		updated, err = s.payrollRepo.GetByID(txCtx, req.ID)
		return err
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.NewPayrollResponse(updated), nil
}

// Approve implements payroll.PayrollService.
func (s *PayrollServiceImpl) Approve(ctx context.Context, req payroll.ApprovePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	paymentDate := utils.FormatDate(s.now())
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	if err := s.payrollRepo.MarkPaid(ctx, req.ID, paymentDate); err != nil {
		return payroll.PayrollResponse{}, err
	}

	paid, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	s.notifyPaid(ctx, paid)
	return payroll.NewPayrollResponse(paid), nil
}

func (s *PayrollServiceImpl) notifyPaid(ctx context.Context, r payroll.Record) {
	owner, err := s.userRepo.GetByEmployeeID(ctx, r.EmployeeID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			slog.Warn("failed to resolve payroll owner", "employee_id", r.EmployeeID, "error", err)
		}
		return
	}

	link := fmt.Sprintf("/payroll/%d", r.ID)
	s.notificationService.Notify(ctx, notification.CreateNotificationRequest{
		UserID:  owner.ID,
		Title:   "Salary paid",
		Message: fmt.Sprintf("Your salary for %02d/%d has been paid: %s.", r.Month, r.Year, r.NetSalary.StringFixed(2)),
		Type:    notification.TypeSuccess,
		Link:    &link,
	})
}

// DeleteRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeleteRecord(ctx context.Context, id int64) error {
	return s.payrollRepo.Delete(ctx, id)
}

// GenerateMonthly implements payroll.PayrollService.
func (s *PayrollServiceImpl) GenerateMonthly(ctx context.Context, req payroll.GenerateMonthlyRequest) (payroll.GenerateMonthlyResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateMonthlyResponse{}, err
	}

	var resp payroll.GenerateMonthlyResponse
	err := sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		existing, err := s.payrollRepo.CountForPeriod(txCtx, req.Month, req.Year)
		if err != nil {
			return err
		}
		if existing > 0 {
			return payroll.ErrPayrollPeriodAlreadyGenerated
		}

		eligible, err := s.payrollRepo.ListEligible(txCtx)
		if err != nil {
			return err
		}
		if len(eligible) == 0 {
			return payroll.ErrNoEligibleEmployees
		}

		resp.Total = len(eligible)
		for _, e := range eligible {
			record := payroll.Record{
				EmployeeID:  e.EmployeeID,
				Month:       req.Month,
				Year:        req.Year,
				BasicSalary: e.Salary,
				Status:      payroll.StatusPending,
			}
			record.RecalculateNet()

			if _, err := s.payrollRepo.Create(txCtx, record); err != nil {
				slog.Warn("skipping payroll generation for employee",
					"employee_id", e.EmployeeID, "month", req.Month, "year", req.Year, "error", err)
				continue
			}
			resp.Generated++
		}
		return nil
	})
	if err != nil {
		return payroll.GenerateMonthlyResponse{}, err
	}

	slog.Info("monthly payroll generated", "month", req.Month, "year", req.Year, "generated", resp.Generated, "total", resp.Total)
	return resp, nil
}

// GetStats implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetStats(ctx context.Context, month, year int) (payroll.StatsResponse, error) {
	now := s.now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	period := payroll.GenerateMonthlyRequest{Month: month, Year: year}
	if err := period.Validate(); err != nil {
		return payroll.StatsResponse{}, err
	}

	var (
		totals      payroll.Totals
		departments []payroll.DepartmentTotal
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.payrollRepo.GetTotals(gCtx, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		departments, err = s.payrollRepo.GetDepartmentTotals(gCtx, month, year)
		return err
	})
	if err := g.Wait(); err != nil {
		return payroll.StatsResponse{}, err
	}

	byDepartment := make([]payroll.DepartmentTotalResponse, 0, len(departments))
	for _, d := range departments {
		byDepartment = append(byDepartment, payroll.DepartmentTotalResponse{
			Department:    d.Department,
			EmployeeCount: d.EmployeeCount,
			TotalSalary:   d.TotalSalary,
		})
	}

	return payroll.StatsResponse{
		Month: month,
		Year:  year,
		Totals: payroll.TotalsResponse{
			TotalRecords:  totals.TotalRecords,
			TotalPayroll:  totals.TotalPayroll,
			PaidAmount:    totals.PaidAmount,
			PendingAmount: totals.PendingAmount,
		},
		ByDepartment: byDepartment,
	}, nil
}

// RenderPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) RenderPayslip(ctx context.Context, id int64) ([]byte, error) {
	record, err := s.getVisible(ctx, id)
	if err != nil {
		return nil, err
	}

	money := func(d decimal.Decimal) string { return d.StringFixed(2) }
	slip := export.Payslip{
		Title:    "Payslip",
		Employee: valueOr(record.EmployeeName, fmt.Sprintf("Employee #%d", record.EmployeeID)),
		Number:   valueOr(record.EmployeeNumber, "-"),
		Period:   fmt.Sprintf("%02d/%d", record.Month, record.Year),
		Details: []export.PayslipLine{
			{Label: "Department", Amount: valueOr(record.DepartmentName, "-")},
			{Label: "Job title", Amount: valueOr(record.JobTitle, "-")},
			{Label: "Payment date", Amount: valueOr(record.PaymentDate, "-")},
			{Label: "Payment method", Amount: valueOr(record.PaymentMethod, "-")},
		},
		Earnings: []export.PayslipLine{
			{Label: "Basic salary", Amount: money(record.BasicSalary)},
			{Label: "Allowances", Amount: money(record.Allowances)},
			{Label: "Bonuses", Amount: money(record.Bonuses)},
			{Label: fmt.Sprintf("Overtime (%s h)", record.OvertimeHours.String()), Amount: money(record.OvertimeAmount)},
		},
		Deduct: []export.PayslipLine{
			{Label: "Deductions", Amount: money(record.Deductions)},
		},
		Net:    money(record.NetSalary),
		Status: string(record.Status),
	}
	return export.RenderPayslip(slip)
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func mapToResponses(records []payroll.Record) []payroll.PayrollResponse {
	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, payroll.NewPayrollResponse(r))
	}
	return responses
}
