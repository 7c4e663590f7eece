package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/department"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/export"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/utils"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const employeeNumberAttempts = 3

type EmployeeServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	now            func() time.Time
	newNumber      func() string
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		now:            time.Now,
		newNumber:      utils.GenerateEmployeeNumber,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	filter.Page, filter.Limit = utils.NormalizePage(filter.Page, filter.Limit)

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}

	return employee.ListEmployeeResponse{
		Employees:  responses,
		Pagination: utils.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	email := req.Email
	nationalID := req.NationalID
	hireDate := req.HireDate
	newEmployee := employee.Employee{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          &email,
		Phone:          req.Phone,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		NationalID:     &nationalID,
		MaritalStatus:  req.MaritalStatus,
		Address:        req.Address,
		City:           req.City,
		Country:        req.Country,
		DepartmentID:   req.DepartmentID,
		JobTitleID:     req.JobTitleID,
		ManagerID:      req.ManagerID,
		HireDate:       &hireDate,
		EmploymentType: req.EmploymentType,
		WorkLocation:   req.WorkLocation,
		Status:         employee.StatusActive,
		ProfileImage:   req.ProfileImage,
	}
	if req.Salary != nil {
		newEmployee.Salary = decimal.NewNullDecimal(*req.Salary)
	}

	var created employee.Employee
	err := sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.insertWithNumber(txCtx, newEmployee)
		if err != nil {
			return err
		}
		if created.DepartmentID != nil {
			return s.departmentRepo.RecountEmployees(txCtx, *created.DepartmentID)
		}
		return nil
	})
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	return employee.CreateEmployeeResponse{
		ID:             created.ID,
		EmployeeNumber: created.EmployeeNumber,
		FirstName:      created.FirstName,
		LastName:       created.LastName,
	}, nil
}

// insertWithNumber retries on employee number collisions only.
func (s *EmployeeServiceImpl) insertWithNumber(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	for attempt := 1; attempt <= employeeNumberAttempts; attempt++ {
		e.EmployeeNumber = s.newNumber()
		created, err := s.employeeRepo.Create(ctx, e)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, employee.ErrEmployeeNumberExists) {
			return employee.Employee{}, err
		}
		slog.Warn("employee number collision", "employee_number", e.EmployeeNumber, "attempt", attempt)
	}
	return employee.Employee{}, employee.ErrEmployeeNumberGeneration
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		current, err := s.employeeRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		if err := s.employeeRepo.Update(txCtx, req); err != nil {
			return err
		}

		updated, err = s.employeeRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		if req.DepartmentID == nil && req.Status == nil {
			return nil
		}
		for _, deptID := range affectedDepartments(current.DepartmentID, updated.DepartmentID) {
			if err := s.departmentRepo.RecountEmployees(txCtx, deptID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.NewEmployeeResponse(updated), nil
}

func affectedDepartments(before, after *int64) []int64 {
	var ids []int64
	if before != nil {
		ids = append(ids, *before)
	}
	if after != nil && (before == nil || *before != *after) {
		ids = append(ids, *after)
	}
	return ids
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	return sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		current, err := s.employeeRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.employeeRepo.SoftDelete(txCtx, id); err != nil {
			return err
		}
		if current.DepartmentID != nil {
			return s.departmentRepo.RecountEmployees(txCtx, *current.DepartmentID)
		}
		return nil
	})
}

// GetStats implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetStats(ctx context.Context) (employee.EmployeeStatsResponse, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	var resp employee.EmployeeStatsResponse
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.employeeRepo.CountActive(gCtx)
		if err != nil {
			return fmt.Errorf("count active employees: %w", err)
		}
		resp.TotalEmployees = total
		return nil
	})

	g.Go(func() error {
		counts, err := s.employeeRepo.CountByDepartment(gCtx)
		if err != nil {
			return fmt.Errorf("count by department: %w", err)
		}
		resp.DepartmentStats = counts
		return nil
	})

	g.Go(func() error {
		counts, err := s.employeeRepo.CountByGender(gCtx)
		if err != nil {
			return fmt.Errorf("count by gender: %w", err)
		}
		resp.GenderStats = counts
		return nil
	})

	g.Go(func() error {
		hires, err := s.employeeRepo.CountHiredBetween(gCtx, monthStart, monthEnd)
		if err != nil {
			return fmt.Errorf("count new hires: %w", err)
		}
		resp.NewHires = hires
		return nil
	})

	if err := g.Wait(); err != nil {
		return employee.EmployeeStatsResponse{}, err
	}
	return resp, nil
}

var exportHeaders = []string{
	"Employee Number", "First Name", "Last Name", "Email", "Phone", "Department",
	"Job Title", "Manager", "Hire Date", "Employment Type", "Salary", "Status",
}

// ExportEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ExportEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]byte, error) {
	filter.Page, filter.Limit = 1, 0
	employees, _, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(employees))
	for _, e := range employees {
		var salary any
		if e.Salary.Valid {
			salary = e.Salary.Decimal.InexactFloat64()
		}
		rows = append(rows, []any{
			e.EmployeeNumber, e.FirstName, e.LastName, deref(e.Email), deref(e.Phone),
			deref(e.DepartmentName), deref(e.JobTitle), deref(e.ManagerName), deref(e.HireDate),
			deref(e.EmploymentType), salary, string(e.Status),
		})
	}

	return export.Table("Employees", exportHeaders, rows)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
