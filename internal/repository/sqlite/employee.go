package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/utils"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT e.id, e.employee_number, e.first_name, e.last_name, e.email, e.phone, e.date_of_birth,
	       e.gender, e.national_id, e.marital_status, e.address, e.city, e.country,
	       e.department_id, e.job_title_id, e.manager_id, e.hire_date, e.employment_type,
	       e.work_location, e.salary, e.status, e.profile_image, e.created_at, e.updated_at,
	       d.name, j.title, j.description,
	       CASE WHEN m.id IS NULL THEN NULL ELSE m.first_name || ' ' || m.last_name END
	FROM employees e
	LEFT JOIN departments d ON e.department_id = d.id
	LEFT JOIN job_titles j ON e.job_title_id = j.id
	LEFT JOIN employees m ON e.manager_id = m.id
`

func scanEmployee(row interface{ Scan(...any) error }) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.EmployeeNumber,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.Phone,
		&e.DateOfBirth,
		&e.Gender,
		&e.NationalID,
		&e.MaritalStatus,
		&e.Address,
		&e.City,
		&e.Country,
		&e.DepartmentID,
		&e.JobTitleID,
		&e.ManagerID,
		&e.HireDate,
		&e.EmploymentType,
		&e.WorkLocation,
		&e.Salary,
		&e.Status,
		&e.ProfileImage,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.DepartmentName,
		&e.JobTitle,
		&e.JobDescription,
		&e.ManagerName,
	)
	return e, err
}

// mapEmployeeWriteError translates constraint failures on the employees table.
func mapEmployeeWriteError(err error) error {
	switch {
	case isUniqueViolation(err, "employees.employee_number"):
		return employee.ErrEmployeeNumberExists
	case isUniqueViolation(err, "employees.email"):
		return employee.ErrEmailExists
	case isUniqueViolation(err, "employees.national_id"):
		return employee.ErrNationalIDExists
	case isForeignKeyViolation(err):
		return employee.ErrInvalidReference
	}
	return nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_number, first_name, last_name, email, phone, date_of_birth, gender,
			national_id, marital_status, address, city, country, department_id, job_title_id,
			manager_id, hire_date, employment_type, work_location, salary, status, profile_image
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	status := e.Status
	if status == "" {
		status = employee.StatusActive
	}
	res, err := q.ExecContext(ctx, query,
		e.EmployeeNumber, e.FirstName, e.LastName, e.Email, e.Phone, e.DateOfBirth, e.Gender,
		e.NationalID, e.MaritalStatus, e.Address, e.City, e.Country, e.DepartmentID, e.JobTitleID,
		e.ManagerID, e.HireDate, e.EmploymentType, e.WorkLocation, e.Salary, status, e.ProfileImage,
	)
	if err != nil {
		if mapped := mapEmployeeWriteError(err); mapped != nil {
			return employee.Employee{}, mapped
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to read employee id: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRowContext(ctx, employeeSelect+" WHERE e.id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %d: %w", id, err)
	}
	return e, nil
}

// Exists implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Exists(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, r.db)
	var exists bool
	if err := q.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE id = ?)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee: %w", err)
	}
	return exists, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1 = 1"}
	args := []any{}

	if filter.DepartmentID != nil {
		conditions = append(conditions, "e.department_id = ?")
		args = append(args, *filter.DepartmentID)
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, "e.status = ?")
		args = append(args, *filter.Status)
	}
	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, "(e.first_name LIKE ? OR e.last_name LIKE ? OR e.email LIKE ? OR e.employee_number LIKE ?)")
		like := "%" + *filter.Search + "%"
		args = append(args, like, like, like, like)
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees e"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := employeeSelect + where + " ORDER BY e.created_at DESC, e.id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, utils.Offset(filter.Page, filter.Limit))
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	var u updateSet
	if req.FirstName != nil {
		u.set("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		u.set("last_name", *req.LastName)
	}
	if req.Email != nil {
		u.set("email", nullIfEmpty(req.Email))
	}
	if req.Phone != nil {
		u.set("phone", nullIfEmpty(req.Phone))
	}
	if req.DateOfBirth != nil {
		u.set("date_of_birth", nullIfEmpty(req.DateOfBirth))
	}
	if req.Gender != nil {
		u.set("gender", nullIfEmpty(req.Gender))
	}
	if req.NationalID != nil {
		u.set("national_id", nullIfEmpty(req.NationalID))
	}
	if req.MaritalStatus != nil {
		u.set("marital_status", nullIfEmpty(req.MaritalStatus))
	}
	if req.Address != nil {
		u.set("address", nullIfEmpty(req.Address))
	}
	if req.City != nil {
		u.set("city", nullIfEmpty(req.City))
	}
	if req.Country != nil {
		u.set("country", nullIfEmpty(req.Country))
	}
	if req.DepartmentID != nil {
		u.set("department_id", nullIfZero(req.DepartmentID))
	}
	if req.JobTitleID != nil {
		u.set("job_title_id", nullIfZero(req.JobTitleID))
	}
	if req.ManagerID != nil {
		u.set("manager_id", nullIfZero(req.ManagerID))
	}
	if req.HireDate != nil {
		u.set("hire_date", *req.HireDate)
	}
	if req.EmploymentType != nil {
		u.set("employment_type", nullIfEmpty(req.EmploymentType))
	}
	if req.WorkLocation != nil {
		u.set("work_location", nullIfEmpty(req.WorkLocation))
	}
	if req.Salary != nil {
		u.set("salary", *req.Salary)
	}
	if req.Status != nil {
		u.set("status", *req.Status)
	}
	if req.ProfileImage != nil {
		u.set("profile_image", nullIfEmpty(req.ProfileImage))
	}
	if u.empty() {
		return nil
	}

	query, args := u.query("employees", "id = ?", req.ID)
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := mapEmployeeWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to update employee with id %d: %w", req.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx,
		`UPDATE employees SET status = 'inactive', updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee with id %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// CountActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var n int64
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees WHERE status = 'active'`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return n, nil
}

func (r *employeeRepositoryImpl) namedCounts(ctx context.Context, query string) ([]employee.NamedCount, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	defer rows.Close()

	counts := []employee.NamedCount{}
	for rows.Next() {
		var c employee.NamedCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// CountByDepartment implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountByDepartment(ctx context.Context) ([]employee.NamedCount, error) {
	return r.namedCounts(ctx, `
		SELECT d.name, COUNT(e.id)
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id AND e.status = 'active'
		WHERE d.is_active = 1
		GROUP BY d.id, d.name
		ORDER BY d.name
	`)
}

// CountByGender implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountByGender(ctx context.Context) ([]employee.NamedCount, error) {
	return r.namedCounts(ctx, `
		SELECT COALESCE(gender, 'unspecified'), COUNT(*)
		FROM employees
		WHERE status = 'active'
		GROUP BY COALESCE(gender, 'unspecified')
		ORDER BY 1
	`)
}

// CountHiredBetween implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountHiredBetween(ctx context.Context, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var n int64
	err := q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM employees WHERE hire_date >= ? AND hire_date <= ?`,
		utils.FormatDate(from), utils.FormatDate(to),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count new hires: %w", err)
	}
	return n, nil
}
