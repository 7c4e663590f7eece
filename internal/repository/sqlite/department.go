package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/department"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

const departmentSelect = `
	SELECT d.id, d.name, d.code, d.description, d.parent_id, d.manager_id, d.budget,
	       d.employee_count, d.is_active, d.created_at, d.updated_at,
	       CASE WHEN m.id IS NULL THEN NULL ELSE m.first_name || ' ' || m.last_name END,
	       p.name
	FROM departments d
	LEFT JOIN employees m ON d.manager_id = m.id
	LEFT JOIN departments p ON d.parent_id = p.id
`

func scanDepartment(row interface{ Scan(...any) error }) (department.Department, error) {
	var d department.Department
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Code,
		&d.Description,
		&d.ParentID,
		&d.ManagerID,
		&d.Budget,
		&d.EmployeeCount,
		&d.IsActive,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.ManagerName,
		&d.ParentName,
	)
	return d, err
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx,
		`INSERT INTO departments (name, code, description, parent_id, manager_id, budget) VALUES (?, ?, ?, ?, ?, ?)`,
		d.Name, d.Code, d.Description, d.ParentID, d.ManagerID, d.Budget,
	)
	if err != nil {
		if isUniqueViolation(err, "departments.code") {
			return department.Department{}, department.ErrDepartmentCodeExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to read department id: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id int64) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDepartment(q.QueryRowContext(ctx, departmentSelect+" WHERE d.id = ? AND d.is_active = 1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department with id %d: %w", id, err)
	}
	return d, nil
}

// Exists implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Exists(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, r.db)
	var exists bool
	err := q.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM departments WHERE id = ? AND is_active = 1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check department: %w", err)
	}
	return exists, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.QueryContext(ctx, departmentSelect+" WHERE d.is_active = 1 ORDER BY d.name")
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	departments := []department.Department{}
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// ListRoster implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) ListRoster(ctx context.Context, departmentID int64) ([]department.RosterEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.employee_number, e.first_name, e.last_name, e.email, e.phone, j.title, e.hire_date
		FROM employees e
		LEFT JOIN job_titles j ON e.job_title_id = j.id
		WHERE e.department_id = ? AND e.status = 'active'
		ORDER BY e.first_name, e.last_name
	`
	rows, err := q.QueryContext(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list department roster: %w", err)
	}
	defer rows.Close()

	roster := []department.RosterEntry{}
	for rows.Next() {
		var e department.RosterEntry
		if err := rows.Scan(&e.ID, &e.EmployeeNumber, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.JobTitle, &e.HireDate); err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		roster = append(roster, e)
	}
	return roster, rows.Err()
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) error {
	q := GetQuerier(ctx, r.db)

	var u updateSet
	if req.Name != nil {
		u.set("name", *req.Name)
	}
	if req.Code != nil {
		u.set("code", nullIfEmpty(req.Code))
	}
	if req.Description != nil {
		u.set("description", nullIfEmpty(req.Description))
	}
	if req.ParentID != nil {
		u.set("parent_id", nullIfZero(req.ParentID))
	}
	if req.ManagerID != nil {
		u.set("manager_id", nullIfZero(req.ManagerID))
	}
	if req.Budget != nil {
		u.set("budget", *req.Budget)
	}
	if u.empty() {
		return nil
	}

	query, args := u.query("departments", "id = ? AND is_active = 1", req.ID)
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err, "departments.code") {
			return department.ErrDepartmentCodeExists
		}
		return fmt.Errorf("failed to update department with id %d: %w", req.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

// SoftDelete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx,
		`UPDATE departments SET is_active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND is_active = 1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department with id %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

// CountActiveEmployees implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) CountActiveEmployees(ctx context.Context, id int64) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var n int64
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees WHERE department_id = ? AND status = 'active'`, id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count department employees: %w", err)
	}
	return n, nil
}

// RecountEmployees implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) RecountEmployees(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.ExecContext(ctx, `
		UPDATE departments
		SET employee_count = (SELECT COUNT(*) FROM employees WHERE department_id = ? AND status = 'active'),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, id, id)
	if err != nil {
		return fmt.Errorf("failed to recount department %d: %w", id, err)
	}
	return nil
}

// ListStats implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) ListStats(ctx context.Context) ([]department.Stats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.code, d.budget,
		       (SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id AND e.status = 'active'),
		       (SELECT COUNT(*) FROM job_titles j WHERE j.department_id = d.id AND j.is_active = 1),
		       (SELECT AVG(e.salary) FROM employees e WHERE e.department_id = d.id AND e.status = 'active')
		FROM departments d
		WHERE d.is_active = 1
		ORDER BY d.name
	`
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load department stats: %w", err)
	}
	defer rows.Close()

	stats := []department.Stats{}
	for rows.Next() {
		var s department.Stats
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.Budget, &s.EmployeeCount, &s.JobPositions, &s.AvgSalary); err != nil {
			return nil, fmt.Errorf("failed to scan department stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
