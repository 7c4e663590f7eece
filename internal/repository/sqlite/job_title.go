package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/jobtitle"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type jobTitleRepositoryImpl struct {
	db *database.DB
}

func NewJobTitleRepository(db *database.DB) jobtitle.JobTitleRepository {
	return &jobTitleRepositoryImpl{db: db}
}

const jobTitleSelect = `
	SELECT j.id, j.title, j.code, j.department_id, j.level, j.description, j.responsibilities,
	       j.requirements, j.min_salary, j.max_salary, j.is_active, j.created_at, j.updated_at, d.name
	FROM job_titles j
	LEFT JOIN departments d ON j.department_id = d.id
`

func scanJobTitle(row interface{ Scan(...any) error }) (jobtitle.JobTitle, error) {
	var j jobtitle.JobTitle
	err := row.Scan(
		&j.ID,
		&j.Title,
		&j.Code,
		&j.DepartmentID,
		&j.Level,
		&j.Description,
		&j.Responsibilities,
		&j.Requirements,
		&j.MinSalary,
		&j.MaxSalary,
		&j.IsActive,
		&j.CreatedAt,
		&j.UpdatedAt,
		&j.DepartmentName,
	)
	return j, err
}

// Create implements jobtitle.JobTitleRepository.
func (r *jobTitleRepositoryImpl) Create(ctx context.Context, j jobtitle.JobTitle) (jobtitle.JobTitle, error) {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `
		INSERT INTO job_titles (title, code, department_id, level, description, responsibilities, requirements, min_salary, max_salary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.Title, j.Code, j.DepartmentID, j.Level, j.Description, j.Responsibilities, j.Requirements, j.MinSalary, j.MaxSalary,
	)
	if err != nil {
		if isUniqueViolation(err, "job_titles.code") {
			return jobtitle.JobTitle{}, jobtitle.ErrJobTitleCodeExists
		}
		return jobtitle.JobTitle{}, fmt.Errorf("failed to create job title: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return jobtitle.JobTitle{}, fmt.Errorf("failed to read job title id: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID implements jobtitle.JobTitleRepository.
func (r *jobTitleRepositoryImpl) GetByID(ctx context.Context, id int64) (jobtitle.JobTitle, error) {
	q := GetQuerier(ctx, r.db)

	j, err := scanJobTitle(q.QueryRowContext(ctx, jobTitleSelect+" WHERE j.id = ? AND j.is_active = 1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jobtitle.JobTitle{}, jobtitle.ErrJobTitleNotFound
		}
		return jobtitle.JobTitle{}, fmt.Errorf("failed to get job title with id %d: %w", id, err)
	}
	return j, nil
}

// List implements jobtitle.JobTitleRepository.
func (r *jobTitleRepositoryImpl) List(ctx context.Context, departmentID *int64) ([]jobtitle.JobTitle, error) {
	q := GetQuerier(ctx, r.db)

	query := jobTitleSelect + " WHERE j.is_active = 1"
	args := []any{}
	if departmentID != nil {
		query += " AND j.department_id = ?"
		args = append(args, *departmentID)
	}
	query += " ORDER BY j.title"

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job titles: %w", err)
	}
	defer rows.Close()

	titles := []jobtitle.JobTitle{}
	for rows.Next() {
		j, err := scanJobTitle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job title: %w", err)
		}
		titles = append(titles, j)
	}
	return titles, rows.Err()
}

// Update implements jobtitle.JobTitleRepository.
func (r *jobTitleRepositoryImpl) Update(ctx context.Context, req jobtitle.UpdateJobTitleRequest) error {
	q := GetQuerier(ctx, r.db)

	var u updateSet
	if req.Title != nil {
		u.set("title", *req.Title)
	}
	if req.Code != nil {
		u.set("code", nullIfEmpty(req.Code))
	}
	if req.DepartmentID != nil {
		u.set("department_id", nullIfZero(req.DepartmentID))
	}
	if req.Level != nil {
		u.set("level", nullIfEmpty(req.Level))
	}
	if req.Description != nil {
		u.set("description", nullIfEmpty(req.Description))
	}
	if req.Responsibilities != nil {
		u.set("responsibilities", nullIfEmpty(req.Responsibilities))
	}
	if req.Requirements != nil {
		u.set("requirements", nullIfEmpty(req.Requirements))
	}
	if req.MinSalary != nil {
		u.set("min_salary", *req.MinSalary)
	}
	if req.MaxSalary != nil {
		u.set("max_salary", *req.MaxSalary)
	}
	if u.empty() {
		return nil
	}

	query, args := u.query("job_titles", "id = ? AND is_active = 1", req.ID)
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err, "job_titles.code") {
			return jobtitle.ErrJobTitleCodeExists
		}
		return fmt.Errorf("failed to update job title with id %d: %w", req.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return jobtitle.ErrJobTitleNotFound
	}
	return nil
}

// SoftDelete implements jobtitle.JobTitleRepository.
func (r *jobTitleRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx,
		`UPDATE job_titles SET is_active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND is_active = 1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job title with id %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return jobtitle.ErrJobTitleNotFound
	}
	return nil
}
