package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/training"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type trainingRepositoryImpl struct {
	db *database.DB
}

func NewTrainingRepository(db *database.DB) training.TrainingRepository {
	return &trainingRepositoryImpl{db: db}
}

const programSelect = `
	SELECT id, name, description, trainer, location, start_date, end_date, duration_hours,
	       capacity, enrolled_count, cost, status, created_at, updated_at
	FROM training_programs
`

func scanProgram(row interface{ Scan(...any) error }) (training.Program, error) {
	var p training.Program
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Trainer,
		&p.Location,
		&p.StartDate,
		&p.EndDate,
		&p.DurationHours,
		&p.Capacity,
		&p.EnrolledCount,
		&p.Cost,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const enrollmentSelect = `
	SELECT te.id, te.training_program_id, te.employee_id, te.enrollment_date, te.completion_status,
	       te.completion_date, te.score, te.feedback, te.certificate_issued, te.created_at, te.updated_at,
	       e.employee_number, e.first_name || ' ' || e.last_name, e.email, d.name
	FROM training_enrollments te
	JOIN employees e ON te.employee_id = e.id
	LEFT JOIN departments d ON e.department_id = d.id
`

func scanEnrollment(row interface{ Scan(...any) error }) (training.Enrollment, error) {
	var en training.Enrollment
	err := row.Scan(
		&en.ID,
		&en.TrainingProgramID,
		&en.EmployeeID,
		&en.EnrollmentDate,
		&en.CompletionStatus,
		&en.CompletionDate,
		&en.Score,
		&en.Feedback,
		&en.CertificateIssued,
		&en.CreatedAt,
		&en.UpdatedAt,
		&en.EmployeeNumber,
		&en.EmployeeName,
		&en.EmployeeEmail,
		&en.DepartmentName,
	)
	return en, err
}

// CreateProgram implements training.TrainingRepository.
func (r *trainingRepositoryImpl) CreateProgram(ctx context.Context, p training.Program) (training.Program, error) {
	q := GetQuerier(ctx, r.db)

	status := p.Status
	if status == "" {
		status = training.ProgramScheduled
	}
	res, err := q.ExecContext(ctx, `
		INSERT INTO training_programs (
			name, description, trainer, location, start_date, end_date, duration_hours, capacity, cost, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Description, p.Trainer, p.Location, p.StartDate, p.EndDate, p.DurationHours, p.Capacity, p.Cost, status,
	)
	if err != nil {
		return training.Program{}, fmt.Errorf("failed to create training program: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return training.Program{}, fmt.Errorf("failed to read training program id: %w", err)
	}
	return r.GetProgram(ctx, id)
}

// GetProgram implements training.TrainingRepository.
func (r *trainingRepositoryImpl) GetProgram(ctx context.Context, id int64) (training.Program, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProgram(q.QueryRowContext(ctx, programSelect+" WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return training.Program{}, training.ErrProgramNotFound
		}
		return training.Program{}, fmt.Errorf("failed to get training program with id %d: %w", id, err)
	}
	return p, nil
}

// ListPrograms implements training.TrainingRepository.
func (r *trainingRepositoryImpl) ListPrograms(ctx context.Context, status *string) ([]training.Program, error) {
	q := GetQuerier(ctx, r.db)

	query := programSelect
	args := []any{}
	if status != nil && *status != "" {
		query += " WHERE status = ?"
		args = append(args, *status)
	}
	query += " ORDER BY start_date DESC, id DESC"

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list training programs: %w", err)
	}
	defer rows.Close()

	programs := []training.Program{}
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan training program: %w", err)
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

// UpdateProgram implements training.TrainingRepository.
func (r *trainingRepositoryImpl) UpdateProgram(ctx context.Context, req training.UpdateProgramRequest) error {
	q := GetQuerier(ctx, r.db)

	var u updateSet
	if req.Name != nil {
		u.set("name", *req.Name)
	}
	if req.Description != nil {
		u.set("description", nullIfEmpty(req.Description))
	}
	if req.Trainer != nil {
		u.set("trainer", nullIfEmpty(req.Trainer))
	}
	if req.Location != nil {
		u.set("location", nullIfEmpty(req.Location))
	}
	if req.StartDate != nil {
		u.set("start_date", *req.StartDate)
	}
	if req.EndDate != nil {
		u.set("end_date", *req.EndDate)
	}
	if req.DurationHours != nil {
		u.set("duration_hours", *req.DurationHours)
	}
	if req.Capacity != nil {
		u.set("capacity", *req.Capacity)
	}
	if req.Cost != nil {
		u.set("cost", *req.Cost)
	}
	if req.Status != nil {
		u.set("status", *req.Status)
	}
	if u.empty() {
		return nil
	}

	query, args := u.query("training_programs", "id = ?", req.ID)
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update training program with id %d: %w", req.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return training.ErrProgramNotFound
	}
	return nil
}

// DeleteProgram implements training.TrainingRepository.
func (r *trainingRepositoryImpl) DeleteProgram(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `DELETE FROM training_programs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete training program %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return training.ErrProgramNotFound
	}
	return nil
}

// CreateEnrollment implements training.TrainingRepository.
func (r *trainingRepositoryImpl) CreateEnrollment(ctx context.Context, en training.Enrollment) (training.Enrollment, error) {
	q := GetQuerier(ctx, r.db)

	status := en.CompletionStatus
	if status == "" {
		status = training.CompletionEnrolled
	}
	res, err := q.ExecContext(ctx, `
		INSERT INTO training_enrollments (training_program_id, employee_id, enrollment_date, completion_status)
		VALUES (?, ?, ?, ?)`,
		en.TrainingProgramID, en.EmployeeID, en.EnrollmentDate, status,
	)
	if err != nil {
		if isUniqueViolation(err, "training_enrollments.") {
			return training.Enrollment{}, training.ErrDuplicateEnrollment
		}
		if isForeignKeyViolation(err) {
			return training.Enrollment{}, training.ErrEmployeeNotFound
		}
		return training.Enrollment{}, fmt.Errorf("failed to create enrollment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return training.Enrollment{}, fmt.Errorf("failed to read enrollment id: %w", err)
	}
	return r.GetEnrollment(ctx, id)
}

// GetEnrollment implements training.TrainingRepository.
func (r *trainingRepositoryImpl) GetEnrollment(ctx context.Context, id int64) (training.Enrollment, error) {
	q := GetQuerier(ctx, r.db)

	en, err := scanEnrollment(q.QueryRowContext(ctx, enrollmentSelect+" WHERE te.id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return training.Enrollment{}, training.ErrEnrollmentNotFound
		}
		return training.Enrollment{}, fmt.Errorf("failed to get enrollment with id %d: %w", id, err)
	}
	return en, nil
}

// ListEnrollments implements training.TrainingRepository.
func (r *trainingRepositoryImpl) ListEnrollments(ctx context.Context, programID int64) ([]training.Enrollment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.QueryContext(ctx, enrollmentSelect+" WHERE te.training_program_id = ? ORDER BY te.enrollment_date, te.id", programID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []training.Enrollment{}
	for rows.Next() {
		en, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		enrollments = append(enrollments, en)
	}
	return enrollments, rows.Err()
}

// UpdateEnrollment implements training.TrainingRepository.
func (r *trainingRepositoryImpl) UpdateEnrollment(ctx context.Context, req training.UpdateEnrollmentRequest) error {
	q := GetQuerier(ctx, r.db)

	var u updateSet
	if req.CompletionStatus != nil {
		u.set("completion_status", *req.CompletionStatus)
	}
	if req.CompletionDate != nil {
		u.set("completion_date", nullIfEmpty(req.CompletionDate))
	}
	if req.Score != nil {
		u.set("score", *req.Score)
	}
	if req.Feedback != nil {
		u.set("feedback", nullIfEmpty(req.Feedback))
	}
	if req.CertificateIssued != nil {
		u.set("certificate_issued", *req.CertificateIssued)
	}
	if u.empty() {
		return nil
	}

	query, args := u.query("training_enrollments", "id = ?", req.ID)
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update enrollment with id %d: %w", req.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return training.ErrEnrollmentNotFound
	}
	return nil
}

// DeleteEnrollment implements training.TrainingRepository.
func (r *trainingRepositoryImpl) DeleteEnrollment(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `DELETE FROM training_enrollments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete enrollment %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return training.ErrEnrollmentNotFound
	}
	return nil
}

// RecountEnrollments implements training.TrainingRepository.
func (r *trainingRepositoryImpl) RecountEnrollments(ctx context.Context, programID int64) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM training_enrollments WHERE training_program_id = ?`, programID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	if _, err := q.ExecContext(ctx,
		`UPDATE training_programs SET enrolled_count = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, count, programID,
	); err != nil {
		return 0, fmt.Errorf("failed to store enrollment count: %w", err)
	}
	return count, nil
}

// CountByStatus implements training.TrainingRepository.
func (r *trainingRepositoryImpl) CountByStatus(ctx context.Context) ([]training.StatusCount, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.QueryContext(ctx, `SELECT status, COUNT(*) FROM training_programs GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count programs by status: %w", err)
	}
	defer rows.Close()

	counts := []training.StatusCount{}
	for rows.Next() {
		var c training.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// CountEnrollments implements training.TrainingRepository.
func (r *trainingRepositoryImpl) CountEnrollments(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var n int64
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM training_enrollments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return n, nil
}

// GetCompletionStats implements training.TrainingRepository.
func (r *trainingRepositoryImpl) GetCompletionStats(ctx context.Context) (training.CompletionStats, error) {
	q := GetQuerier(ctx, r.db)

	var s training.CompletionStats
	err := q.QueryRowContext(ctx, `
		SELECT COUNT(*), AVG(score)
		FROM training_enrollments
		WHERE completion_status = 'completed'`,
	).Scan(&s.Completed, &s.AverageScore)
	if err != nil {
		return training.CompletionStats{}, fmt.Errorf("failed to load completion stats: %w", err)
	}
	return s, nil
}
