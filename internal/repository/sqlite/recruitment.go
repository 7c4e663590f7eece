package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/recruitment"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type recruitmentRepositoryImpl struct {
	db *database.DB
}

func NewRecruitmentRepository(db *database.DB) recruitment.RecruitmentRepository {
	return &recruitmentRepositoryImpl{db: db}
}

const postingSelect = `
	SELECT p.id, p.title, p.department_id, p.job_title_id, p.description, p.requirements, p.vacancies,
	       p.salary_range, p.employment_type, p.location, p.status, p.posted_date, p.closing_date,
	       p.created_by, p.created_at, p.updated_at, d.name, j.title,
	       (SELECT COUNT(*) FROM job_applications a WHERE a.job_posting_id = p.id)
	FROM job_postings p
	LEFT JOIN departments d ON p.department_id = d.id
	LEFT JOIN job_titles j ON p.job_title_id = j.id
`

func scanPosting(row interface{ Scan(...any) error }) (recruitment.Posting, error) {
	var p recruitment.Posting
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.DepartmentID,
		&p.JobTitleID,
		&p.Description,
		&p.Requirements,
		&p.Vacancies,
		&p.SalaryRange,
		&p.EmploymentType,
		&p.Location,
		&p.Status,
		&p.PostedDate,
		&p.ClosingDate,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DepartmentName,
		&p.JobTitleName,
		&p.ApplicationCount,
	)
	return p, err
}

const applicationSelect = `
	SELECT a.id, a.job_posting_id, a.applicant_name, a.email, a.phone, a.resume_file, a.cover_letter,
	       a.experience_years, a.education, a.status, a.interview_date, a.interview_notes, a.applied_date,
	       a.reviewed_by, a.reviewed_date, a.created_at, a.updated_at, p.title
	FROM job_applications a
	LEFT JOIN job_postings p ON a.job_posting_id = p.id
`

func scanApplication(row interface{ Scan(...any) error }) (recruitment.Application, error) {
	var a recruitment.Application
	err := row.Scan(
		&a.ID,
		&a.JobPostingID,
		&a.ApplicantName,
		&a.Email,
		&a.Phone,
		&a.ResumeFile,
		&a.CoverLetter,
		&a.ExperienceYears,
		&a.Education,
		&a.Status,
		&a.InterviewDate,
		&a.InterviewNotes,
		&a.AppliedDate,
		&a.ReviewedBy,
		&a.ReviewedDate,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.PostingTitle,
	)
	return a, err
}

// CreatePosting implements recruitment.RecruitmentRepository.
func (r *recruitmentRepositoryImpl) CreatePosting(ctx context.Context, p recruitment.Posting) (recruitment.Posting, error) {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `
		INSERT INTO job_postings (title, department_id, job_title_id, description, requirements, vacancies,
		                          salary_range, employment_type, location, status, posted_date, closing_date, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.DepartmentID, p.JobTitleID, p.Description, p.Requirements, p.Vacancies,
		p.SalaryRange, p.EmploymentType, p.Location, p.Status, p.PostedDate, p.ClosingDate, p.CreatedBy,
	)
	if err != nil {
		return recruitment.Posting{}, fmt.Errorf("failed to create job posting: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return recruitment.Posting{}, fmt.Errorf("failed to read job posting id: %w", err)
	}
	return r.GetPosting(ctx, id)
}

// GetPosting implements recruitment.RecruitmentRepository.
func (r *recruitmentRepositoryImpl) GetPosting(ctx context.Context, id int64) (recruitment.Posting, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPosting(q.QueryRowContext(ctx, postingSelect+" WHERE p.id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return recruitment.Posting{}, recruitment.ErrPostingNotFound
		}
		return recruitment.Posting{}, fmt.Errorf("failed to get job posting with id %d: %w", id, err)
	}
	return p, nil
}

// ListPostings implements recruitment.RecruitmentRepository.
func (r *recruitmentRepositoryImpl) ListPostings(ctx context.Context, status *string) ([]recruitment.Posting, error) {
	q := GetQuerier(ctx, r.db)

	query := postingSelect
	args := []any{}
	if status != nil {
		query += " WHERE p.status = ?"
		args = append(args, *status)
	}
	query += " ORDER BY p.posted_date DESC, p.id DESC"

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	postings := []recruitment.Posting{}
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, p)
	}
	return postings, rows.Err()
}

// UpdatePosting implements recruitment.RecruitmentRepository.
func (r *recruitmentRepositoryImpl) UpdatePosting(ctx context.Context, req recruitment.UpdatePostingRequest) error {
	q := GetQuerier(ctx, r.db)

	var u updateSet
	if req.Title != nil {
		u.set("title", *req.Title)
	}
	if req.DepartmentID != nil {
		u.set("department_id", nullIfZero(req.DepartmentID))
	}
	if req.JobTitleID != nil {
		u.set("job_title_id", nullIfZero(req.JobTitleID))
	}
	if req.Description != nil {
		u.set("description", nullIfEmpty(req.Description))
	}
	if req.Requirements != nil {
		u.set("requirements", nullIfEmpty(req.Requirements))
	}
	if req.Vacancies != nil {
		u.set("vacancies", *req.Vacancies)
	}
	if req.SalaryRange != nil {
		u.set("salary_range", nullIfEmpty(req.SalaryRange))
	}
	if req.EmploymentType != nil {
		u.set("employment_type", nullIfEmpty(req.EmploymentType))
	}
	if req.Location != nil {
		u.set("location", nullIfEmpty(req.Location))
	}
	if req.Status != nil {
		u.set("status", *req.Status)
	}
	if req.ClosingDate != nil {
		u.set("closing_date", nullIfEmpty(req.ClosingDate))
	}
	if u.empty() {
		return nil
	}

	query, args := u.query("job_postings", "id = ?", req.ID)
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update job posting with id %d: %w", req.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return recruitment.ErrPostingNotFound
	}
	return nil
}

// SetPostingStatus implements recruitment.RecruitmentRepository.
func (r *recruitmentRepositoryImpl) SetPostingStatus(ctx context.Context, id int64, status recruitment.PostingStatus) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx,
		`UPDATE job_postings SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to set job posting %d status: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return recruitment.ErrPostingNotFound
	}
	return nil
}

// DeletePosting implements recruitment.RecruitmentRepository.
func (r *recruitmentRepositoryImpl) DeletePosting(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `DELETE FROM job_postings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job posting %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return recruitment.ErrPostingNotFound
	}
	return nil
}

// CreateApplication implements recruitment.RecruitmentRepository.
func (r *recruitmentRepositoryImpl) CreateApplication(ctx context.Context, a recruitment.Application) (recruitment.Application, error) {
	q := GetQuerier(ctx, r.db)

	status := a.Status
	if status == "" {
		status = recruitment.ApplicationPending
	}
	res, err := q.ExecContext(ctx, `
		INSERT INTO job_applications (job_posting_id, applicant_name, email, phone, resume_file, cover_letter,
		                              experience_years, education, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.JobPostingID, a.ApplicantName, a.Email, a.Phone, a.ResumeFile, a.CoverLetter,
		a.ExperienceYears, a.Education, status,
	)
	if err != nil {
		if isUniqueViolation(err, "job_applications.") {
			return recruitment.Application{}, recruitment.ErrDuplicateApplication
		}
		if isForeignKeyViolation(err) {
			return recruitment.Application{}, recruitment.ErrPostingNotFound
		}
		return recruitment.Application{}, fmt.Errorf("failed to create job application: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return recruitment.Application{}, fmt.Errorf("failed to read job application id: %w", err)
	}
	return r.GetApplication(ctx, id)
}

// GetApplication implements recruitment.RecruitmentRepository.
func (r *recruitmentRepositoryImpl) GetApplication(ctx context.Context, id int64) (recruitment.Application, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanApplication(q.QueryRowContext(ctx, applicationSelect+" WHERE a.id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return recruitment.Application{}, recruitment.ErrApplicationNotFound
		}
		return recruitment.Application{}, fmt.Errorf("failed to get job application with id %d: %w", id, err)
	}
	return a, nil
}

// ListApplications implements recruitment.RecruitmentRepository.
func (r *recruitmentRepositoryImpl) ListApplications(ctx context.Context, filter recruitment.ApplicationFilter) ([]recruitment.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := applicationSelect + " WHERE 1 = 1"
	args := []any{}
	if filter.Status != nil {
		query += " AND a.status = ?"
		args = append(args, *filter.Status)
	}
	if filter.JobPostingID != nil {
		query += " AND a.job_posting_id = ?"
		args = append(args, *filter.JobPostingID)
	}
	query += " ORDER BY a.applied_date DESC, a.id DESC"

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}
	defer rows.Close()

	applications := []recruitment.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job application: %w", err)
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

// UpdateApplicationReview implements recruitment.RecruitmentRepository.
func (r *recruitmentRepositoryImpl) UpdateApplicationReview(ctx context.Context, a recruitment.Application) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `
		UPDATE job_applications
		SET status = ?, interview_date = ?, interview_notes = ?, reviewed_by = ?,
		    reviewed_date = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		a.Status, a.InterviewDate, a.InterviewNotes, a.ReviewedBy, a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job application %d: %w", a.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return recruitment.ErrApplicationNotFound
	}
	return nil
}

// CountAccepted implements recruitment.RecruitmentRepository.
func (r *recruitmentRepositoryImpl) CountAccepted(ctx context.Context, postingID int64) (int, error) {
	q := GetQuerier(ctx, r.db)

	var n int
	err := q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM job_applications WHERE job_posting_id = ? AND status = ?`,
		postingID, recruitment.ApplicationAccepted,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count accepted applications for posting %d: %w", postingID, err)
	}
	return n, nil
}
