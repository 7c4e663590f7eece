package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/performance"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) performance.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

const reviewSelect = `
	SELECT pr.id, pr.employee_id, pr.reviewer_id, pr.review_period, pr.review_date, pr.overall_rating,
	       pr.strengths, pr.areas_for_improvement, pr.goals, pr.comments, pr.status,
	       pr.created_at, pr.updated_at,
	       e.first_name || ' ' || e.last_name, e.employee_number,
	       CASE WHEN rv.id IS NULL THEN NULL ELSE rv.first_name || ' ' || rv.last_name END,
	       d.name
	FROM performance_reviews pr
	JOIN employees e ON pr.employee_id = e.id
	LEFT JOIN employees rv ON pr.reviewer_id = rv.id
	LEFT JOIN departments d ON e.department_id = d.id
`

// reviewYear matches reviews whose review_date falls in a calendar year.
const reviewYear = `CAST(strftime('%Y', pr.review_date) AS INTEGER) = ?`

func scanReview(row interface{ Scan(...any) error }) (performance.Review, error) {
	var pr performance.Review
	err := row.Scan(
		&pr.ID,
		&pr.EmployeeID,
		&pr.ReviewerID,
		&pr.ReviewPeriod,
		&pr.ReviewDate,
		&pr.OverallRating,
		&pr.Strengths,
		&pr.AreasForImprovement,
		&pr.Goals,
		&pr.Comments,
		&pr.Status,
		&pr.CreatedAt,
		&pr.UpdatedAt,
		&pr.EmployeeName,
		&pr.EmployeeNumber,
		&pr.ReviewerName,
		&pr.DepartmentName,
	)
	return pr, err
}

// Create implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) Create(ctx context.Context, pr performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	status := pr.Status
	if status == "" {
		status = performance.StatusDraft
	}
	res, err := q.ExecContext(ctx, `
		INSERT INTO performance_reviews (
			employee_id, reviewer_id, review_period, review_date, overall_rating,
			strengths, areas_for_improvement, goals, comments, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		pr.EmployeeID, pr.ReviewerID, pr.ReviewPeriod, pr.ReviewDate, pr.OverallRating,
		pr.Strengths, pr.AreasForImprovement, pr.Goals, pr.Comments, status,
	)
	if err != nil {
		if isUniqueViolation(err, "performance_reviews.") {
			return performance.Review{}, performance.ErrReviewAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return performance.Review{}, performance.ErrEmployeeNotFound
		}
		return performance.Review{}, fmt.Errorf("failed to create performance review: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return performance.Review{}, fmt.Errorf("failed to read review id: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) GetByID(ctx context.Context, id int64) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	pr, err := scanReview(q.QueryRowContext(ctx, reviewSelect+" WHERE pr.id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return performance.Review{}, performance.ErrReviewNotFound
		}
		return performance.Review{}, fmt.Errorf("failed to get review with id %d: %w", id, err)
	}
	return pr, nil
}

// List implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) List(ctx context.Context, filter performance.ReviewFilter) ([]performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1 = 1"}
	args := []any{}
	if filter.EmployeeID != nil {
		conditions = append(conditions, "pr.employee_id = ?")
		args = append(args, *filter.EmployeeID)
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, "pr.status = ?")
		args = append(args, *filter.Status)
	}
	if filter.ReviewPeriod != nil && *filter.ReviewPeriod != "" {
		conditions = append(conditions, "pr.review_period = ?")
		args = append(args, *filter.ReviewPeriod)
	}

	query := reviewSelect + " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY pr.review_date DESC, pr.id DESC"
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	reviews := []performance.Review{}
	for rows.Next() {
		pr, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, pr)
	}
	return reviews, rows.Err()
}

// Update implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) Update(ctx context.Context, req performance.UpdateReviewRequest) error {
	q := GetQuerier(ctx, r.db)

	var u updateSet
	if req.ReviewPeriod != nil {
		u.set("review_period", *req.ReviewPeriod)
	}
	if req.ReviewDate != nil {
		u.set("review_date", *req.ReviewDate)
	}
	if req.OverallRating != nil {
		u.set("overall_rating", *req.OverallRating)
	}
	if req.Strengths != nil {
		u.set("strengths", nullIfEmpty(req.Strengths))
	}
	if req.AreasForImprovement != nil {
		u.set("areas_for_improvement", nullIfEmpty(req.AreasForImprovement))
	}
	if req.Goals != nil {
		u.set("goals", nullIfEmpty(req.Goals))
	}
	if req.Comments != nil {
		u.set("comments", nullIfEmpty(req.Comments))
	}
	if req.Status != nil {
		u.set("status", *req.Status)
	}
	if u.empty() {
		return nil
	}

	query, args := u.query("performance_reviews", "id = ?", req.ID)
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err, "performance_reviews.") {
			return performance.ErrReviewAlreadyExists
		}
		return fmt.Errorf("failed to update review with id %d: %w", req.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return performance.ErrReviewNotFound
	}
	return nil
}

// Delete implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `DELETE FROM performance_reviews WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return performance.ErrReviewNotFound
	}
	return nil
}

// GetOverview implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) GetOverview(ctx context.Context, year int) (performance.Overview, error) {
	q := GetQuerier(ctx, r.db)

	var o performance.Overview
	err := q.QueryRowContext(ctx, `
		SELECT AVG(pr.overall_rating),
		       COUNT(*),
		       COALESCE(SUM(CASE WHEN pr.status = 'approved' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN pr.status = 'draft' THEN 1 ELSE 0 END), 0)
		FROM performance_reviews pr
		WHERE `+reviewYear, year,
	).Scan(&o.AverageRating, &o.TotalReviews, &o.Approved, &o.Draft)
	if err != nil {
		return performance.Overview{}, fmt.Errorf("failed to load review overview: %w", err)
	}
	return o, nil
}

// ListRatings implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) ListRatings(ctx context.Context, year int) ([]float64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.QueryContext(ctx,
		`SELECT pr.overall_rating FROM performance_reviews pr WHERE pr.overall_rating IS NOT NULL AND `+reviewYear, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer rows.Close()

	ratings := []float64{}
	for rows.Next() {
		var rating float64
		if err := rows.Scan(&rating); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

// ListTopPerformers implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) ListTopPerformers(ctx context.Context, year int, limit int) ([]performance.TopPerformer, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.QueryContext(ctx, `
		SELECT e.id, e.first_name || ' ' || e.last_name, d.name, pr.overall_rating, pr.review_period
		FROM performance_reviews pr
		JOIN employees e ON pr.employee_id = e.id
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE pr.overall_rating IS NOT NULL AND `+reviewYear+`
		ORDER BY pr.overall_rating DESC, pr.review_date DESC
		LIMIT ?`, year, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list top performers: %w", err)
	}
	defer rows.Close()

	top := []performance.TopPerformer{}
	for rows.Next() {
		var t performance.TopPerformer
		if err := rows.Scan(&t.EmployeeID, &t.EmployeeName, &t.Department, &t.OverallRating, &t.ReviewPeriod); err != nil {
			return nil, fmt.Errorf("failed to scan top performer: %w", err)
		}
		top = append(top, t)
	}
	return top, rows.Err()
}
