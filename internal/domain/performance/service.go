package performance

import "context"

type PerformanceService interface {
	ListReviews(ctx context.Context, filter ReviewFilter) ([]ReviewResponse, error)
	// GetReview is limited to the subject, the reviewer, admin and hr.
	GetReview(ctx context.Context, id int64) (ReviewResponse, error)
	// CreateReview records the caller's employee as reviewer.
	CreateReview(ctx context.Context, req CreateReviewRequest) (CreateReviewResponse, error)
	// UpdateReview is limited to admin, hr and the original reviewer.
	UpdateReview(ctx context.Context, req UpdateReviewRequest) (ReviewResponse, error)
	DeleteReview(ctx context.Context, id int64) error
	GetStats(ctx context.Context, year int) (StatsResponse, error)
}
