package performance

import "context"

type ReviewRepository interface {
	Create(ctx context.Context, review Review) (Review, error)
	GetByID(ctx context.Context, id int64) (Review, error)
	List(ctx context.Context, filter ReviewFilter) ([]Review, error)
	Update(ctx context.Context, req UpdateReviewRequest) error
	Delete(ctx context.Context, id int64) error

	GetOverview(ctx context.Context, year int) (Overview, error)
	// ListRatings returns every non-null rating reviewed in year.
	ListRatings(ctx context.Context, year int) ([]float64, error)
	ListTopPerformers(ctx context.Context, year int, limit int) ([]TopPerformer, error)
}
