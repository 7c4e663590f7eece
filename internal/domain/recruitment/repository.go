package recruitment

import "context"

type RecruitmentRepository interface {
	CreatePosting(ctx context.Context, newPosting Posting) (Posting, error)
	GetPosting(ctx context.Context, id int64) (Posting, error)
	ListPostings(ctx context.Context, status *string) ([]Posting, error)
	UpdatePosting(ctx context.Context, req UpdatePostingRequest) error
	SetPostingStatus(ctx context.Context, id int64, status PostingStatus) error
	DeletePosting(ctx context.Context, id int64) error

	CreateApplication(ctx context.Context, newApplication Application) (Application, error)
	GetApplication(ctx context.Context, id int64) (Application, error)
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]Application, error)
	// UpdateApplicationReview writes status, interview fields and reviewer.
	UpdateApplicationReview(ctx context.Context, a Application) error
	CountAccepted(ctx context.Context, postingID int64) (int, error)
}
