package recruitment

import "context"

type RecruitmentService interface {
	// ListPostings defaults to open postings; status "all" lists every posting.
	ListPostings(ctx context.Context, status *string) ([]PostingResponse, error)
	GetPosting(ctx context.Context, id int64) (PostingResponse, error)
	CreatePosting(ctx context.Context, req CreatePostingRequest) (PostingResponse, error)
	UpdatePosting(ctx context.Context, req UpdatePostingRequest) (PostingResponse, error)
	DeletePosting(ctx context.Context, id int64) error

	Apply(ctx context.Context, req ApplyRequest) (ApplicationResponse, error)
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]ApplicationResponse, error)
	GetApplication(ctx context.Context, id int64) (ApplicationResponse, error)
	UpdateApplicationStatus(ctx context.Context, req UpdateApplicationStatusRequest) (ApplicationResponse, error)
}
