package jobtitle

import "context"

type JobTitleService interface {
	ListJobTitles(ctx context.Context, departmentID *int64) ([]JobTitleResponse, error)
	GetJobTitle(ctx context.Context, id int64) (JobTitleResponse, error)
	CreateJobTitle(ctx context.Context, req CreateJobTitleRequest) (JobTitleResponse, error)
	UpdateJobTitle(ctx context.Context, req UpdateJobTitleRequest) (JobTitleResponse, error)
	DeleteJobTitle(ctx context.Context, id int64) error
}
