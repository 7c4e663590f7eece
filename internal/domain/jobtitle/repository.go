package jobtitle

import "context"

type JobTitleRepository interface {
	Create(ctx context.Context, newJobTitle JobTitle) (JobTitle, error)
	GetByID(ctx context.Context, id int64) (JobTitle, error)
	List(ctx context.Context, departmentID *int64) ([]JobTitle, error)
	Update(ctx context.Context, req UpdateJobTitleRequest) error
	SoftDelete(ctx context.Context, id int64) error
}
