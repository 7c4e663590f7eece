package training

import "context"

type TrainingRepository interface {
	CreateProgram(ctx context.Context, program Program) (Program, error)
	GetProgram(ctx context.Context, id int64) (Program, error)
	ListPrograms(ctx context.Context, status *string) ([]Program, error)
	UpdateProgram(ctx context.Context, req UpdateProgramRequest) error
	// DeleteProgram removes the program and, by cascade, its enrollments.
	DeleteProgram(ctx context.Context, id int64) error

	// CreateEnrollment fails with ErrDuplicateEnrollment on an existing pair.
	CreateEnrollment(ctx context.Context, enrollment Enrollment) (Enrollment, error)
	GetEnrollment(ctx context.Context, id int64) (Enrollment, error)
	ListEnrollments(ctx context.Context, programID int64) ([]Enrollment, error)
	UpdateEnrollment(ctx context.Context, req UpdateEnrollmentRequest) error
	DeleteEnrollment(ctx context.Context, id int64) error
	// RecountEnrollments stores and returns the live enrollment count.
	RecountEnrollments(ctx context.Context, programID int64) (int, error)

	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountEnrollments(ctx context.Context) (int64, error)
	GetCompletionStats(ctx context.Context) (CompletionStats, error)
}
