package training

import "context"

type TrainingService interface {
	ListPrograms(ctx context.Context, status *string) ([]ProgramResponse, error)
	GetProgram(ctx context.Context, id int64) (ProgramDetailResponse, error)
	CreateProgram(ctx context.Context, req CreateProgramRequest) (CreateProgramResponse, error)
	UpdateProgram(ctx context.Context, req UpdateProgramRequest) (ProgramResponse, error)
	DeleteProgram(ctx context.Context, id int64) error

	// Enroll adds an employee while seats remain.
	Enroll(ctx context.Context, req EnrollRequest) (EnrollResponse, error)
	UpdateEnrollment(ctx context.Context, req UpdateEnrollmentRequest) (EnrollmentResponse, error)
	Unenroll(ctx context.Context, id int64) error

	GetStats(ctx context.Context) (StatsResponse, error)
}
