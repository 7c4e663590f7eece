package training

import (
	"context"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/training"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/utils"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type TrainingServiceImpl struct {
	db           *database.DB
	trainingRepo training.TrainingRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewTrainingService(
	db *database.DB,
	trainingRepo training.TrainingRepository,
	employeeRepo employee.EmployeeRepository,
) training.TrainingService {
	return &TrainingServiceImpl{
		db:           db,
		trainingRepo: trainingRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// ListPrograms implements training.TrainingService.
func (s *TrainingServiceImpl) ListPrograms(ctx context.Context, status *string) ([]training.ProgramResponse, error) {
	programs, err := s.trainingRepo.ListPrograms(ctx, status)
	if err != nil {
		return nil, err
	}

	responses := make([]training.ProgramResponse, 0, len(programs))
	for _, p := range programs {
		responses = append(responses, training.NewProgramResponse(p))
	}
	return responses, nil
}

// GetProgram implements training.TrainingService.
func (s *TrainingServiceImpl) GetProgram(ctx context.Context, id int64) (training.ProgramDetailResponse, error) {
	program, err := s.trainingRepo.GetProgram(ctx, id)
	if err != nil {
		return training.ProgramDetailResponse{}, err
	}

	enrollments, err := s.trainingRepo.ListEnrollments(ctx, id)
	if err != nil {
		return training.ProgramDetailResponse{}, err
	}

	responses := make([]training.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		responses = append(responses, training.NewEnrollmentResponse(e))
	}

	return training.ProgramDetailResponse{
		ProgramResponse: training.NewProgramResponse(program),
		Enrollments:     responses,
	}, nil
}

// CreateProgram implements training.TrainingService.
func (s *TrainingServiceImpl) CreateProgram(ctx context.Context, req training.CreateProgramRequest) (training.CreateProgramResponse, error) {
	if err := req.Validate(); err != nil {
		return training.CreateProgramResponse{}, err
	}

	program := training.Program{
		Name:          req.Name,
		Description:   req.Description,
		Trainer:       req.Trainer,
		Location:      req.Location,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		DurationHours: req.DurationHours,
		Capacity:      req.Capacity,
		Status:        training.ProgramScheduled,
	}
	if req.Cost != nil {
		program.Cost = decimal.NewNullDecimal(*req.Cost)
	}
	if req.Status != nil {
		program.Status = training.ProgramStatus(*req.Status)
	}

	created, err := s.trainingRepo.CreateProgram(ctx, program)
	if err != nil {
		return training.CreateProgramResponse{}, err
	}
	return training.CreateProgramResponse{ID: created.ID, Name: created.Name}, nil
}

// UpdateProgram implements training.TrainingService.
func (s *TrainingServiceImpl) UpdateProgram(ctx context.Context, req training.UpdateProgramRequest) (training.ProgramResponse, error) {
	if err := req.Validate(); err != nil {
		return training.ProgramResponse{}, err
	}

	var updated training.Program
	err := sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		current, err := s.trainingRepo.GetProgram(txCtx, req.ID)
		if err != nil {
			return err
		}
		if req.Capacity != nil && *req.Capacity < current.EnrolledCount {
			return training.ErrCapacityBelowEnrolled
		}

		start, end := current.StartDate, current.EndDate
		if req.StartDate != nil {
			start = *req.StartDate
		}
		if req.EndDate != nil {
			end = *req.EndDate
		}
		if end < start {
			return training.ErrInvalidDateRange
		}

		if err := s.trainingRepo.UpdateProgram(txCtx, req); err != nil {
			return err
		}
		updated, err = s.trainingRepo.GetProgram(txCtx, req.ID)
		return err
	})
	if err != nil {
		return training.ProgramResponse{}, err
	}
	return training.NewProgramResponse(updated), nil
}

// DeleteProgram implements training.TrainingService.
func (s *TrainingServiceImpl) DeleteProgram(ctx context.Context, id int64) error {
	return s.trainingRepo.DeleteProgram(ctx, id)
}

// Enroll implements training.TrainingService.
func (s *TrainingServiceImpl) Enroll(ctx context.Context, req training.EnrollRequest) (training.EnrollResponse, error) {
	if err := req.Validate(); err != nil {
		return training.EnrollResponse{}, err
	}

	var created training.Enrollment
	err := sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		program, err := s.trainingRepo.GetProgram(txCtx, req.ProgramID)
		if err != nil {
			return err
		}

		exists, err := s.employeeRepo.Exists(txCtx, req.EmployeeID)
		if err != nil {
			return err
		}
		if !exists {
			return training.ErrEmployeeNotFound
		}

		if program.IsFull() {
			return training.ErrCapacityExceeded
		}

		created, err = s.trainingRepo.CreateEnrollment(txCtx, training.Enrollment{
			TrainingProgramID: req.ProgramID,
			EmployeeID:        req.EmployeeID,
			EnrollmentDate:    utils.FormatDate(s.now()),
			CompletionStatus:  training.CompletionEnrolled,
		})
		if err != nil {
			return err
		}

		count, err := s.trainingRepo.RecountEnrollments(txCtx, req.ProgramID)
		if err != nil {
			return err
		}
		if count > program.Capacity {
			return training.ErrCapacityExceeded
		}
		return nil
	})
	if err != nil {
		return training.EnrollResponse{}, err
	}
	return training.EnrollResponse{ID: created.ID}, nil
}

// UpdateEnrollment implements training.TrainingService.
func (s *TrainingServiceImpl) UpdateEnrollment(ctx context.Context, req training.UpdateEnrollmentRequest) (training.EnrollmentResponse, error) {
	if err := req.Validate(); err != nil {
		return training.EnrollmentResponse{}, err
	}

	if err := s.trainingRepo.UpdateEnrollment(ctx, req); err != nil {
		return training.EnrollmentResponse{}, err
	}

	updated, err := s.trainingRepo.GetEnrollment(ctx, req.ID)
	if err != nil {
		return training.EnrollmentResponse{}, err
	}
	return training.NewEnrollmentResponse(updated), nil
}

// Unenroll implements training.TrainingService.
func (s *TrainingServiceImpl) Unenroll(ctx context.Context, id int64) error {
	return sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		enrollment, err := s.trainingRepo.GetEnrollment(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.trainingRepo.DeleteEnrollment(txCtx, id); err != nil {
			return err
		}
		_, err = s.trainingRepo.RecountEnrollments(txCtx, enrollment.TrainingProgramID)
		return err
	})
}

// GetStats implements training.TrainingService.
func (s *TrainingServiceImpl) GetStats(ctx context.Context) (training.StatsResponse, error) {
	var (
		statusCounts []training.StatusCount
		total        int64
		completion   training.CompletionStats
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		statusCounts, err = s.trainingRepo.CountByStatus(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.trainingRepo.CountEnrollments(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		completion, err = s.trainingRepo.GetCompletionStats(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return training.StatsResponse{}, err
	}

	counts := make([]training.StatusCountResponse, 0, len(statusCounts))
	for _, c := range statusCounts {
		counts = append(counts, training.StatusCountResponse{Status: c.Status, Count: c.Count})
	}

	return training.StatsResponse{
		StatusCounts:     counts,
		TotalEnrollments: total,
		CompletionStats: training.CompletionStatsResponse{
			Completed:    completion.Completed,
			AverageScore: completion.AverageScore,
		},
	}, nil
}
