package jobtitle

import (
	"context"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/department"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/jobtitle"
	"github.com/shopspring/decimal"
)

type JobTitleServiceImpl struct {
	jobTitleRepo   jobtitle.JobTitleRepository
	departmentRepo department.DepartmentRepository
}

func NewJobTitleService(jobTitleRepo jobtitle.JobTitleRepository, departmentRepo department.DepartmentRepository) jobtitle.JobTitleService {
	return &JobTitleServiceImpl{
		jobTitleRepo:   jobTitleRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *JobTitleServiceImpl) checkDepartment(ctx context.Context, departmentID *int64) error {
	if departmentID == nil || *departmentID == 0 {
		return nil
	}
	ok, err := s.departmentRepo.Exists(ctx, *departmentID)
	if err != nil {
		return err
	}
	if !ok {
		return department.ErrDepartmentNotFound
	}
	return nil
}

// ListJobTitles implements jobtitle.JobTitleService.
func (s *JobTitleServiceImpl) ListJobTitles(ctx context.Context, departmentID *int64) ([]jobtitle.JobTitleResponse, error) {
	titles, err := s.jobTitleRepo.List(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	responses := make([]jobtitle.JobTitleResponse, 0, len(titles))
	for _, j := range titles {
		responses = append(responses, jobtitle.NewJobTitleResponse(j))
	}
	return responses, nil
}

// GetJobTitle implements jobtitle.JobTitleService.
func (s *JobTitleServiceImpl) GetJobTitle(ctx context.Context, id int64) (jobtitle.JobTitleResponse, error) {
	j, err := s.jobTitleRepo.GetByID(ctx, id)
	if err != nil {
		return jobtitle.JobTitleResponse{}, err
	}
	return jobtitle.NewJobTitleResponse(j), nil
}

// CreateJobTitle implements jobtitle.JobTitleService.
func (s *JobTitleServiceImpl) CreateJobTitle(ctx context.Context, req jobtitle.CreateJobTitleRequest) (jobtitle.JobTitleResponse, error) {
	if err := req.Validate(); err != nil {
		return jobtitle.JobTitleResponse{}, err
	}
	if err := s.checkDepartment(ctx, req.DepartmentID); err != nil {
		return jobtitle.JobTitleResponse{}, err
	}

	newJobTitle := jobtitle.JobTitle{
		Title:            req.Title,
		Code:             req.Code,
		DepartmentID:     req.DepartmentID,
		Level:            req.Level,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
		Requirements:     req.Requirements,
	}
	if req.MinSalary != nil {
		newJobTitle.MinSalary = decimal.NewNullDecimal(*req.MinSalary)
	}
	if req.MaxSalary != nil {
		newJobTitle.MaxSalary = decimal.NewNullDecimal(*req.MaxSalary)
	}

	created, err := s.jobTitleRepo.Create(ctx, newJobTitle)
	if err != nil {
		return jobtitle.JobTitleResponse{}, err
	}
	return s.GetJobTitle(ctx, created.ID)
}

// UpdateJobTitle implements jobtitle.JobTitleService.
func (s *JobTitleServiceImpl) UpdateJobTitle(ctx context.Context, req jobtitle.UpdateJobTitleRequest) (jobtitle.JobTitleResponse, error) {
	if err := req.Validate(); err != nil {
		return jobtitle.JobTitleResponse{}, err
	}
	if err := s.checkDepartment(ctx, req.DepartmentID); err != nil {
		return jobtitle.JobTitleResponse{}, err
	}
	if err := s.jobTitleRepo.Update(ctx, req); err != nil {
		return jobtitle.JobTitleResponse{}, err
	}
	return s.GetJobTitle(ctx, req.ID)
}

// DeleteJobTitle implements jobtitle.JobTitleService.
func (s *JobTitleServiceImpl) DeleteJobTitle(ctx context.Context, id int64) error {
	return s.jobTitleRepo.SoftDelete(ctx, id)
}
