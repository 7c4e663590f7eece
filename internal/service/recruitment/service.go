package recruitment

import (
	"context"
	"log/slog"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/department"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/jobtitle"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/recruitment"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/utils"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
)

const listAllPostings = "all"

type RecruitmentServiceImpl struct {
	db              *database.DB
	recruitmentRepo recruitment.RecruitmentRepository
	departmentRepo  department.DepartmentRepository
	jobTitleRepo    jobtitle.JobTitleRepository
	now             func() time.Time
}

func NewRecruitmentService(
	db *database.DB,
	recruitmentRepo recruitment.RecruitmentRepository,
	departmentRepo department.DepartmentRepository,
	jobTitleRepo jobtitle.JobTitleRepository,
) recruitment.RecruitmentService {
	return &RecruitmentServiceImpl{
		db:              db,
		recruitmentRepo: recruitmentRepo,
		departmentRepo:  departmentRepo,
		jobTitleRepo:    jobTitleRepo,
		now:             time.Now,
	}
}

// checkReferences verifies the department and job title. Zero clears a link.
func (s *RecruitmentServiceImpl) checkReferences(ctx context.Context, departmentID, jobTitleID *int64) error {
	if departmentID != nil && *departmentID != 0 {
		ok, err := s.departmentRepo.Exists(ctx, *departmentID)
		if err != nil {
			return err
		}
		if !ok {
			return department.ErrDepartmentNotFound
		}
	}
	if jobTitleID != nil && *jobTitleID != 0 {
		if _, err := s.jobTitleRepo.GetByID(ctx, *jobTitleID); err != nil {
			return err
		}
	}
	return nil
}

// ListPostings implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListPostings(ctx context.Context, status *string) ([]recruitment.PostingResponse, error) {
	filter := status
	switch {
	case status == nil || *status == "":
		open := string(recruitment.PostingOpen)
		filter = &open
	case *status == listAllPostings:
		filter = nil
	}

	postings, err := s.recruitmentRepo.ListPostings(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]recruitment.PostingResponse, 0, len(postings))
	for _, p := range postings {
		responses = append(responses, recruitment.NewPostingResponse(p))
	}
	return responses, nil
}

// GetPosting implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) GetPosting(ctx context.Context, id int64) (recruitment.PostingResponse, error) {
	p, err := s.recruitmentRepo.GetPosting(ctx, id)
	if err != nil {
		return recruitment.PostingResponse{}, err
	}
	return recruitment.NewPostingResponse(p), nil
}

// CreatePosting implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) CreatePosting(ctx context.Context, req recruitment.CreatePostingRequest) (recruitment.PostingResponse, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return recruitment.PostingResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return recruitment.PostingResponse{}, err
	}
	if err := s.checkReferences(ctx, req.DepartmentID, req.JobTitleID); err != nil {
		return recruitment.PostingResponse{}, err
	}

	newPosting := recruitment.Posting{
		Title:          req.Title,
		DepartmentID:   nonZero(req.DepartmentID),
		JobTitleID:     nonZero(req.JobTitleID),
		Description:    req.Description,
		Requirements:   req.Requirements,
		Vacancies:      1,
		SalaryRange:    req.SalaryRange,
		EmploymentType: req.EmploymentType,
		Location:       req.Location,
		Status:         recruitment.PostingOpen,
		PostedDate:     utils.FormatDate(s.now()),
		CreatedBy:      &principal.UserID,
	}
	if req.Vacancies != nil {
		newPosting.Vacancies = *req.Vacancies
	}
	if req.ClosingDate != nil && *req.ClosingDate != "" {
		newPosting.ClosingDate = req.ClosingDate
	}

	created, err := s.recruitmentRepo.CreatePosting(ctx, newPosting)
	if err != nil {
		return recruitment.PostingResponse{}, err
	}
	return recruitment.NewPostingResponse(created), nil
}

// UpdatePosting implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) UpdatePosting(ctx context.Context, req recruitment.UpdatePostingRequest) (recruitment.PostingResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.PostingResponse{}, err
	}

	var updated recruitment.Posting
	err := sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, err := s.recruitmentRepo.GetPosting(txCtx, req.ID); err != nil {
			return err
		}
		if err := s.checkReferences(txCtx, req.DepartmentID, req.JobTitleID); err != nil {
			return err
		}
		if req.Vacancies != nil {
			accepted, err := s.recruitmentRepo.CountAccepted(txCtx, req.ID)
			if err != nil {
				return err
			}
			if *req.Vacancies < accepted {
				return recruitment.ErrVacanciesBelowAccepted
			}
		}

		if err := s.recruitmentRepo.UpdatePosting(txCtx, req); err != nil {
			return err
		}

		var err error
		updated, err = s.recruitmentRepo.GetPosting(txCtx, req.ID)
		return err
	})
	if err != nil {
		return recruitment.PostingResponse{}, err
	}
	return recruitment.NewPostingResponse(updated), nil
}

// DeletePosting implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) DeletePosting(ctx context.Context, id int64) error {
	return s.recruitmentRepo.DeletePosting(ctx, id)
}

// Apply implements recruitment.RecruitmentService. It needs no principal.
func (s *RecruitmentServiceImpl) Apply(ctx context.Context, req recruitment.ApplyRequest) (recruitment.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.ApplicationResponse{}, err
	}

	today := utils.FormatDate(s.now())
	var created recruitment.Application
	err := sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		posting, err := s.recruitmentRepo.GetPosting(txCtx, req.JobPostingID)
		if err != nil {
			return err
		}
		if !posting.AcceptsApplications(today) {
			return recruitment.ErrPostingNotOpen
		}

		phone := req.Phone
		created, err = s.recruitmentRepo.CreateApplication(txCtx, recruitment.Application{
			JobPostingID:    req.JobPostingID,
			ApplicantName:   req.ApplicantName,
			Email:           req.Email,
			Phone:           &phone,
			ResumeFile:      req.ResumeFile,
			CoverLetter:     req.CoverLetter,
			ExperienceYears: req.ExperienceYears,
			Education:       req.Education,
			Status:          recruitment.ApplicationPending,
		})
		return err
	})
	if err != nil {
		return recruitment.ApplicationResponse{}, err
	}

	slog.Info("job application received", "application_id", created.ID, "job_posting_id", created.JobPostingID)
	return recruitment.NewApplicationResponse(created), nil
}

// ListApplications implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) ListApplications(ctx context.Context, filter recruitment.ApplicationFilter) ([]recruitment.ApplicationResponse, error) {
	applications, err := s.recruitmentRepo.ListApplications(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]recruitment.ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		responses = append(responses, recruitment.NewApplicationResponse(a))
	}
	return responses, nil
}

// GetApplication implements recruitment.RecruitmentService.
func (s *RecruitmentServiceImpl) GetApplication(ctx context.Context, id int64) (recruitment.ApplicationResponse, error) {
	a, err := s.recruitmentRepo.GetApplication(ctx, id)
	if err != nil {
		return recruitment.ApplicationResponse{}, err
	}
	return recruitment.NewApplicationResponse(a), nil
}

// UpdateApplicationStatus implements recruitment.RecruitmentService.
// Accepting the last open vacancy marks the posting filled.
func (s *RecruitmentServiceImpl) UpdateApplicationStatus(ctx context.Context, req recruitment.UpdateApplicationStatusRequest) (recruitment.ApplicationResponse, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return recruitment.ApplicationResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return recruitment.ApplicationResponse{}, err
	}

	var updated recruitment.Application
	err = sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		current, err := s.recruitmentRepo.GetApplication(txCtx, req.ID)
		if err != nil {
			return err
		}

		next := current
		if req.Status != nil {
			next.Status = recruitment.ApplicationStatus(*req.Status)
			if !current.Status.CanMoveTo(next.Status) {
				return recruitment.ErrInvalidStatusTransition
			}
		}
		if req.InterviewDate != nil {
			next.InterviewDate = req.InterviewDate
		}
		if req.InterviewNotes != nil {
			next.InterviewNotes = req.InterviewNotes
		}
		next.ReviewedBy = &principal.UserID

		accepting := next.Status == recruitment.ApplicationAccepted && current.Status != recruitment.ApplicationAccepted
		var posting recruitment.Posting
		var accepted int
		if accepting {
			posting, err = s.recruitmentRepo.GetPosting(txCtx, current.JobPostingID)
			if err != nil {
				return err
			}
			accepted, err = s.recruitmentRepo.CountAccepted(txCtx, posting.ID)
			if err != nil {
				return err
			}
			if accepted >= posting.Vacancies {
				return recruitment.ErrNoVacancyLeft
			}
		}

		if err := s.recruitmentRepo.UpdateApplicationReview(txCtx, next); err != nil {
			return err
		}
		if accepting && accepted+1 >= posting.Vacancies {
			if err := s.recruitmentRepo.SetPostingStatus(txCtx, posting.ID, recruitment.PostingFilled); err != nil {
				return err
			}
		}

		updated, err = s.recruitmentRepo.GetApplication(txCtx, req.ID)
		return err
	})
	if err != nil {
		return recruitment.ApplicationResponse{}, err
	}
	return recruitment.NewApplicationResponse(updated), nil
}

func nonZero(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}
