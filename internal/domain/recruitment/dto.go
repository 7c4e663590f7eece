package recruitment

import (
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

// InterviewLayout is the wire format of interview_date.
const InterviewLayout = "2006-01-02T15:04"

type CreatePostingRequest struct {
	Title          string  `json:"title"`
	DepartmentID   *int64  `json:"department_id,omitempty"`
	JobTitleID     *int64  `json:"job_title_id,omitempty"`
	Description    *string `json:"description,omitempty"`
	Requirements   *string `json:"requirements,omitempty"`
	Vacancies      *int    `json:"vacancies,omitempty"`
	SalaryRange    *string `json:"salary_range,omitempty"`
	EmploymentType *string `json:"employment_type,omitempty"`
	Location       *string `json:"location,omitempty"`
	ClosingDate    *string `json:"closing_date,omitempty"`
}

func (r *CreatePostingRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Title) {
		errs.Add("title", "title is required")
	}
	if r.Vacancies != nil && *r.Vacancies < 1 {
		errs.Add("vacancies", "vacancies must be at least 1")
	}
	if r.ClosingDate != nil && *r.ClosingDate != "" {
		if _, ok := validator.IsValidDate(*r.ClosingDate); !ok {
			errs.Add("closing_date", "closing_date must be YYYY-MM-DD")
		}
	}
	return errs.Err()
}

type UpdatePostingRequest struct {
	ID             int64   `json:"-"`
	Title          *string `json:"title,omitempty"`
	DepartmentID   *int64  `json:"department_id,omitempty"`
	JobTitleID     *int64  `json:"job_title_id,omitempty"`
	Description    *string `json:"description,omitempty"`
	Requirements   *string `json:"requirements,omitempty"`
	Vacancies      *int    `json:"vacancies,omitempty"`
	SalaryRange    *string `json:"salary_range,omitempty"`
	EmploymentType *string `json:"employment_type,omitempty"`
	Location       *string `json:"location,omitempty"`
	Status         *string `json:"status,omitempty"`
	ClosingDate    *string `json:"closing_date,omitempty"`
}

func (r *UpdatePostingRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Title == nil && r.DepartmentID == nil && r.JobTitleID == nil && r.Description == nil &&
		r.Requirements == nil && r.Vacancies == nil && r.SalaryRange == nil && r.EmploymentType == nil &&
		r.Location == nil && r.Status == nil && r.ClosingDate == nil {
		errs.Add("body", "no fields to update")
		return errs
	}
	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs.Add("title", "title must not be empty")
	}
	if r.Vacancies != nil && *r.Vacancies < 1 {
		errs.Add("vacancies", "vacancies must be at least 1")
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, validPostingStatuses) {
		errs.Add("status", "status must be one of open, closed, filled")
	}
	if r.ClosingDate != nil && *r.ClosingDate != "" {
		if _, ok := validator.IsValidDate(*r.ClosingDate); !ok {
			errs.Add("closing_date", "closing_date must be YYYY-MM-DD")
		}
	}
	return errs.Err()
}

type ApplyRequest struct {
	JobPostingID    int64   `json:"job_posting_id"`
	ApplicantName   string  `json:"applicant_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	ResumeFile      *string `json:"resume_file,omitempty"`
	CoverLetter     *string `json:"cover_letter,omitempty"`
	ExperienceYears *int    `json:"experience_years,omitempty"`
	Education       *string `json:"education,omitempty"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.JobPostingID <= 0 {
		errs.Add("job_posting_id", "job_posting_id is required")
	}
	if validator.IsEmpty(r.ApplicantName) {
		errs.Add("applicant_name", "applicant_name is required")
	}
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "email is invalid")
	}
	if validator.IsEmpty(r.Phone) {
		errs.Add("phone", "phone is required")
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs.Add("phone", "phone is invalid")
	}
	if r.ExperienceYears != nil && *r.ExperienceYears < 0 {
		errs.Add("experience_years", "experience_years must be non-negative")
	}
	return errs.Err()
}

type UpdateApplicationStatusRequest struct {
	ID             int64   `json:"-"`
	Status         *string `json:"status,omitempty"`
	InterviewDate  *string `json:"interview_date,omitempty"`
	InterviewNotes *string `json:"interview_notes,omitempty"`
}

func (r *UpdateApplicationStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Status == nil && r.InterviewDate == nil && r.InterviewNotes == nil {
		errs.Add("body", "no fields to update")
		return errs
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, validApplicationStatuses) {
		errs.Add("status", "status must be one of pending, reviewed, interview, accepted, rejected")
	}
	if r.InterviewDate != nil {
		if _, err := time.Parse(InterviewLayout, *r.InterviewDate); err != nil {
			errs.Add("interview_date", "interview_date must be YYYY-MM-DDTHH:MM")
		}
	}
	return errs.Err()
}

type ApplicationFilter struct {
	Status       *string
	JobPostingID *int64
}

type PostingResponse struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	DepartmentID     *int64  `json:"department_id"`
	DepartmentName   *string `json:"department_name"`
	JobTitleID       *int64  `json:"job_title_id"`
	JobTitleName     *string `json:"job_title_name"`
	Description      *string `json:"description"`
	Requirements     *string `json:"requirements"`
	Vacancies        int     `json:"vacancies"`
	SalaryRange      *string `json:"salary_range"`
	EmploymentType   *string `json:"employment_type"`
	Location         *string `json:"location"`
	Status           string  `json:"status"`
	PostedDate       string  `json:"posted_date"`
	ClosingDate      *string `json:"closing_date"`
	ApplicationCount int64   `json:"application_count"`
}

func NewPostingResponse(p Posting) PostingResponse {
	return PostingResponse{
		ID:               p.ID,
		Title:            p.Title,
		DepartmentID:     p.DepartmentID,
		DepartmentName:   p.DepartmentName,
		JobTitleID:       p.JobTitleID,
		JobTitleName:     p.JobTitleName,
		Description:      p.Description,
		Requirements:     p.Requirements,
		Vacancies:        p.Vacancies,
		SalaryRange:      p.SalaryRange,
		EmploymentType:   p.EmploymentType,
		Location:         p.Location,
		Status:           string(p.Status),
		PostedDate:       p.PostedDate,
		ClosingDate:      p.ClosingDate,
		ApplicationCount: p.ApplicationCount,
	}
}

type ApplicationResponse struct {
	ID              int64      `json:"id"`
	JobPostingID    int64      `json:"job_posting_id"`
	JobTitle        *string    `json:"job_title"`
	ApplicantName   string     `json:"applicant_name"`
	Email           string     `json:"email"`
	Phone           *string    `json:"phone"`
	ResumeFile      *string    `json:"resume_file"`
	CoverLetter     *string    `json:"cover_letter"`
	ExperienceYears *int       `json:"experience_years"`
	Education       *string    `json:"education"`
	Status          string     `json:"status"`
	InterviewDate   *string    `json:"interview_date"`
	InterviewNotes  *string    `json:"interview_notes"`
	AppliedDate     time.Time  `json:"applied_date"`
	ReviewedBy      *int64     `json:"reviewed_by"`
	ReviewedDate    *time.Time `json:"reviewed_date"`
}

func NewApplicationResponse(a Application) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		JobPostingID:    a.JobPostingID,
		JobTitle:        a.PostingTitle,
		ApplicantName:   a.ApplicantName,
		Email:           a.Email,
		Phone:           a.Phone,
		ResumeFile:      a.ResumeFile,
		CoverLetter:     a.CoverLetter,
		ExperienceYears: a.ExperienceYears,
		Education:       a.Education,
		Status:          string(a.Status),
		InterviewDate:   a.InterviewDate,
		InterviewNotes:  a.InterviewNotes,
		AppliedDate:     a.AppliedDate,
		ReviewedBy:      a.ReviewedBy,
		ReviewedDate:    a.ReviewedDate,
	}
}
