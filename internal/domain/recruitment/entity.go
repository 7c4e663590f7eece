package recruitment

import "time"

type PostingStatus string

const (
	PostingOpen   PostingStatus = "open"
	PostingClosed PostingStatus = "closed"
	PostingFilled PostingStatus = "filled"
)

var validPostingStatuses = []string{string(PostingOpen), string(PostingClosed), string(PostingFilled)}

type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationReviewed  ApplicationStatus = "reviewed"
	ApplicationInterview ApplicationStatus = "interview"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

var validApplicationStatuses = []string{
	string(ApplicationPending), string(ApplicationReviewed), string(ApplicationInterview),
	string(ApplicationAccepted), string(ApplicationRejected),
}

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending:   {ApplicationReviewed, ApplicationInterview, ApplicationAccepted, ApplicationRejected},
	ApplicationReviewed:  {ApplicationInterview, ApplicationAccepted, ApplicationRejected},
	ApplicationInterview: {ApplicationAccepted, ApplicationRejected},
}

// IsFinal reports whether the application has been decided.
func (s ApplicationStatus) IsFinal() bool {
	return s == ApplicationAccepted || s == ApplicationRejected
}

// CanMoveTo reports whether next is reachable from s. Staying put is
// allowed until the application is decided.
func (s ApplicationStatus) CanMoveTo(next ApplicationStatus) bool {
	if s == next {
		return !s.IsFinal()
	}
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Posting struct {
	ID             int64
	Title          string
	DepartmentID   *int64
	JobTitleID     *int64
	Description    *string
	Requirements   *string
	Vacancies      int
	SalaryRange    *string
	EmploymentType *string
	Location       *string
	Status         PostingStatus
	PostedDate     string
	ClosingDate    *string
	CreatedBy      *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Join
	DepartmentName   *string
	JobTitleName     *string
	ApplicationCount int64
}

// AcceptsApplications reports whether the posting is open on today (YYYY-MM-DD).
func (p Posting) AcceptsApplications(today string) bool {
	return p.Status == PostingOpen && (p.ClosingDate == nil || *p.ClosingDate >= today)
}

type Application struct {
	ID              int64
	JobPostingID    int64
	ApplicantName   string
	Email           string
	Phone           *string
	ResumeFile      *string
	CoverLetter     *string
	ExperienceYears *int
	Education       *string
	Status          ApplicationStatus
	InterviewDate   *string
	InterviewNotes  *string
	AppliedDate     time.Time
	ReviewedBy      *int64
	ReviewedDate    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join
	PostingTitle *string
}
