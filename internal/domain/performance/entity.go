package performance

import "time"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
)

var validStatuses = []string{string(StatusDraft), string(StatusSubmitted), string(StatusApproved)}

const (
	MinRating = 0.0
	MaxRating = 5.0
)

type Review struct {
	ID                  int64
	EmployeeID          int64
	ReviewerID          *int64
	ReviewPeriod        string
	ReviewDate          string
	OverallRating       *float64
	Strengths           *string
	AreasForImprovement *string
	Goals               *string
	Comments            *string
	Status              Status
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Join
	EmployeeName   *string
	EmployeeNumber *string
	ReviewerName   *string
	DepartmentName *string
}

// Rating bands used by the distribution report.
const (
	BandExcellent  = "excellent"
	BandVeryGood   = "very_good"
	BandGood       = "good"
	BandAcceptable = "acceptable"
	BandPoor       = "poor"
)

// Band places a rating in one of the five fixed bands.
func Band(rating float64) string {
	switch {
	case rating >= 4.5:
		return BandExcellent
	case rating >= 3.5:
		return BandVeryGood
	case rating >= 2.5:
		return BandGood
	case rating >= 1.5:
		return BandAcceptable
	default:
		return BandPoor
	}
}

type Overview struct {
	AverageRating *float64
	TotalReviews  int64
	Approved      int64
	Draft         int64
}

type BandCount struct {
	Band  string
	Count int64
}

type TopPerformer struct {
	EmployeeID    int64
	EmployeeName  string
	Department    *string
	OverallRating float64
	ReviewPeriod  string
}
