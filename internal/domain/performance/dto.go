package performance

import (
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

type CreateReviewRequest struct {
	EmployeeID          int64    `json:"employee_id"`
	ReviewPeriod        string   `json:"review_period"`
	ReviewDate          string   `json:"review_date"`
	OverallRating       *float64 `json:"overall_rating,omitempty"`
	Strengths           *string  `json:"strengths,omitempty"`
	AreasForImprovement *string  `json:"areas_for_improvement,omitempty"`
	Goals               *string  `json:"goals,omitempty"`
	Comments            *string  `json:"comments,omitempty"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id is required")
	}
	if validator.IsEmpty(r.ReviewPeriod) {
		errs.Add("review_period", "review_period is required")
	}
	if validator.IsEmpty(r.ReviewDate) {
		errs.Add("review_date", "review_date is required")
	} else if _, ok := validator.IsValidDate(r.ReviewDate); !ok {
		errs.Add("review_date", "review_date must be in YYYY-MM-DD format")
	}
	validateRating(&errs, r.OverallRating)
	return errs.Err()
}

type UpdateReviewRequest struct {
	ID                  int64    `json:"-"`
	ReviewPeriod        *string  `json:"review_period,omitempty"`
	ReviewDate          *string  `json:"review_date,omitempty"`
	OverallRating       *float64 `json:"overall_rating,omitempty"`
	Strengths           *string  `json:"strengths,omitempty"`
	AreasForImprovement *string  `json:"areas_for_improvement,omitempty"`
	Goals               *string  `json:"goals,omitempty"`
	Comments            *string  `json:"comments,omitempty"`
	Status              *string  `json:"status,omitempty"`
}

func (r *UpdateReviewRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.ReviewPeriod == nil && r.ReviewDate == nil && r.OverallRating == nil && r.Strengths == nil &&
		r.AreasForImprovement == nil && r.Goals == nil && r.Comments == nil && r.Status == nil {
		errs.Add("body", "no fields to update")
		return errs
	}
	if r.ReviewPeriod != nil && validator.IsEmpty(*r.ReviewPeriod) {
		errs.Add("review_period", "review_period must not be empty")
	}
	if r.ReviewDate != nil {
		if _, ok := validator.IsValidDate(*r.ReviewDate); !ok {
			errs.Add("review_date", "review_date must be in YYYY-MM-DD format")
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs.Add("status", "status must be draft, submitted or approved")
	}
	validateRating(&errs, r.OverallRating)
	return errs.Err()
}

func validateRating(errs *validator.ValidationErrors, rating *float64) {
	if rating != nil && (*rating < MinRating || *rating > MaxRating) {
		errs.Add("overall_rating", "overall_rating must be between 0 and 5")
	}
}

type ReviewFilter struct {
	EmployeeID   *int64
	Status       *string
	ReviewPeriod *string
}

type CreateReviewResponse struct {
	ID int64 `json:"id"`
}

type ReviewResponse struct {
	ID                  int64     `json:"id"`
	EmployeeID          int64     `json:"employee_id"`
	EmployeeName        *string   `json:"employee_name,omitempty"`
	EmployeeNumber      *string   `json:"employee_number,omitempty"`
	DepartmentName      *string   `json:"department_name,omitempty"`
	ReviewerID          *int64    `json:"reviewer_id"`
	ReviewerName        *string   `json:"reviewer_name,omitempty"`
	ReviewPeriod        string    `json:"review_period"`
	ReviewDate          string    `json:"review_date"`
	OverallRating       *float64  `json:"overall_rating"`
	Strengths           *string   `json:"strengths"`
	AreasForImprovement *string   `json:"areas_for_improvement"`
	Goals               *string   `json:"goals"`
	Comments            *string   `json:"comments"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func NewReviewResponse(r Review) ReviewResponse {
	return ReviewResponse{
		ID:                  r.ID,
		EmployeeID:          r.EmployeeID,
		EmployeeName:        r.EmployeeName,
		EmployeeNumber:      r.EmployeeNumber,
		DepartmentName:      r.DepartmentName,
		ReviewerID:          r.ReviewerID,
		ReviewerName:        r.ReviewerName,
		ReviewPeriod:        r.ReviewPeriod,
		ReviewDate:          r.ReviewDate,
		OverallRating:       r.OverallRating,
		Strengths:           r.Strengths,
		AreasForImprovement: r.AreasForImprovement,
		Goals:               r.Goals,
		Comments:            r.Comments,
		Status:              string(r.Status),
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

type OverviewResponse struct {
	AverageRating *float64 `json:"average_rating"`
	TotalReviews  int64    `json:"total_reviews"`
	ApprovedCount int64    `json:"approved_count"`
	DraftCount    int64    `json:"draft_count"`
}

type BandCountResponse struct {
	RatingCategory string `json:"rating_category"`
	Count          int64  `json:"count"`
}

type TopPerformerResponse struct {
	EmployeeID    int64   `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	Department    *string `json:"department"`
	OverallRating float64 `json:"overall_rating"`
	ReviewPeriod  string  `json:"review_period"`
}

type StatsResponse struct {
	Year          int                    `json:"year"`
	Overview      OverviewResponse       `json:"overview"`
	Distribution  []BandCountResponse    `json:"distribution"`
	TopPerformers []TopPerformerResponse `json:"top_performers"`
}
