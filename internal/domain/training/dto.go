package training

import (
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateProgramRequest struct {
	Name          string           `json:"name"`
	Description   *string          `json:"description,omitempty"`
	Trainer       *string          `json:"trainer,omitempty"`
	Location      *string          `json:"location,omitempty"`
	StartDate     string           `json:"start_date"`
	EndDate       string           `json:"end_date"`
	DurationHours *int             `json:"duration_hours,omitempty"`
	Capacity      int              `json:"capacity"`
	Cost          *decimal.Decimal `json:"cost,omitempty"`
	Status        *string          `json:"status,omitempty"`
}

func (r *CreateProgramRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	_, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}
	_, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}
	if startOK && endOK && !validator.IsDateRange(r.StartDate, r.EndDate) {
		errs.Add("end_date", "end_date must not be before start_date")
	}
	if r.Capacity < 1 {
		errs.Add("capacity", "capacity must be at least 1")
	}
	validateProgramOptional(&errs, r.DurationHours, r.Cost, r.Status)
	return errs.Err()
}

type UpdateProgramRequest struct {
	ID            int64            `json:"-"`
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Trainer       *string          `json:"trainer,omitempty"`
	Location      *string          `json:"location,omitempty"`
	StartDate     *string          `json:"start_date,omitempty"`
	EndDate       *string          `json:"end_date,omitempty"`
	DurationHours *int             `json:"duration_hours,omitempty"`
	Capacity      *int             `json:"capacity,omitempty"`
	Cost          *decimal.Decimal `json:"cost,omitempty"`
	Status        *string          `json:"status,omitempty"`
}

func (r *UpdateProgramRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Name == nil && r.Description == nil && r.Trainer == nil && r.Location == nil && r.StartDate == nil &&
		r.EndDate == nil && r.DurationHours == nil && r.Capacity == nil && r.Cost == nil && r.Status == nil {
		errs.Add("body", "no fields to update")
		return errs
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
		}
	}
	if r.Capacity != nil && *r.Capacity < 1 {
		errs.Add("capacity", "capacity must be at least 1")
	}
	validateProgramOptional(&errs, r.DurationHours, r.Cost, r.Status)
	return errs.Err()
}

func validateProgramOptional(errs *validator.ValidationErrors, duration *int, cost *decimal.Decimal, status *string) {
	if duration != nil && *duration < 0 {
		errs.Add("duration_hours", "duration_hours must be non-negative")
	}
	if cost != nil && cost.IsNegative() {
		errs.Add("cost", "cost must be non-negative")
	}
	if status != nil && !validator.IsInSlice(*status, validProgramStatuses) {
		errs.Add("status", "invalid program status")
	}
}

type EnrollRequest struct {
	ProgramID  int64 `json:"-"`
	EmployeeID int64 `json:"employee_id"`
}

func (r *EnrollRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id is required")
	}
	return errs.Err()
}

type UpdateEnrollmentRequest struct {
	ID                int64    `json:"-"`
	CompletionStatus  *string  `json:"completion_status,omitempty"`
	CompletionDate    *string  `json:"completion_date,omitempty"`
	Score             *float64 `json:"score,omitempty"`
	Feedback          *string  `json:"feedback,omitempty"`
	CertificateIssued *bool    `json:"certificate_issued,omitempty"`
}

func (r *UpdateEnrollmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.CompletionStatus == nil && r.CompletionDate == nil && r.Score == nil && r.Feedback == nil && r.CertificateIssued == nil {
		errs.Add("body", "no fields to update")
		return errs
	}
	if r.CompletionStatus != nil && !validator.IsInSlice(*r.CompletionStatus, validCompletionStatuses) {
		errs.Add("completion_status", "invalid completion status")
	}
	if r.CompletionDate != nil {
		if _, ok := validator.IsValidDate(*r.CompletionDate); !ok {
			errs.Add("completion_date", "completion_date must be in YYYY-MM-DD format")
		}
	}
	if r.Score != nil && (*r.Score < 0 || *r.Score > 100) {
		errs.Add("score", "score must be between 0 and 100")
	}
	return errs.Err()
}

type ProgramResponse struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Description   *string          `json:"description"`
	Trainer       *string          `json:"trainer"`
	Location      *string          `json:"location"`
	StartDate     string           `json:"start_date"`
	EndDate       string           `json:"end_date"`
	DurationHours *int             `json:"duration_hours"`
	Capacity      int              `json:"capacity"`
	EnrolledCount int              `json:"enrolled_count"`
	Cost          *decimal.Decimal `json:"cost"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func NewProgramResponse(p Program) ProgramResponse {
	resp := ProgramResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Trainer:       p.Trainer,
		Location:      p.Location,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		DurationHours: p.DurationHours,
		Capacity:      p.Capacity,
		EnrolledCount: p.EnrolledCount,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.Cost.Valid {
		cost := p.Cost.Decimal
		resp.Cost = &cost
	}
	return resp
}

type EnrollmentResponse struct {
	ID                int64    `json:"id"`
	TrainingProgramID int64    `json:"training_program_id"`
	EmployeeID        int64    `json:"employee_id"`
	EmployeeNumber    *string  `json:"employee_number,omitempty"`
	EmployeeName      *string  `json:"employee_name,omitempty"`
	Email             *string  `json:"email,omitempty"`
	DepartmentName    *string  `json:"department_name,omitempty"`
	EnrollmentDate    string   `json:"enrollment_date"`
	CompletionStatus  string   `json:"completion_status"`
	CompletionDate    *string  `json:"completion_date"`
	Score             *float64 `json:"score"`
	Feedback          *string  `json:"feedback"`
	CertificateIssued bool     `json:"certificate_issued"`
}

func NewEnrollmentResponse(e Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:                e.ID,
		TrainingProgramID: e.TrainingProgramID,
		EmployeeID:        e.EmployeeID,
		EmployeeNumber:    e.EmployeeNumber,
		EmployeeName:      e.EmployeeName,
		Email:             e.EmployeeEmail,
		DepartmentName:    e.DepartmentName,
		EnrollmentDate:    e.EnrollmentDate,
		CompletionStatus:  string(e.CompletionStatus),
		CompletionDate:    e.CompletionDate,
		Score:             e.Score,
		Feedback:          e.Feedback,
		CertificateIssued: e.CertificateIssued,
	}
}

type ProgramDetailResponse struct {
	ProgramResponse
	Enrollments []EnrollmentResponse `json:"enrollments"`
}

type CreateProgramResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type EnrollResponse struct {
	ID int64 `json:"id"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type CompletionStatsResponse struct {
	Completed    int64    `json:"completed"`
	AverageScore *float64 `json:"average_score"`
}

type StatsResponse struct {
	StatusCounts     []StatusCountResponse   `json:"status_counts"`
	TotalEnrollments int64                   `json:"total_enrollments"`
	CompletionStats  CompletionStatsResponse `json:"completion_stats"`
}
