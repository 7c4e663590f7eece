package recruitment

import (
	"context"
	"testing"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/department"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/recruitment"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/fixtures"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*RecruitmentServiceImpl, *fixtures.SeededDataIDs, context.Context) {
	t.Helper()
	db, ids := fixtures.NewSeededTestDB(t)
	svc := NewRecruitmentService(
		db,
		sqlite.NewRecruitmentRepository(db),
		sqlite.NewDepartmentRepository(db),
		sqlite.NewJobTitleRepository(db),
	).(*RecruitmentServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	hr := user.WithPrincipal(context.Background(), user.Principal{UserID: ids.AdminUserID, Role: user.RoleHR})
	return svc, ids, hr
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func apply(t *testing.T, svc *RecruitmentServiceImpl, postingID int64, email string) recruitment.ApplicationResponse {
	t.Helper()
	resp, err := svc.Apply(context.Background(), recruitment.ApplyRequest{
		JobPostingID:  postingID,
		ApplicantName: "Applicant " + email,
		Email:         email,
		Phone:         "0551234567",
		ResumeFile:    strPtr("resumes/" + email + ".pdf"),
	})
	require.NoError(t, err)
	return resp
}

func TestCreatePosting(t *testing.T) {
	svc, ids, hr := newTestService(t)
	itID := ids.DepartmentIDs["IT"]
	devID := ids.JobTitleIDs["IT-DEV"]

	created, err := svc.CreatePosting(hr, recruitment.CreatePostingRequest{
		Title: "Backend Developer", DepartmentID: &itID, JobTitleID: &devID, ClosingDate: strPtr("2025-06-30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "open", created.Status)
	assert.Equal(t, "2025-06-01", created.PostedDate)
	assert.Equal(t, 1, created.Vacancies)
	require.NotNil(t, created.DepartmentName)
	assert.Equal(t, "Information Technology", *created.DepartmentName)
	require.NotNil(t, created.JobTitleName)

	_, err = svc.CreatePosting(context.Background(), recruitment.CreatePostingRequest{Title: "Anonymous"})
	assert.ErrorIs(t, err, user.ErrUnauthenticated)

	var verrs validator.ValidationErrors
	_, err = svc.CreatePosting(hr, recruitment.CreatePostingRequest{Vacancies: intPtr(0)})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "title")
	assert.Contains(t, verrs.ToMap(), "vacancies")

	missing := int64(9999)
	_, err = svc.CreatePosting(hr, recruitment.CreatePostingRequest{Title: "Ghost", DepartmentID: &missing})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestListPostings_DefaultsToOpen(t *testing.T) {
	svc, _, hr := newTestService(t)
	ctx := context.Background()

	open, err := svc.CreatePosting(hr, recruitment.CreatePostingRequest{Title: "Accountant"})
	require.NoError(t, err)
	closed, err := svc.CreatePosting(hr, recruitment.CreatePostingRequest{Title: "Driver"})
	require.NoError(t, err)
	_, err = svc.UpdatePosting(hr, recruitment.UpdatePostingRequest{ID: closed.ID, Status: strPtr("closed")})
	require.NoError(t, err)

	list, err := svc.ListPostings(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, open.ID, list[0].ID)

	list, err = svc.ListPostings(ctx, strPtr("closed"))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, closed.ID, list[0].ID)

	list, err = svc.ListPostings(ctx, strPtr("all"))
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestApply(t *testing.T) {
	svc, _, hr := newTestService(t)
	ctx := context.Background()

	posting, err := svc.CreatePosting(hr, recruitment.CreatePostingRequest{Title: "Recruiter", ClosingDate: strPtr("2025-06-30")})
	require.NoError(t, err)

	got := apply(t, svc, posting.ID, "nora@example.com")
	assert.Equal(t, "pending", got.Status)
	require.NotNil(t, got.JobTitle)
	assert.Equal(t, "Recruiter", *got.JobTitle)
	require.NotNil(t, got.ResumeFile)
	assert.Equal(t, "resumes/nora@example.com.pdf", *got.ResumeFile)

	_, err = svc.Apply(ctx, recruitment.ApplyRequest{JobPostingID: posting.ID, ApplicantName: "Nora", Email: "nora@example.com", Phone: "0551234567"})
	assert.ErrorIs(t, err, recruitment.ErrDuplicateApplication)

	_, err = svc.Apply(ctx, recruitment.ApplyRequest{JobPostingID: 9999, ApplicantName: "Nora", Email: "x@example.com", Phone: "0551234567"})
	assert.ErrorIs(t, err, recruitment.ErrPostingNotFound)

	svc.now = func() time.Time { return time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC) }
	_, err = svc.Apply(ctx, recruitment.ApplyRequest{JobPostingID: posting.ID, ApplicantName: "Late", Email: "late@example.com", Phone: "0551234567"})
	assert.ErrorIs(t, err, recruitment.ErrPostingNotOpen)

	fetched, err := svc.GetPosting(ctx, posting.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fetched.ApplicationCount)
}

func TestUpdateApplicationStatus_Workflow(t *testing.T) {
	svc, ids, hr := newTestService(t)

	posting, err := svc.CreatePosting(hr, recruitment.CreatePostingRequest{Title: "Analyst"})
	require.NoError(t, err)
	app := apply(t, svc, posting.ID, "omar@example.com")

	interview, err := svc.UpdateApplicationStatus(hr, recruitment.UpdateApplicationStatusRequest{
		ID: app.ID, Status: strPtr("interview"), InterviewDate: strPtr("2025-06-10T09:30"), InterviewNotes: strPtr("panel"),
	})
	require.NoError(t, err)
	assert.Equal(t, "interview", interview.Status)
	require.NotNil(t, interview.InterviewDate)
	assert.Equal(t, "2025-06-10T09:30", *interview.InterviewDate)
	require.NotNil(t, interview.ReviewedBy)
	assert.Equal(t, ids.AdminUserID, *interview.ReviewedBy)
	assert.NotNil(t, interview.ReviewedDate)

	_, err = svc.UpdateApplicationStatus(hr, recruitment.UpdateApplicationStatusRequest{ID: app.ID, Status: strPtr("pending")})
	assert.ErrorIs(t, err, recruitment.ErrInvalidStatusTransition)

	rejected, err := svc.UpdateApplicationStatus(hr, recruitment.UpdateApplicationStatusRequest{ID: app.ID, Status: strPtr("rejected")})
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)

	_, err = svc.UpdateApplicationStatus(hr, recruitment.UpdateApplicationStatusRequest{ID: app.ID, Status: strPtr("accepted")})
	assert.ErrorIs(t, err, recruitment.ErrInvalidStatusTransition)

	_, err = svc.UpdateApplicationStatus(hr, recruitment.UpdateApplicationStatusRequest{ID: 9999, Status: strPtr("reviewed")})
	assert.ErrorIs(t, err, recruitment.ErrApplicationNotFound)

	_, err = svc.UpdateApplicationStatus(context.Background(), recruitment.UpdateApplicationStatusRequest{ID: app.ID, Status: strPtr("reviewed")})
	assert.ErrorIs(t, err, user.ErrUnauthenticated)
}

func TestUpdateApplicationStatus_FillsPosting(t *testing.T) {
	svc, _, hr := newTestService(t)
	ctx := context.Background()

	posting, err := svc.CreatePosting(hr, recruitment.CreatePostingRequest{Title: "Nurse", Vacancies: intPtr(2)})
	require.NoError(t, err)
	first := apply(t, svc, posting.ID, "a@example.com")
	second := apply(t, svc, posting.ID, "b@example.com")
	third := apply(t, svc, posting.ID, "c@example.com")

	_, err = svc.UpdateApplicationStatus(hr, recruitment.UpdateApplicationStatusRequest{ID: first.ID, Status: strPtr("accepted")})
	require.NoError(t, err)

	_, err = svc.UpdatePosting(hr, recruitment.UpdatePostingRequest{ID: posting.ID, Vacancies: intPtr(1)})
	require.NoError(t, err)
	_, err = svc.UpdatePosting(hr, recruitment.UpdatePostingRequest{ID: posting.ID, Vacancies: intPtr(2)})
	require.NoError(t, err)

	_, err = svc.UpdateApplicationStatus(hr, recruitment.UpdateApplicationStatusRequest{ID: second.ID, Status: strPtr("accepted")})
	require.NoError(t, err)

	filled, err := svc.GetPosting(ctx, posting.ID)
	require.NoError(t, err)
	assert.Equal(t, "filled", filled.Status)

	_, err = svc.UpdateApplicationStatus(hr, recruitment.UpdateApplicationStatusRequest{ID: third.ID, Status: strPtr("accepted")})
	assert.ErrorIs(t, err, recruitment.ErrNoVacancyLeft)

	_, err = svc.UpdatePosting(hr, recruitment.UpdatePostingRequest{ID: posting.ID, Vacancies: intPtr(1)})
	assert.ErrorIs(t, err, recruitment.ErrVacanciesBelowAccepted)

	_, err = svc.Apply(ctx, recruitment.ApplyRequest{JobPostingID: posting.ID, ApplicantName: "D", Email: "d@example.com", Phone: "0551234567"})
	assert.ErrorIs(t, err, recruitment.ErrPostingNotOpen)
}

func TestListApplications_Filters(t *testing.T) {
	svc, _, hr := newTestService(t)

	p1, err := svc.CreatePosting(hr, recruitment.CreatePostingRequest{Title: "One"})
	require.NoError(t, err)
	p2, err := svc.CreatePosting(hr, recruitment.CreatePostingRequest{Title: "Two"})
	require.NoError(t, err)
	a := apply(t, svc, p1.ID, "a@example.com")
	apply(t, svc, p1.ID, "b@example.com")
	apply(t, svc, p2.ID, "c@example.com")

	_, err = svc.UpdateApplicationStatus(hr, recruitment.UpdateApplicationStatusRequest{ID: a.ID, Status: strPtr("reviewed")})
	require.NoError(t, err)

	all, err := svc.ListApplications(hr, recruitment.ApplicationFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byPosting, err := svc.ListApplications(hr, recruitment.ApplicationFilter{JobPostingID: &p1.ID})
	require.NoError(t, err)
	assert.Len(t, byPosting, 2)

	reviewed, err := svc.ListApplications(hr, recruitment.ApplicationFilter{Status: strPtr("reviewed")})
	require.NoError(t, err)
	require.Len(t, reviewed, 1)
	assert.Equal(t, a.ID, reviewed[0].ID)

	require.NoError(t, svc.DeletePosting(hr, p1.ID))
	all, err = svc.ListApplications(hr, recruitment.ApplicationFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.ErrorIs(t, svc.DeletePosting(hr, p1.ID), recruitment.ErrPostingNotFound)
}
