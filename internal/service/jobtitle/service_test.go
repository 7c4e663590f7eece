package jobtitle

import (
	"context"
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/department"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/jobtitle"
	"github.com/hrms-suite/hrms-backend-go/internal/fixtures"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobTitleLifecycle(t *testing.T) {
	db, ids := fixtures.NewSeededTestDB(t)
	svc := NewJobTitleService(sqlite.NewJobTitleRepository(db), sqlite.NewDepartmentRepository(db))
	ctx := context.Background()
	itID := ids.DepartmentIDs["IT"]

	itTitles, err := svc.ListJobTitles(ctx, &itID)
	require.NoError(t, err)
	before := len(itTitles)

	code := "IT-SRE"
	min, max := decimal.NewFromInt(9000), decimal.NewFromInt(15000)
	created, err := svc.CreateJobTitle(ctx, jobtitle.CreateJobTitleRequest{
		Title: "Site Reliability Engineer", Code: &code, DepartmentID: &itID, MinSalary: &min, MaxSalary: &max,
	})
	require.NoError(t, err)
	require.NotNil(t, created.DepartmentName)
	assert.Equal(t, "Information Technology", *created.DepartmentName)
	assert.True(t, created.MaxSalary.Equal(max))

	_, err = svc.CreateJobTitle(ctx, jobtitle.CreateJobTitleRequest{Title: "Copy", Code: &code})
	assert.ErrorIs(t, err, jobtitle.ErrJobTitleCodeExists)

	missing := int64(9999)
	_, err = svc.CreateJobTitle(ctx, jobtitle.CreateJobTitleRequest{Title: "Ghost", DepartmentID: &missing})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)

	level := "senior"
	updated, err := svc.UpdateJobTitle(ctx, jobtitle.UpdateJobTitleRequest{ID: created.ID, Level: &level})
	require.NoError(t, err)
	require.NotNil(t, updated.Level)
	assert.Equal(t, "senior", *updated.Level)

	itTitles, err = svc.ListJobTitles(ctx, &itID)
	require.NoError(t, err)
	assert.Len(t, itTitles, before+1)

	require.NoError(t, svc.DeleteJobTitle(ctx, created.ID))
	_, err = svc.GetJobTitle(ctx, created.ID)
	assert.ErrorIs(t, err, jobtitle.ErrJobTitleNotFound)
}
