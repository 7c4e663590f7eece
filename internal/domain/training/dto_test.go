package training

import (
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProgramRequest_Validate(t *testing.T) {
	req := CreateProgramRequest{Name: "Go Basics", StartDate: "2024-09-01", EndDate: "2024-09-03", Capacity: 10}
	assert.NoError(t, req.Validate())

	req = CreateProgramRequest{StartDate: "2024-09-03", EndDate: "2024-09-01"}
	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "name")
	assert.Contains(t, m, "end_date")
	assert.Contains(t, m, "capacity")
}

func TestProgram_IsFull(t *testing.T) {
	assert.True(t, Program{Capacity: 1, EnrolledCount: 1}.IsFull())
	assert.False(t, Program{Capacity: 2, EnrolledCount: 1}.IsFull())
}

func TestUpdateEnrollmentRequest_Validate(t *testing.T) {
	score := 120.0
	status := "graduated"
	req := UpdateEnrollmentRequest{ID: 1, Score: &score, CompletionStatus: &status}
	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "score")
	assert.Contains(t, errs.ToMap(), "completion_status")
}
