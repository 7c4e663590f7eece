package attendance

import (
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateAttendanceRequest_Validate(t *testing.T) {
	req := UpdateAttendanceRequest{ID: 1}
	assert.Error(t, req.Validate())

	req = UpdateAttendanceRequest{ID: 1, CheckIn: strPtr("08:00:00"), CheckOut: strPtr("17:30:00")}
	assert.NoError(t, req.Validate())

	req = UpdateAttendanceRequest{ID: 1, CheckIn: strPtr("17:00:00"), CheckOut: strPtr("08:00:00")}
	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "check_out")

	req = UpdateAttendanceRequest{ID: 1, Status: strPtr("vacation")}
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "status")
}

func TestAttendanceFilter_Validate(t *testing.T) {
	month := 13
	f := AttendanceFilter{Month: &month, StartDate: strPtr("2024/01/01")}
	var errs validator.ValidationErrors
	require.ErrorAs(t, f.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "month")
	assert.Contains(t, errs.ToMap(), "start_date")
}
