package leave

import (
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLeaveRequest_Validate(t *testing.T) {
	req := CreateLeaveRequest{LeaveType: "annual", StartDate: "2024-08-01", EndDate: "2024-08-05"}
	assert.NoError(t, req.Validate())

	req = CreateLeaveRequest{LeaveType: "holiday", StartDate: "2024-08-05", EndDate: "2024-08-01"}
	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "leave_type")
	assert.Contains(t, m, "end_date")
}
