package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/recruitment"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/training"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", validator.ValidationErrors{{Field: "email", Message: "email is required"}}, http.StatusBadRequest},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthenticated", user.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", user.ErrForbidden, http.StatusForbidden},
		{"own leave decision", leave.ErrSelfDecision, http.StatusForbidden},
		{"posting not found", recruitment.ErrPostingNotFound, http.StatusNotFound},
		{"duplicate application", recruitment.ErrDuplicateApplication, http.StatusBadRequest},
		{"decided application", recruitment.ErrInvalidStatusTransition, http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("load: %w", employee.ErrEmployeeNotFound), http.StatusNotFound},
		{"duplicate", employee.ErrEmailExists, http.StatusBadRequest},
		{"business rule", attendance.ErrAlreadyCheckedIn, http.StatusBadRequest},
		{"period generated", payroll.ErrPayrollPeriodAlreadyGenerated, http.StatusBadRequest},
		{"capacity", training.ErrCapacityExceeded, http.StatusBadRequest},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
		})
	}
}

func TestHandleError_ValidationFields(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "email", Message: "invalid email format"},
		{Field: "hire_date", Message: "hire_date is required"},
	})

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid email format", body.Errors["email"])
	assert.Equal(t, "hire_date is required", body.Errors["hire_date"])
}

func TestHandleError_InternalMessage(t *testing.T) {
	t.Cleanup(func() { ExposeInternalErrors(false) })

	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("disk on fire"))
	assert.NotContains(t, rec.Body.String(), "disk on fire")

	ExposeInternalErrors(true)
	rec = httptest.NewRecorder()
	HandleError(rec, errors.New("disk on fire"))
	assert.Contains(t, rec.Body.String(), "disk on fire")
}

func TestSuccessOmitsEmptyFields(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMessage(rec, "done", nil)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, true, raw["success"])
	assert.Equal(t, "done", raw["message"])
	assert.NotContains(t, raw, "data")
	assert.NotContains(t, raw, "errors")
}
