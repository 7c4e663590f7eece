package response

import (
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/department"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/jobtitle"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/notification"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/performance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/recruitment"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/training"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
)

const internalErrorMessage = "An unexpected error occurred"

var exposeInternalErrors atomic.Bool

// ExposeInternalErrors makes 500 responses carry the raw error text.
// Enabled in development only.
func ExposeInternalErrors(enabled bool) {
	exposeInternalErrors.Store(enabled)
}

var notFoundErrors = []error{
	user.ErrUserNotFound,
	employee.ErrEmployeeNotFound,
	department.ErrDepartmentNotFound,
	department.ErrParentDepartmentMissing,
	department.ErrManagerNotFound,
	jobtitle.ErrJobTitleNotFound,
	attendance.ErrAttendanceNotFound,
	leave.ErrLeaveRequestNotFound,
	payroll.ErrPayrollRecordNotFound,
	payroll.ErrEmployeeNotFound,
	payroll.ErrNoEligibleEmployees,
	performance.ErrReviewNotFound,
	performance.ErrEmployeeNotFound,
	training.ErrProgramNotFound,
	training.ErrEnrollmentNotFound,
	training.ErrEmployeeNotFound,
	notification.ErrNotificationNotFound,
	recruitment.ErrPostingNotFound,
	recruitment.ErrApplicationNotFound,
}

var badRequestErrors = []error{
	// duplicates
	user.ErrUserEmailExists,
	employee.ErrEmailExists,
	employee.ErrNationalIDExists,
	employee.ErrEmployeeNumberExists,
	department.ErrDepartmentCodeExists,
	jobtitle.ErrJobTitleCodeExists,
	payroll.ErrPayrollRecordAlreadyExists,
	payroll.ErrPayrollPeriodAlreadyGenerated,
	performance.ErrReviewAlreadyExists,
	training.ErrDuplicateEnrollment,
	recruitment.ErrDuplicateApplication,

	// business rules
	user.ErrInvalidRole,
	user.ErrNoEmployeeLink,
	user.ErrCannotDisableSelf,
	employee.ErrInvalidReference,
	department.ErrDepartmentHasEmployees,
	department.ErrDepartmentCycle,
	attendance.ErrAlreadyCheckedIn,
	attendance.ErrNoOpenCheckIn,
	attendance.ErrInvalidPeriod,
	leave.ErrLeaveRequestAlreadyProcessed,
	leave.ErrLeaveOverlap,
	training.ErrCapacityExceeded,
	training.ErrCapacityBelowEnrolled,
	training.ErrInvalidDateRange,
	recruitment.ErrPostingNotOpen,
	recruitment.ErrInvalidStatusTransition,
	recruitment.ErrNoVacancyLeft,
	recruitment.ErrVacanciesBelowAccepted,
}

var forbiddenErrors = []error{
	user.ErrForbidden,
	leave.ErrSelfDecision,
}

var unauthorizedErrors = []error{
	auth.ErrInvalidCredentials,
	auth.ErrWrongPassword,
	auth.ErrInvalidToken,
	user.ErrUnauthenticated,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case isAny(err, unauthorizedErrors):
		Unauthorized(w, err.Error())
	case isAny(err, forbiddenErrors):
		Forbidden(w, err.Error())
	case isAny(err, notFoundErrors):
		NotFound(w, err.Error())
	case isAny(err, badRequestErrors):
		BadRequest(w, err.Error(), nil)
	default:
		slog.Error("unhandled error", "error", err)
		if exposeInternalErrors.Load() {
			InternalServerError(w, err.Error())
			return
		}
		InternalServerError(w, internalErrorMessage)
	}
}
