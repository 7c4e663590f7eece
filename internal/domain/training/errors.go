package training

import "errors"

var (
	ErrProgramNotFound       = errors.New("training program not found")
	ErrEnrollmentNotFound    = errors.New("enrollment not found")
	ErrCapacityExceeded      = errors.New("training program is full")
	ErrDuplicateEnrollment   = errors.New("employee is already enrolled in this program")
	ErrCapacityBelowEnrolled = errors.New("capacity cannot be lower than the current enrollment")
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrInvalidDateRange      = errors.New("end_date must not be before start_date")
)
