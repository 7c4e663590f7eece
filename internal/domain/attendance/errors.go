package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrNoOpenCheckIn      = errors.New("no open check-in found for today")
	ErrInvalidPeriod      = errors.New("month must be between 1 and 12")
)
