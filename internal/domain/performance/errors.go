package performance

import "errors"

var (
	ErrReviewNotFound      = errors.New("performance review not found")
	ErrReviewAlreadyExists = errors.New("a review already exists for this employee and period")
	ErrEmployeeNotFound    = errors.New("employee not found")
)
