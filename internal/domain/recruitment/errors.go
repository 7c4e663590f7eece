package recruitment

import "errors"

var (
	ErrPostingNotFound         = errors.New("job posting not found")
	ErrApplicationNotFound     = errors.New("job application not found")
	ErrPostingNotOpen          = errors.New("job posting is not accepting applications")
	ErrDuplicateApplication    = errors.New("an application with this email already exists for the posting")
	ErrInvalidStatusTransition = errors.New("application status change not allowed")
	ErrNoVacancyLeft           = errors.New("all vacancies for the posting are filled")
	ErrVacanciesBelowAccepted  = errors.New("vacancies cannot be below accepted applications")
)
