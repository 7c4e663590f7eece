package jobtitle

import "errors"

var (
	ErrJobTitleNotFound   = errors.New("job title not found")
	ErrJobTitleCodeExists = errors.New("job title code already exists")
)
