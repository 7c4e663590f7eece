package employee

import "errors"

var (
	ErrEmployeeNotFound         = errors.New("employee not found")
	ErrEmployeeNumberExists     = errors.New("employee number already exists")
	ErrEmailExists              = errors.New("email already registered")
	ErrNationalIDExists         = errors.New("national id already registered")
	ErrInvalidReference         = errors.New("referenced department, job title or manager does not exist")
	ErrEmployeeNumberGeneration = errors.New("could not generate a unique employee number")
)
