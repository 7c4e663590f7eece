package department

import "errors"

var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentCodeExists    = errors.New("department code already exists")
	ErrDepartmentHasEmployees  = errors.New("cannot delete a department that still has active employees")
	ErrDepartmentCycle         = errors.New("a department cannot be its own ancestor")
	ErrParentDepartmentMissing = errors.New("parent department not found")
	ErrManagerNotFound         = errors.New("manager employee not found")
)
