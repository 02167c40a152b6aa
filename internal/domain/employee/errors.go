package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmailExists         = errors.New("email already registered in this company")
	ErrSalaryConfigMissing = errors.New("salary config branch does not match salary type")
)
