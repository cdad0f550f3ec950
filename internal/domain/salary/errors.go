package salary

import "errors"

var (
	ErrSalaryStructureNotFound = errors.New("no salary structure found for this employee")
)
