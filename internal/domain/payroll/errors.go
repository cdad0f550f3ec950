package payroll

import "errors"

var (
	ErrNoSalaryStructure     = errors.New("no salary structure found for this employee")
	ErrInvalidPeriod         = errors.New("invalid payroll period")
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
)
