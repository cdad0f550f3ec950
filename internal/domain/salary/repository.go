package salary

import "context"

// SalaryRepository exposes the "latest structure wins" contract explicitly:
// GetCurrentByEmployeeID returns the row with the maximum effective_from,
// or ErrSalaryStructureNotFound when the employee has none.
type SalaryRepository interface {
	GetCurrentByEmployeeID(ctx context.Context, employeeID string) (SalaryStructure, error)
	Create(ctx context.Context, structure SalaryStructure) (SalaryStructure, error)
	Update(ctx context.Context, structure SalaryStructure) (SalaryStructure, error)
}
