package payroll

import "context"

// PayrollRepository persists computed payroll results. Upsert is the
// idempotency boundary: the same (employee_id, month, year) key always
// resolves to a single row, overwritten on recomputation.
type PayrollRepository interface {
	Upsert(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (PayrollRecord, error)
	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, error)
}
