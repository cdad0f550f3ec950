package payroll

import "context"

type PayrollService interface {
	// GeneratePayslip computes (or recomputes) one employee's payroll for
	// the period and returns the full payslip view.
	GeneratePayslip(ctx context.Context, req GeneratePayslipRequest) (PayslipResponse, error)
	// RunPayroll computes payroll for every active employee. Employees
	// without a salary structure are skipped without error.
	RunPayroll(ctx context.Context, req RunPayrollRequest) (RunPayrollResponse, error)
	ListRecords(ctx context.Context, filter PayrollFilter) ([]PayrollRecordResponse, error)
}
