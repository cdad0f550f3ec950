package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/attendance"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/employee"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/salary"
	"github.com/autotrack-hq/payroll-backend-go/internal/pkg/clock"
	"github.com/google/uuid"
)

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	salaryRepo     salary.SalaryRepository
	attendanceRepo attendance.AttendanceRepository
	payrollRepo    payroll.PayrollRepository
	clk            clock.Clock
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	salaryRepo salary.SalaryRepository,
	attendanceRepo attendance.AttendanceRepository,
	payrollRepo payroll.PayrollRepository,
	clk clock.Clock,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		salaryRepo:     salaryRepo,
		attendanceRepo: attendanceRepo,
		payrollRepo:    payrollRepo,
		clk:            clk,
	}
}

// resolvePeriod fills missing month/year from the injected clock.
func (s *PayrollServiceImpl) resolvePeriod(month, year *int) (int, int) {
	now := s.clk.Now()
	m := int(now.Month())
	y := now.Year()
	if month != nil {
		m = *month
	}
	if year != nil {
		y = *year
	}
	return m, y
}

// findEmployee accepts the internal id or the employee code, tried in
// that order. The id column is uuid-typed, so only uuid-shaped keys go
// through GetByID; sending a code there would fail in the driver before
// the not-found fallback could run.
func (s *PayrollServiceImpl) findEmployee(ctx context.Context, key string) (employee.Employee, error) {
	if _, parseErr := uuid.Parse(key); parseErr == nil {
		emp, err := s.employeeRepo.GetByID(ctx, key)
		if err == nil {
			return emp, nil
		}
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
	}

	emp, err := s.employeeRepo.GetByEmployeeCode(ctx, key)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, fmt.Errorf("employee not found with ID %s: %w", key, employee.ErrEmployeeNotFound)
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// computeForEmployee runs the full pipeline for one employee/period and
// upserts the result. Both entry points funnel through here so the
// arithmetic exists in exactly one place.
func (s *PayrollServiceImpl) computeForEmployee(
	ctx context.Context,
	emp employee.Employee,
	structure salary.SalaryStructure,
	month, year int,
) (payroll.PayrollRecord, payroll.AttendanceTotals, error) {
	workingDays, err := WorkingDays(month, year)
	if err != nil {
		return payroll.PayrollRecord{}, payroll.AttendanceTotals{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeePeriod(ctx, emp.ID, month, year)
	if err != nil {
		return payroll.PayrollRecord{}, payroll.AttendanceTotals{}, fmt.Errorf("failed to load attendance for employee %s: %w", emp.ID, err)
	}
	totals := SummarizeAttendance(records)

	comp, err := Prorate(structure, workingDays, totals)
	if err != nil {
		return payroll.PayrollRecord{}, payroll.AttendanceTotals{}, err
	}

	record := payroll.PayrollRecord{
		EmployeeID:      emp.ID,
		Month:           month,
		Year:            year,
		WorkingDays:     comp.WorkingDays,
		EffectiveDays:   comp.EffectiveDays,
		OvertimeHours:   comp.OvertimeHours,
		BasicSalary:     comp.EarnedBasic,
		TotalAllowances: comp.TotalAllowances,
		TotalDeductions: comp.TotalDeductions,
		OvertimePay:     comp.OvertimePay,
		GrossSalary:     comp.GrossSalary,
		NetSalary:       comp.NetSalary,
		Status:          payroll.PayrollStatusGenerated,
		GeneratedAt:     s.clk.Now(),
	}

	saved, err := s.payrollRepo.Upsert(ctx, record)
	if err != nil {
		return payroll.PayrollRecord{}, payroll.AttendanceTotals{}, fmt.Errorf("failed to save payroll record for employee %s: %w", emp.ID, err)
	}
	return saved, totals, nil
}

func (s *PayrollServiceImpl) GeneratePayslip(ctx context.Context, req payroll.GeneratePayslipRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	month, year := s.resolvePeriod(req.Month, req.Year)

	emp, err := s.findEmployee(ctx, req.EmpID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	structure, err := s.salaryRepo.GetCurrentByEmployeeID(ctx, emp.ID)
	if err != nil {
		if errors.Is(err, salary.ErrSalaryStructureNotFound) {
			return payroll.PayslipResponse{}, payroll.ErrNoSalaryStructure
		}
		return payroll.PayslipResponse{}, err
	}

	record, totals, err := s.computeForEmployee(ctx, emp, structure, month, year)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return assemblePayslip(emp, structure, record, totals), nil
}

func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req payroll.RunPayrollRequest) (payroll.RunPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunPayrollResponse{}, err
	}

	month, year := s.resolvePeriod(req.Month, req.Year)

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.RunPayrollResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	results := make([]payroll.RunPayrollResult, 0, len(employees))
	for _, emp := range employees {
		structure, err := s.salaryRepo.GetCurrentByEmployeeID(ctx, emp.ID)
		if err != nil {
			// Employees without a salary structure are skipped on purpose:
			// the bulk run reports only what it computed.
			if errors.Is(err, salary.ErrSalaryStructureNotFound) {
				continue
			}
			return payroll.RunPayrollResponse{}, err
		}

		record, _, err := s.computeForEmployee(ctx, emp, structure, month, year)
		if err != nil {
			return payroll.RunPayrollResponse{}, err
		}

		results = append(results, payroll.RunPayrollResult{
			EmployeeCode: emp.EmployeeCode,
			Name:         emp.Name,
			NetSalary:    record.NetSalary,
		})
	}

	return payroll.RunPayrollResponse{
		Message: fmt.Sprintf("Payroll generated for %d employees.", len(results)),
		Month:   month,
		Year:    year,
		Results: results,
	}, nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecordResponse, error) {
	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}
	return result, nil
}

func mapToRecordResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	employeeName := ""
	employeeCode := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}
	if r.EmployeeCode != nil {
		employeeCode = *r.EmployeeCode
	}

	return payroll.PayrollRecordResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    employeeName,
		EmployeeCode:    employeeCode,
		Month:           r.Month,
		Year:            r.Year,
		WorkingDays:     r.WorkingDays,
		EffectiveDays:   r.EffectiveDays,
		OvertimeHours:   r.OvertimeHours,
		BasicSalary:     r.BasicSalary,
		TotalAllowances: r.TotalAllowances,
		TotalDeductions: r.TotalDeductions,
		OvertimePay:     r.OvertimePay,
		GrossSalary:     r.GrossSalary,
		NetSalary:       r.NetSalary,
		Status:          string(r.Status),
		GeneratedAt:     r.GeneratedAt.Format(time.RFC3339),
	}
}
