package payroll

import (
	"time"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/employee"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/salary"
)

// assemblePayslip builds the presentation view from a freshly upserted
// record plus the structure and attendance totals it was computed from.
//
// The attendance block shows the raw present/half counts and a derived
// absent figure; absent_days can go negative when the logged data is
// inconsistent and is displayed as-is, never validated.
func assemblePayslip(
	emp employee.Employee,
	structure salary.SalaryStructure,
	record payroll.PayrollRecord,
	totals payroll.AttendanceTotals,
) payroll.PayslipResponse {
	var joinDate *string
	if emp.JoinDate != nil {
		str := emp.JoinDate.Format("2006-01-02")
		joinDate = &str
	}

	return payroll.PayslipResponse{
		ID: record.ID,
		Employee: payroll.PayslipEmployee{
			ID:           emp.ID,
			EmployeeCode: emp.EmployeeCode,
			Name:         emp.Name,
			Role:         emp.Role,
			Department:   emp.Department,
			JoinDate:     joinDate,
		},
		Period: payroll.PayslipPeriod{
			Month:     record.Month,
			Year:      record.Year,
			MonthName: time.Month(record.Month).String(),
		},
		Attendance: payroll.PayslipAttendance{
			WorkingDays:   record.WorkingDays,
			PresentDays:   totals.PresentDays,
			HalfDays:      totals.HalfDays,
			EffectiveDays: record.EffectiveDays,
			AbsentDays:    record.WorkingDays - totals.PresentDays - totals.HalfDays,
			OvertimeHours: record.OvertimeHours,
		},
		// Each allowance line is prorated on its own here. The stored
		// total_allowances comes from the pooled ratio, so these lines may
		// not sum to it; downstream consumers rely on both figures.
		Earnings: payroll.PayslipEarnings{
			BasicSalary:        record.BasicSalary,
			HRA:                prorateLine(structure.HRA, record.WorkingDays, record.EffectiveDays),
			TransportAllowance: prorateLine(structure.TransportAllowance, record.WorkingDays, record.EffectiveDays),
			MedicalAllowance:   prorateLine(structure.MedicalAllowance, record.WorkingDays, record.EffectiveDays),
			OtherAllowances:    prorateLine(structure.OtherAllowances, record.WorkingDays, record.EffectiveDays),
			OvertimePay:        record.OvertimePay,
			GrossSalary:        record.GrossSalary,
		},
		Deductions: payroll.PayslipDeductions{
			PF:    structure.PFDeduction,
			Tax:   structure.TaxDeduction,
			Other: structure.OtherDeductions,
			Total: record.TotalDeductions,
		},
		NetSalary:   record.NetSalary,
		GeneratedAt: record.GeneratedAt.Format(time.RFC3339),
		Status:      string(record.Status),
	}
}
