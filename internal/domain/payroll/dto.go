package payroll

import (
	"github.com/autotrack-hq/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// GeneratePayslipRequest identifies one employee and an optional period.
// EmpID accepts the internal id or the human-facing employee code; month
// and year default to the current calendar month when omitted.
type GeneratePayslipRequest struct {
	EmpID string `json:"emp_id"`
	Month *int   `json:"month,omitempty"`
	Year  *int   `json:"year,omitempty"`
}

func (r GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: "employee ID (emp_id) is required"})
	}
	if r.Month != nil && !validator.IsValidMonth(*r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year != nil && !validator.IsValidYear(*r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a plausible year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RunPayrollRequest struct {
	Month *int `json:"month,omitempty"`
	Year  *int `json:"year,omitempty"`
}

func (r RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != nil && !validator.IsValidMonth(*r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year != nil && !validator.IsValidYear(*r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a plausible year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PayslipResponse is the presentation-ready payslip. It is derived fresh
// on every request and never persisted.
type PayslipResponse struct {
	ID          string             `json:"id"`
	Employee    PayslipEmployee    `json:"employee"`
	Period      PayslipPeriod      `json:"period"`
	Attendance  PayslipAttendance  `json:"attendance"`
	Earnings    PayslipEarnings    `json:"earnings"`
	Deductions  PayslipDeductions  `json:"deductions"`
	NetSalary   decimal.Decimal    `json:"net_salary"`
	GeneratedAt string             `json:"generated_at"`
	Status      string             `json:"status"`
}

type PayslipEmployee struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_id"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Department   *string `json:"department,omitempty"`
	JoinDate     *string `json:"join_date,omitempty"`
}

type PayslipPeriod struct {
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	MonthName string `json:"month_name"`
}

type PayslipAttendance struct {
	WorkingDays   int             `json:"working_days"`
	PresentDays   int             `json:"present_days"`
	HalfDays      int             `json:"half_days"`
	EffectiveDays decimal.Decimal `json:"effective_days"`
	AbsentDays    int             `json:"absent_days"`
	OvertimeHours float64         `json:"overtime_hours"`
}

// PayslipEarnings re-derives each allowance line independently for
// display. The lines do not necessarily sum to the pooled total stored on
// the record; both figures are kept on purpose.
type PayslipEarnings struct {
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HRA                decimal.Decimal `json:"hra"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MedicalAllowance   decimal.Decimal `json:"medical_allowance"`
	OtherAllowances    decimal.Decimal `json:"other_allowances"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	GrossSalary        decimal.Decimal `json:"gross_salary"`
}

type PayslipDeductions struct {
	PF    decimal.Decimal `json:"pf"`
	Tax   decimal.Decimal `json:"tax"`
	Other decimal.Decimal `json:"other"`
	Total decimal.Decimal `json:"total"`
}

type RunPayrollResult struct {
	EmployeeCode string          `json:"employee_id"`
	Name         string          `json:"name"`
	NetSalary    decimal.Decimal `json:"net_salary"`
}

type RunPayrollResponse struct {
	Message string             `json:"message"`
	Month   int                `json:"month"`
	Year    int                `json:"year"`
	Results []RunPayrollResult `json:"results"`
}

type PayrollFilter struct {
	Month *int
	Year  *int
}

type PayrollRecordResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name,omitempty"`
	EmployeeCode    string          `json:"employee_code,omitempty"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	WorkingDays     int             `json:"working_days"`
	EffectiveDays   decimal.Decimal `json:"present_days"`
	OvertimeHours   float64         `json:"overtime_hours"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	OvertimePay     decimal.Decimal `json:"overtime_pay"`
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	NetSalary       decimal.Decimal `json:"net_salary"`
	Status          string          `json:"status"`
	GeneratedAt     string          `json:"generated_at"`
}
