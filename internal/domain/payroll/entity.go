package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	// PayrollStatusGenerated is set on every (re)computation.
	PayrollStatusGenerated PayrollStatus = "Generated"
	// Approved and Paid are terminal states reached through an external
	// workflow; the engine never sets them.
	PayrollStatusApproved PayrollStatus = "Approved"
	PayrollStatusPaid     PayrollStatus = "Paid"
)

// PayrollRecord is the canonical computed result, unique per
// (employee_id, month, year). Recomputing a period overwrites the
// existing row in place.
type PayrollRecord struct {
	ID          string
	EmployeeID  string
	Month       int
	Year        int
	WorkingDays int
	// EffectiveDays persists to the present_days column. The stored value
	// has always been present days plus half-day fractions, so the column
	// name is kept for compatibility while the Go name says what it means.
	EffectiveDays   decimal.Decimal
	OvertimeHours   float64
	BasicSalary     decimal.Decimal // earned basic, not the full-month amount
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	OvertimePay     decimal.Decimal
	GrossSalary     decimal.Decimal
	NetSalary       decimal.Decimal
	Status          PayrollStatus
	GeneratedAt     time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// AttendanceTotals is the aggregation of one employee's attendance rows
// for a period: the countable work-units proration runs on.
type AttendanceTotals struct {
	PresentDays   int
	HalfDays      int
	OvertimeHours float64
}

// Computation holds every monetary field the prorator derives. Both the
// single-payslip path and the bulk run persist exactly these values.
type Computation struct {
	WorkingDays     int
	EffectiveDays   decimal.Decimal
	OvertimeHours   float64
	EarnedBasic     decimal.Decimal
	TotalAllowances decimal.Decimal
	OvertimePay     decimal.Decimal
	GrossSalary     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
}
