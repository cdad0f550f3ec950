package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryStructure holds the full-month amounts used to compute payroll.
// An employee may accumulate several rows over time; the row with the
// latest effective_from is the one payroll computes against.
type SalaryStructure struct {
	ID                 string
	EmployeeID         string
	BasicSalary        decimal.Decimal
	HRA                decimal.Decimal
	TransportAllowance decimal.Decimal
	MedicalAllowance   decimal.Decimal
	OtherAllowances    decimal.Decimal
	PFDeduction        decimal.Decimal
	TaxDeduction       decimal.Decimal
	OtherDeductions    decimal.Decimal
	OvertimeRate       decimal.Decimal
	EffectiveFrom      time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AllowancePool is the sum of all allowance components; proration uses
// this pooled figure, not the individual lines.
func (s SalaryStructure) AllowancePool() decimal.Decimal {
	return s.HRA.Add(s.TransportAllowance).Add(s.MedicalAllowance).Add(s.OtherAllowances)
}
