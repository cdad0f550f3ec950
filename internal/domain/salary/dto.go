package salary

import (
	"github.com/autotrack-hq/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// UpsertSalaryStructureRequest carries a partial update: nil fields keep
// the value from the employee's latest structure (or zero on first insert).
type UpsertSalaryStructureRequest struct {
	BasicSalary        *decimal.Decimal `json:"basic_salary,omitempty"`
	HRA                *decimal.Decimal `json:"hra,omitempty"`
	TransportAllowance *decimal.Decimal `json:"transport_allowance,omitempty"`
	MedicalAllowance   *decimal.Decimal `json:"medical_allowance,omitempty"`
	OtherAllowances    *decimal.Decimal `json:"other_allowances,omitempty"`
	PFDeduction        *decimal.Decimal `json:"pf_deduction,omitempty"`
	TaxDeduction       *decimal.Decimal `json:"tax_deduction,omitempty"`
	OtherDeductions    *decimal.Decimal `json:"other_deductions,omitempty"`
	OvertimeRate       *decimal.Decimal `json:"overtime_rate,omitempty"`
	EffectiveFrom      *string          `json:"effective_from,omitempty"`
}

func (r UpsertSalaryStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EffectiveFrom != nil {
		if _, ok := validator.IsValidDate(*r.EffectiveFrom); !ok {
			errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	for field, v := range map[string]*decimal.Decimal{
		"basic_salary":        r.BasicSalary,
		"hra":                 r.HRA,
		"transport_allowance": r.TransportAllowance,
		"medical_allowance":   r.MedicalAllowance,
		"other_allowances":    r.OtherAllowances,
		"pf_deduction":        r.PFDeduction,
		"tax_deduction":       r.TaxDeduction,
		"other_deductions":    r.OtherDeductions,
		"overtime_rate":       r.OvertimeRate,
	} {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must not be negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryStructureResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HRA                decimal.Decimal `json:"hra"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MedicalAllowance   decimal.Decimal `json:"medical_allowance"`
	OtherAllowances    decimal.Decimal `json:"other_allowances"`
	PFDeduction        decimal.Decimal `json:"pf_deduction"`
	TaxDeduction       decimal.Decimal `json:"tax_deduction"`
	OtherDeductions    decimal.Decimal `json:"other_deductions"`
	OvertimeRate       decimal.Decimal `json:"overtime_rate"`
	EffectiveFrom      string          `json:"effective_from"`
}
