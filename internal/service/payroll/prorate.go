package payroll

import (
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

// Prorate converts a salary structure and a period's attendance totals
// into every monetary field of a payroll record. It is the single shared
// routine behind both the payslip path and the bulk run.
//
// Each monetary step rounds to the nearest whole currency unit before the
// next step uses it; reordering the steps or deferring the rounding
// changes the result.
func Prorate(structure salary.SalaryStructure, workingDays int, totals payroll.AttendanceTotals) (payroll.Computation, error) {
	if workingDays <= 0 {
		return payroll.Computation{}, payroll.ErrInvalidPeriod
	}

	wd := decimal.NewFromInt(int64(workingDays))
	effectiveDays := decimal.NewFromInt(int64(totals.PresentDays)).
		Add(decimal.NewFromInt(int64(totals.HalfDays)).Mul(half))

	dailyRate := structure.BasicSalary.Div(wd) // unrounded
	earnedBasic := dailyRate.Mul(effectiveDays).Round(0)

	// One pooled ratio for all allowance components, not four separately
	// rounded ones.
	totalAllowances := structure.AllowancePool().Div(wd).Mul(effectiveDays).Round(0)

	overtimePay := decimal.NewFromFloat(totals.OvertimeHours).Mul(structure.OvertimeRate).Round(0)

	grossSalary := earnedBasic.Add(totalAllowances).Add(overtimePay)

	// Deductions are flat monthly amounts, never prorated.
	totalDeductions := structure.PFDeduction.Add(structure.TaxDeduction).Add(structure.OtherDeductions)

	return payroll.Computation{
		WorkingDays:     workingDays,
		EffectiveDays:   effectiveDays,
		OvertimeHours:   totals.OvertimeHours,
		EarnedBasic:     earnedBasic,
		TotalAllowances: totalAllowances,
		OvertimePay:     overtimePay,
		GrossSalary:     grossSalary,
		TotalDeductions: totalDeductions,
		NetSalary:       grossSalary.Sub(totalDeductions),
	}, nil
}

// prorateLine scales one full-month amount by effectiveDays/workingDays
// and rounds. Payslip display re-derives each allowance line with this,
// independently of the pooled total Prorate stores.
func prorateLine(amount decimal.Decimal, workingDays int, effectiveDays decimal.Decimal) decimal.Decimal {
	return amount.Div(decimal.NewFromInt(int64(workingDays))).Mul(effectiveDays).Round(0)
}
