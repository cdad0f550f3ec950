package payroll

import (
	"testing"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func testStructure() salary.SalaryStructure {
	return salary.SalaryStructure{
		BasicSalary:        dec(26000),
		HRA:                dec(5000),
		TransportAllowance: dec(2000),
		MedicalAllowance:   dec(1000),
		OtherAllowances:    dec(200),
		PFDeduction:        dec(3120),
		TaxDeduction:       dec(1000),
		OtherDeductions:    dec(300),
		OvertimeRate:       dec(150),
	}
}

func TestProrateFullScenario(t *testing.T) {
	// 26 working days, 24 present + 2 half days = 25 effective days.
	totals := payroll.AttendanceTotals{PresentDays: 24, HalfDays: 2}

	comp, err := Prorate(testStructure(), 26, totals)
	require.NoError(t, err)

	assert.True(t, comp.EffectiveDays.Equal(dec(25)), "effective days = %s", comp.EffectiveDays)
	// 26000 / 26 * 25 = 25000 exactly
	assert.True(t, comp.EarnedBasic.Equal(dec(25000)), "earned basic = %s", comp.EarnedBasic)
	// pooled 8200 / 26 * 25 = 7884.615... -> 7885
	assert.True(t, comp.TotalAllowances.Equal(dec(7885)), "total allowances = %s", comp.TotalAllowances)
	assert.True(t, comp.OvertimePay.Equal(dec(0)), "overtime pay = %s", comp.OvertimePay)
	assert.True(t, comp.GrossSalary.Equal(dec(32885)), "gross = %s", comp.GrossSalary)
	assert.True(t, comp.TotalDeductions.Equal(dec(4420)), "deductions = %s", comp.TotalDeductions)
	assert.True(t, comp.NetSalary.Equal(dec(28465)), "net = %s", comp.NetSalary)
}

func TestProrateOvertime(t *testing.T) {
	totals := payroll.AttendanceTotals{PresentDays: 26, OvertimeHours: 10.5}

	comp, err := Prorate(testStructure(), 26, totals)
	require.NoError(t, err)

	// 10.5 * 150 = 1575
	assert.True(t, comp.OvertimePay.Equal(dec(1575)), "overtime pay = %s", comp.OvertimePay)
	assert.Equal(t, 10.5, comp.OvertimeHours)
}

func TestProrateZeroAttendance(t *testing.T) {
	comp, err := Prorate(testStructure(), 26, payroll.AttendanceTotals{})
	require.NoError(t, err)

	assert.True(t, comp.EarnedBasic.IsZero())
	assert.True(t, comp.TotalAllowances.IsZero())
	assert.True(t, comp.GrossSalary.IsZero())
	// Flat deductions still apply, so net goes negative.
	assert.True(t, comp.NetSalary.Equal(dec(-4420)), "net = %s", comp.NetSalary)
}

func TestProrateDeterministic(t *testing.T) {
	totals := payroll.AttendanceTotals{PresentDays: 19, HalfDays: 3, OvertimeHours: 4}
	structure := testStructure()

	first, err := Prorate(structure, 27, totals)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Prorate(structure, 27, totals)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestProrateNetIdentity(t *testing.T) {
	tests := []struct {
		name        string
		workingDays int
		totals      payroll.AttendanceTotals
	}{
		{"full month", 26, payroll.AttendanceTotals{PresentDays: 26}},
		{"partial month", 26, payroll.AttendanceTotals{PresentDays: 17, HalfDays: 4}},
		{"with overtime", 25, payroll.AttendanceTotals{PresentDays: 20, HalfDays: 1, OvertimeHours: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp, err := Prorate(testStructure(), tt.workingDays, tt.totals)
			require.NoError(t, err)

			gross := comp.EarnedBasic.Add(comp.TotalAllowances).Add(comp.OvertimePay)
			assert.True(t, comp.GrossSalary.Equal(gross), "gross %s != sum %s", comp.GrossSalary, gross)
			assert.True(t, comp.NetSalary.Equal(comp.GrossSalary.Sub(comp.TotalDeductions)))
		})
	}
}

func TestProrateMonotonicInEffectiveDays(t *testing.T) {
	structure := testStructure()
	prev := decimal.NewFromInt(-1)

	for present := 0; present <= 26; present++ {
		comp, err := Prorate(structure, 26, payroll.AttendanceTotals{PresentDays: present})
		require.NoError(t, err)
		assert.True(t, comp.EarnedBasic.GreaterThanOrEqual(prev),
			"earned basic decreased at %d present days", present)
		prev = comp.EarnedBasic
	}
}

func TestProrateInvalidWorkingDays(t *testing.T) {
	_, err := Prorate(testStructure(), 0, payroll.AttendanceTotals{PresentDays: 1})
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)

	_, err = Prorate(testStructure(), -3, payroll.AttendanceTotals{PresentDays: 1})
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

// The pooled allowance total and the individually prorated display lines
// are allowed to disagree by rounding.
func TestProratePooledVersusLineRounding(t *testing.T) {
	structure := salary.SalaryStructure{
		BasicSalary:        dec(26000),
		HRA:                dec(1010),
		TransportAllowance: dec(1010),
		MedicalAllowance:   dec(1010),
		OtherAllowances:    dec(1010),
	}
	totals := payroll.AttendanceTotals{PresentDays: 25}

	comp, err := Prorate(structure, 26, totals)
	require.NoError(t, err)

	// pooled: 4040 / 26 * 25 = 3884.6... -> 3885
	assert.True(t, comp.TotalAllowances.Equal(dec(3885)), "pooled = %s", comp.TotalAllowances)

	// each line: 1010 / 26 * 25 = 971.15... -> 971; four lines sum to 3884
	line := prorateLine(dec(1010), 26, comp.EffectiveDays)
	assert.True(t, line.Equal(dec(971)), "line = %s", line)
	lineSum := line.Mul(dec(4))
	assert.True(t, lineSum.Equal(dec(3884)))
	assert.False(t, lineSum.Equal(comp.TotalAllowances))
}
