package payroll

import (
	"testing"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/attendance"
)

func TestSummarizeAttendance(t *testing.T) {
	records := []attendance.AttendanceRecord{
		{Status: attendance.StatusPresent, OvertimeHours: 2},
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusHalfDay, OvertimeHours: 1.5},
		{Status: attendance.StatusAbsent},
		{Status: attendance.StatusLeave},
	}

	totals := SummarizeAttendance(records)

	if totals.PresentDays != 2 {
		t.Errorf("PresentDays = %d, want 2", totals.PresentDays)
	}
	if totals.HalfDays != 1 {
		t.Errorf("HalfDays = %d, want 1", totals.HalfDays)
	}
	if totals.OvertimeHours != 3.5 {
		t.Errorf("OvertimeHours = %v, want 3.5", totals.OvertimeHours)
	}
}

// Overtime counts no matter which status the row carries, including rows
// that contribute nothing to the day counts.
func TestSummarizeAttendanceOvertimeAcrossStatuses(t *testing.T) {
	records := []attendance.AttendanceRecord{
		{Status: attendance.StatusAbsent, OvertimeHours: 4},
		{Status: attendance.StatusLeave, OvertimeHours: 2},
	}

	totals := SummarizeAttendance(records)

	if totals.PresentDays != 0 || totals.HalfDays != 0 {
		t.Errorf("day counts = %d/%d, want 0/0", totals.PresentDays, totals.HalfDays)
	}
	if totals.OvertimeHours != 6 {
		t.Errorf("OvertimeHours = %v, want 6", totals.OvertimeHours)
	}
}

func TestSummarizeAttendanceEmpty(t *testing.T) {
	totals := SummarizeAttendance(nil)
	if totals.PresentDays != 0 || totals.HalfDays != 0 || totals.OvertimeHours != 0 {
		t.Errorf("totals = %+v, want all zero", totals)
	}
}
