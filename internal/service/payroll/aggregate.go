package payroll

import (
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/attendance"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/payroll"
)

// SummarizeAttendance reduces one employee's attendance rows for a period
// into the counts proration runs on. Overtime hours are summed across all
// rows regardless of status; whether overtime on a non-Present day should
// count is an open product question, so the long-standing behavior stands.
func SummarizeAttendance(records []attendance.AttendanceRecord) payroll.AttendanceTotals {
	var totals payroll.AttendanceTotals
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			totals.PresentDays++
		case attendance.StatusHalfDay:
			totals.HalfDays++
		}
		totals.OvertimeHours += rec.OvertimeHours
	}
	return totals
}
