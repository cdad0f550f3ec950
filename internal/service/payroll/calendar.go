package payroll

import (
	"time"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/autotrack-hq/payroll-backend-go/internal/pkg/validator"
)

// WorkingDays counts the paid working days in a month: every calendar day
// except Sundays. Holidays and per-employee schedules do not factor in.
// The result is at least 1 for any valid (month, year).
func WorkingDays(month, year int) (int, error) {
	if !validator.IsValidMonth(month) || !validator.IsValidYear(year) {
		return 0, payroll.ErrInvalidPeriod
	}

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	workingDays := 0
	for d := 1; d <= daysInMonth; d++ {
		if time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC).Weekday() != time.Sunday {
			workingDays++
		}
	}
	return workingDays, nil
}
