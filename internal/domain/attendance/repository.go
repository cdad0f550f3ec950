package attendance

import "context"

type AttendanceRepository interface {
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)
	// ListByEmployeePeriod returns every attendance row for the employee
	// whose date falls inside the given month/year.
	ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]AttendanceRecord, error)
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceRecord, error)
}
