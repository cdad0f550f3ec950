package attendance

import (
	"time"
)

type AttendanceRecord struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	Status        Status
	CheckIn       *string
	CheckOut      *string
	OvertimeHours float64
	Notes         *string
	CreatedAt     time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half Day"
	StatusLeave   Status = "Leave"
)

func ValidStatuses() []string {
	return []string{
		string(StatusPresent),
		string(StatusAbsent),
		string(StatusHalfDay),
		string(StatusLeave),
	}
}
