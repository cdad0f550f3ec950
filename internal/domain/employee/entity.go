package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	EmployeeCode string
	Name         string
	Role         string
	Department   *string
	JoinDate     *time.Time
	SalaryType   SalaryType
	BaseSalary   decimal.Decimal
	Status       Status
	Phone        *string
	Email        *string
	Address      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SalaryType string

const (
	SalaryTypeMonthly SalaryType = "Monthly"
	SalaryTypeDaily   SalaryType = "Daily"
	SalaryTypeHourly  SalaryType = "Hourly"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusOnLeave  Status = "On Leave"
)
