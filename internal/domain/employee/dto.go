package employee

import "github.com/shopspring/decimal"

type EmployeeResponse struct {
	ID           string          `json:"id"`
	EmployeeCode string          `json:"employee_code"`
	Name         string          `json:"name"`
	Role         string          `json:"role"`
	Department   *string         `json:"department,omitempty"`
	JoinDate     *string         `json:"join_date,omitempty"`
	SalaryType   string          `json:"salary_type"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Status       string          `json:"status"`
	Phone        *string         `json:"phone,omitempty"`
	Email        *string         `json:"email,omitempty"`
	Address      *string         `json:"address,omitempty"`
}
