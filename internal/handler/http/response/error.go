package response

import (
	"errors"
	"net/http"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/attendance"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/auth"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/employee"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/salary"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/user"
	"github.com/autotrack-hq/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Salary and attendance errors
	case errors.Is(err, salary.ErrSalaryStructureNotFound):
		NotFound(w, "No salary structure found for this employee")
	case errors.Is(err, attendance.ErrDuplicateDate):
		Conflict(w, "Attendance already logged for this date")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNoSalaryStructure):
		BadRequest(w, "Salary structure not configured for this employee. Please set up salary structure first.", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
