package employee

import (
	"context"
	"errors"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type EmployeeService interface {
	List(ctx context.Context) ([]employee.EmployeeResponse, error)
	// GetByID accepts the internal id or the employee code.
	GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error)
}

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, mapToResponse(e))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	// Only uuid-shaped keys can be queried against the uuid id column;
	// anything else is treated as an employee code.
	if _, parseErr := uuid.Parse(id); parseErr == nil {
		emp, err := s.employeeRepo.GetByID(ctx, id)
		if err == nil {
			return mapToResponse(emp), nil
		}
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
	}

	emp, err := s.employeeRepo.GetByEmployeeCode(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToResponse(emp), nil
}

func mapToResponse(e employee.Employee) employee.EmployeeResponse {
	var joinDate *string
	if e.JoinDate != nil {
		formatted := e.JoinDate.Format("2006-01-02")
		joinDate = &formatted
	}

	return employee.EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		Name:         e.Name,
		Role:         e.Role,
		Department:   e.Department,
		JoinDate:     joinDate,
		SalaryType:   string(e.SalaryType),
		BaseSalary:   e.BaseSalary,
		Status:       string(e.Status),
		Phone:        e.Phone,
		Email:        e.Email,
		Address:      e.Address,
	}
}
