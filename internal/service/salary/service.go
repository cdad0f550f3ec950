package salary

import (
	"context"
	"errors"
	"time"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/employee"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/salary"
	"github.com/autotrack-hq/payroll-backend-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
)

type SalaryService interface {
	// GetCurrent returns the employee's latest salary structure.
	GetCurrent(ctx context.Context, employeeID string) (salary.SalaryStructureResponse, error)
	// Upsert patches the employee's latest structure, or inserts the first
	// one seeded from the employee's base salary.
	Upsert(ctx context.Context, employeeID string, req salary.UpsertSalaryStructureRequest) (salary.SalaryStructureResponse, error)
}

type SalaryServiceImpl struct {
	salaryRepo   salary.SalaryRepository
	employeeRepo employee.EmployeeRepository
	clk          clock.Clock
}

func NewSalaryService(
	salaryRepo salary.SalaryRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) SalaryService {
	return &SalaryServiceImpl{
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
		clk:          clk,
	}
}

func (s *SalaryServiceImpl) GetCurrent(ctx context.Context, employeeID string) (salary.SalaryStructureResponse, error) {
	structure, err := s.salaryRepo.GetCurrentByEmployeeID(ctx, employeeID)
	if err != nil {
		return salary.SalaryStructureResponse{}, err
	}
	return mapToResponse(structure), nil
}

func (s *SalaryServiceImpl) Upsert(ctx context.Context, employeeID string, req salary.UpsertSalaryStructureRequest) (salary.SalaryStructureResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryStructureResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return salary.SalaryStructureResponse{}, err
	}

	current, err := s.salaryRepo.GetCurrentByEmployeeID(ctx, emp.ID)
	switch {
	case err == nil:
		applyPatch(&current, req)
		updated, err := s.salaryRepo.Update(ctx, current)
		if err != nil {
			return salary.SalaryStructureResponse{}, err
		}
		return mapToResponse(updated), nil

	case errors.Is(err, salary.ErrSalaryStructureNotFound):
		structure := salary.SalaryStructure{
			EmployeeID:    emp.ID,
			BasicSalary:   emp.BaseSalary,
			EffectiveFrom: s.clk.Now().Truncate(24 * time.Hour),
		}
		applyPatch(&structure, req)
		created, err := s.salaryRepo.Create(ctx, structure)
		if err != nil {
			return salary.SalaryStructureResponse{}, err
		}
		return mapToResponse(created), nil

	default:
		return salary.SalaryStructureResponse{}, err
	}
}

func applyPatch(structure *salary.SalaryStructure, req salary.UpsertSalaryStructureRequest) {
	setDecimal := func(dst *decimal.Decimal, src *decimal.Decimal) {
		if src != nil {
			*dst = *src
		}
	}
	setDecimal(&structure.BasicSalary, req.BasicSalary)
	setDecimal(&structure.HRA, req.HRA)
	setDecimal(&structure.TransportAllowance, req.TransportAllowance)
	setDecimal(&structure.MedicalAllowance, req.MedicalAllowance)
	setDecimal(&structure.OtherAllowances, req.OtherAllowances)
	setDecimal(&structure.PFDeduction, req.PFDeduction)
	setDecimal(&structure.TaxDeduction, req.TaxDeduction)
	setDecimal(&structure.OtherDeductions, req.OtherDeductions)
	setDecimal(&structure.OvertimeRate, req.OvertimeRate)

	if req.EffectiveFrom != nil {
		if t, err := time.Parse("2006-01-02", *req.EffectiveFrom); err == nil {
			structure.EffectiveFrom = t
		}
	}
}

func mapToResponse(s salary.SalaryStructure) salary.SalaryStructureResponse {
	return salary.SalaryStructureResponse{
		ID:                 s.ID,
		EmployeeID:         s.EmployeeID,
		BasicSalary:        s.BasicSalary,
		HRA:                s.HRA,
		TransportAllowance: s.TransportAllowance,
		MedicalAllowance:   s.MedicalAllowance,
		OtherAllowances:    s.OtherAllowances,
		PFDeduction:        s.PFDeduction,
		TaxDeduction:       s.TaxDeduction,
		OtherDeductions:    s.OtherDeductions,
		OvertimeRate:       s.OvertimeRate,
		EffectiveFrom:      s.EffectiveFrom.Format("2006-01-02"),
	}
}
