package postgresql

import (
	"context"
	"fmt"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/salary"
	"github.com/autotrack-hq/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

const salaryColumns = `id, employee_id, basic_salary, hra, transport_allowance, medical_allowance,
	other_allowances, pf_deduction, tax_deduction, other_deductions, overtime_rate,
	effective_from, created_at, updated_at`

func scanSalaryStructure(row pgx.Row) (salary.SalaryStructure, error) {
	var s salary.SalaryStructure
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.BasicSalary, &s.HRA, &s.TransportAllowance, &s.MedicalAllowance,
		&s.OtherAllowances, &s.PFDeduction, &s.TaxDeduction, &s.OtherDeductions, &s.OvertimeRate,
		&s.EffectiveFrom, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *salaryRepository) GetCurrentByEmployeeID(ctx context.Context, employeeID string) (salary.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	// Latest structure wins; older rows are kept for history only.
	query := `
		SELECT ` + salaryColumns + `
		FROM salary_structures
		WHERE employee_id = $1
		ORDER BY effective_from DESC
		LIMIT 1`

	s, err := scanSalaryStructure(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.SalaryStructure{}, salary.ErrSalaryStructureNotFound
		}
		return salary.SalaryStructure{}, fmt.Errorf("failed to get salary structure: %w", err)
	}
	return s, nil
}

func (r *salaryRepository) Create(ctx context.Context, structure salary.SalaryStructure) (salary.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	if structure.ID == "" {
		structure.ID = uuid.NewString()
	}

	query := `
		INSERT INTO salary_structures (
			id, employee_id, basic_salary, hra, transport_allowance, medical_allowance,
			other_allowances, pf_deduction, tax_deduction, other_deductions, overtime_rate,
			effective_from
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + salaryColumns

	s, err := scanSalaryStructure(q.QueryRow(ctx, query,
		structure.ID, structure.EmployeeID, structure.BasicSalary, structure.HRA,
		structure.TransportAllowance, structure.MedicalAllowance, structure.OtherAllowances,
		structure.PFDeduction, structure.TaxDeduction, structure.OtherDeductions,
		structure.OvertimeRate, structure.EffectiveFrom,
	))
	if err != nil {
		return salary.SalaryStructure{}, fmt.Errorf("failed to create salary structure: %w", err)
	}
	return s, nil
}

func (r *salaryRepository) Update(ctx context.Context, structure salary.SalaryStructure) (salary.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_structures SET
			basic_salary = $2,
			hra = $3,
			transport_allowance = $4,
			medical_allowance = $5,
			other_allowances = $6,
			pf_deduction = $7,
			tax_deduction = $8,
			other_deductions = $9,
			overtime_rate = $10,
			effective_from = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + salaryColumns

	s, err := scanSalaryStructure(q.QueryRow(ctx, query,
		structure.ID, structure.BasicSalary, structure.HRA, structure.TransportAllowance,
		structure.MedicalAllowance, structure.OtherAllowances, structure.PFDeduction,
		structure.TaxDeduction, structure.OtherDeductions, structure.OvertimeRate,
		structure.EffectiveFrom,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.SalaryStructure{}, salary.ErrSalaryStructureNotFound
		}
		return salary.SalaryStructure{}, fmt.Errorf("failed to update salary structure: %w", err)
	}
	return s, nil
}
