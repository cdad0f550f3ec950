package postgresql

import (
	"context"
	"fmt"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/payroll"
	"github.com/autotrack-hq/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `id, employee_id, month, year, working_days, present_days, overtime_hours,
	basic_salary, total_allowances, total_deductions, overtime_pay, gross_salary, net_salary,
	status, generated_at`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var p payroll.PayrollRecord
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.WorkingDays, &p.EffectiveDays, &p.OvertimeHours,
		&p.BasicSalary, &p.TotalAllowances, &p.TotalDeductions, &p.OvertimePay, &p.GrossSalary,
		&p.NetSalary, &p.Status, &p.GeneratedAt,
	)
	return p, err
}

// Upsert writes the computed record for (employee_id, month, year),
// replacing the previous computation in place when one exists.
func (r *payrollRepository) Upsert(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO payroll (
			id, employee_id, month, year, working_days, present_days, overtime_hours,
			basic_salary, total_allowances, total_deductions, overtime_pay, gross_salary,
			net_salary, status, generated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			working_days = EXCLUDED.working_days,
			present_days = EXCLUDED.present_days,
			overtime_hours = EXCLUDED.overtime_hours,
			basic_salary = EXCLUDED.basic_salary,
			total_allowances = EXCLUDED.total_allowances,
			total_deductions = EXCLUDED.total_deductions,
			overtime_pay = EXCLUDED.overtime_pay,
			gross_salary = EXCLUDED.gross_salary,
			net_salary = EXCLUDED.net_salary,
			status = EXCLUDED.status,
			generated_at = EXCLUDED.generated_at
		RETURNING ` + payrollColumns

	p, err := scanPayrollRecord(q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Month, record.Year, record.WorkingDays,
		record.EffectiveDays, record.OvertimeHours, record.BasicSalary, record.TotalAllowances,
		record.TotalDeductions, record.OvertimePay, record.GrossSalary, record.NetSalary,
		record.Status, record.GeneratedAt,
	))
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to upsert payroll record: %w", err)
	}
	return p, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll
		WHERE employee_id = $1 AND month = $2 AND year = $3`

	p, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return p, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.month, p.year, p.working_days, p.present_days,
		       p.overtime_hours, p.basic_salary, p.total_allowances, p.total_deductions,
		       p.overtime_pay, p.gross_salary, p.net_salary, p.status, p.generated_at,
		       e.name, e.employee_code
		FROM payroll p
		JOIN employees e ON e.id = p.employee_id
		WHERE 1=1`

	var args []any
	argPos := 1

	if filter.Month != nil {
		query += fmt.Sprintf(" AND p.month = $%d", argPos)
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.Year != nil {
		query += fmt.Sprintf(" AND p.year = $%d", argPos)
		args = append(args, *filter.Year)
		argPos++
	}

	query += " ORDER BY p.generated_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var p payroll.PayrollRecord
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.WorkingDays, &p.EffectiveDays,
			&p.OvertimeHours, &p.BasicSalary, &p.TotalAllowances, &p.TotalDeductions,
			&p.OvertimePay, &p.GrossSalary, &p.NetSalary, &p.Status, &p.GeneratedAt,
			&p.EmployeeName, &p.EmployeeCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}
	return records, rows.Err()
}
