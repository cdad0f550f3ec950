package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/attendance"
	"github.com/autotrack-hq/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance (
			id, employee_id, date, status, check_in, check_out, overtime_hours, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, date, status, check_in, check_out, overtime_hours, notes, created_at`

	var created attendance.AttendanceRecord
	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Date, record.Status,
		record.CheckIn, record.CheckOut, record.OvertimeHours, record.Notes,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.Status,
		&created.CheckIn, &created.CheckOut, &created.OvertimeHours, &created.Notes,
		&created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.AttendanceRecord{}, attendance.ErrDuplicateDate
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return created, nil
}

func (r *attendanceRepository) ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, check_in, check_out, overtime_hours, notes, created_at
		FROM attendance
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM date) = $2
		  AND EXTRACT(YEAR FROM date) = $3
		ORDER BY date`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status,
			&rec.CheckIn, &rec.CheckOut, &rec.OvertimeHours, &rec.Notes, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.check_in, a.check_out,
		       a.overtime_hours, a.notes, a.created_at, e.name, e.employee_code
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE 1=1`

	var args []any
	argPos := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND a.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Month != nil {
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM a.date) = $%d", argPos)
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.Year != nil {
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM a.date) = $%d", argPos)
		args = append(args, *filter.Year)
		argPos++
	}

	query += " ORDER BY a.date DESC LIMIT 500"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status,
			&rec.CheckIn, &rec.CheckOut, &rec.OvertimeHours, &rec.Notes, &rec.CreatedAt,
			&rec.EmployeeName, &rec.EmployeeCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
