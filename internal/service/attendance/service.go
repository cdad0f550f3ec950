package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/attendance"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/employee"
	"github.com/autotrack-hq/payroll-backend-go/internal/pkg/validator"
)

type AttendanceService interface {
	Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error)
	List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error)
}

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{
			{Field: "date", Message: "must be a date in YYYY-MM-DD format"},
		}
	}

	status := attendance.StatusPresent
	if req.Status != "" {
		status = attendance.Status(req.Status)
	}

	record := attendance.AttendanceRecord{
		EmployeeID:    emp.ID,
		Date:          date,
		Status:        status,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		OvertimeHours: req.OvertimeHours,
		Notes:         req.Notes,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateDate) {
			return attendance.AttendanceResponse{}, attendance.ErrDuplicateDate
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to log attendance: %w", err)
	}

	return mapToResponse(created), nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, mapToResponse(rec))
	}
	return result, nil
}

func mapToResponse(rec attendance.AttendanceRecord) attendance.AttendanceResponse {
	employeeName := ""
	employeeCode := ""
	if rec.EmployeeName != nil {
		employeeName = *rec.EmployeeName
	}
	if rec.EmployeeCode != nil {
		employeeCode = *rec.EmployeeCode
	}

	return attendance.AttendanceResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  employeeName,
		EmployeeCode:  employeeCode,
		Date:          rec.Date.Format("2006-01-02"),
		Status:        string(rec.Status),
		CheckIn:       rec.CheckIn,
		CheckOut:      rec.CheckOut,
		OvertimeHours: rec.OvertimeHours,
		Notes:         rec.Notes,
	}
}
