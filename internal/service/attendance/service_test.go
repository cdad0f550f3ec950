package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/attendance"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if e, ok := f.employees[id]; ok {
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmployeeCode(_ context.Context, code string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.EmployeeCode == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

type dateKey struct {
	employeeID string
	date       string
}

type fakeAttendanceRepo struct {
	records map[dateKey]attendance.AttendanceRecord
}

func (f *fakeAttendanceRepo) Create(_ context.Context, r attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	key := dateKey{r.EmployeeID, r.Date.Format("2006-01-02")}
	if _, ok := f.records[key]; ok {
		return attendance.AttendanceRecord{}, attendance.ErrDuplicateDate
	}
	r.ID = "att-1"
	f.records[key] = r
	return r, nil
}

func (f *fakeAttendanceRepo) ListByEmployeePeriod(_ context.Context, employeeID string, month, year int) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, r := range f.records {
		if r.EmployeeID == employeeID && int(r.Date.Month()) == month && r.Date.Year() == year {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, r := range f.records {
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func newTestService() (AttendanceService, *fakeAttendanceRepo) {
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", EmployeeCode: "EMP001", Name: "Test Employee"},
	}}
	records := &fakeAttendanceRepo{records: make(map[dateKey]attendance.AttendanceRecord)}
	return NewAttendanceService(records, employees), records
}

func TestCreate_DefaultsToPresent(t *testing.T) {
	service, _ := newTestService()

	resp, err := service.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.Equal(t, "2025-03-10", resp.Date)
}

func TestCreate_DuplicateDate(t *testing.T) {
	service, _ := newTestService()
	req := attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2025-03-10",
	}

	_, err := service.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Create(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrDuplicateDate)
}

func TestCreate_ValidationFailures(t *testing.T) {
	service, _ := newTestService()

	tests := []struct {
		name string
		req  attendance.CreateAttendanceRequest
	}{
		{"missing employee", attendance.CreateAttendanceRequest{Date: "2025-03-10"}},
		{"missing date", attendance.CreateAttendanceRequest{EmployeeID: "emp-1"}},
		{"bad date format", attendance.CreateAttendanceRequest{EmployeeID: "emp-1", Date: "10/03/2025"}},
		{"unknown status", attendance.CreateAttendanceRequest{EmployeeID: "emp-1", Date: "2025-03-10", Status: "Vacation"}},
		{"negative overtime", attendance.CreateAttendanceRequest{EmployeeID: "emp-1", Date: "2025-03-10", OvertimeHours: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestCreate_EmployeeNotFound(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID: "missing",
		Date:       "2025-03-10",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreate_WithOvertimeAndHalfDay(t *testing.T) {
	service, repo := newTestService()

	resp, err := service.Create(context.Background(), attendance.CreateAttendanceRequest{
		EmployeeID:    "emp-1",
		Date:          "2025-03-11",
		Status:        string(attendance.StatusHalfDay),
		OvertimeHours: 2.5,
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusHalfDay), resp.Status)
	assert.Equal(t, 2.5, resp.OvertimeHours)

	stored := repo.records[dateKey{"emp-1", "2025-03-11"}]
	assert.Equal(t, attendance.StatusHalfDay, stored.Status)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), stored.Date)
}
