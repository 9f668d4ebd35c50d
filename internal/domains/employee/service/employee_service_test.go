package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendancemodel "hrms-backend/internal/domains/attendance/model"
	dashboardModel "hrms-backend/internal/domains/dashboard/model"
	"hrms-backend/internal/domains/employee/model"
)

// in-memory fakes; the employee fake mirrors the storage layer's
// cascade by dropping attendance rows with their employee.

type fakeAttendanceRepo struct {
	records map[string]attendancemodel.AttendanceRecord
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[string]attendancemodel.AttendanceRecord{}}
}

func (r *fakeAttendanceRepo) add(employeeID string, date time.Time, status attendancemodel.Status) {
	id := attendancemodel.DayKey(employeeID, date)
	r.records[id] = attendancemodel.AttendanceRecord{
		ID:         id,
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	}
}

func (r *fakeAttendanceRepo) Upsert(_ context.Context, record *attendancemodel.AttendanceRecord) (*attendancemodel.AttendanceRecord, error) {
	r.records[record.ID] = *record
	stored := *record
	return &stored, nil
}

func (r *fakeAttendanceRepo) List(_ context.Context, _ attendancemodel.ListAttendanceFilter) ([]attendancemodel.AttendanceWithEmployee, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string) ([]attendancemodel.AttendanceRecord, error) {
	result := []attendancemodel.AttendanceRecord{}
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID {
			result = append(result, rec)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (r *fakeAttendanceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.records[id]; !ok {
		return attendancemodel.ErrAttendanceNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakeAttendanceRepo) CountStatusOnDate(_ context.Context, _ time.Time) (int, int, error) {
	return 0, 0, nil
}

type fakeEmployeeRepo struct {
	employees  map[string]model.Employee
	attendance *fakeAttendanceRepo
}

func newFakeEmployeeRepo(attendance *fakeAttendanceRepo) *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees:  map[string]model.Employee{},
		attendance: attendance,
	}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp *model.Employee) error {
	if _, ok := r.employees[emp.EmployeeID]; ok {
		return model.ErrDuplicateEmployeeID
	}
	for _, existing := range r.employees {
		if existing.Email == emp.Email {
			return model.ErrDuplicateEmail
		}
	}
	r.employees[emp.EmployeeID] = *emp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return nil, model.ErrEmployeeNotFound
	}
	return &emp, nil
}

func (r *fakeEmployeeRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.employees[id]
	return ok, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, filter model.ListEmployeeFilter) ([]model.Employee, error) {
	result := []model.Employee{}
	for _, emp := range r.employees {
		if filter.Department != "" && emp.Department != filter.Department {
			continue
		}
		result = append(result, emp)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].FullName < result[j].FullName
	})
	return result, nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return model.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	for recID, rec := range r.attendance.records {
		if rec.EmployeeID == id {
			delete(r.attendance.records, recID)
		}
	}
	return nil
}

func (r *fakeEmployeeRepo) ListDepartments(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	result := []string{}
	for _, emp := range r.employees {
		if !seen[emp.Department] {
			seen[emp.Department] = true
			result = append(result, emp.Department)
		}
	}
	sort.Strings(result)
	return result, nil
}

func (r *fakeEmployeeRepo) CountEmployees(_ context.Context) (int, error) {
	return len(r.employees), nil
}

func (r *fakeEmployeeRepo) CountDepartments(_ context.Context) (int, error) {
	depts, _ := r.ListDepartments(context.Background())
	return len(depts), nil
}

type fakeCache struct {
	deleted []string
}

func (c *fakeCache) Get(_ context.Context, _ string, _ interface{}) (bool, error) {
	return false, nil
}

func (c *fakeCache) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	return nil
}

func (c *fakeCache) Ping(_ context.Context) error { return nil }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService() (Service, *fakeEmployeeRepo, *fakeAttendanceRepo, *fakeCache) {
	attendance := newFakeAttendanceRepo()
	employees := newFakeEmployeeRepo(attendance)
	c := &fakeCache{}
	return NewService(employees, attendance, c), employees, attendance, c
}

var johnDoe = model.CreateEmployeeRequest{
	EmployeeID: "EMP001",
	FullName:   "John Doe",
	Email:      "john@example.com",
	Department: "Engineering",
}

// tests

func TestCreateEmployee(t *testing.T) {
	svc, _, _, c := newTestService()

	dto, err := svc.Create(context.Background(), johnDoe)
	require.NoError(t, err)

	assert.Equal(t, "EMP001", dto.EmployeeID)
	assert.Contains(t, c.deleted, dashboardModel.StatsCacheKey)
}

func TestCreateDuplicateEmployeeID(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), johnDoe)
	require.NoError(t, err)

	dup := johnDoe
	dup.Email = "jane@example.com"
	_, err = svc.Create(context.Background(), dup)
	assert.ErrorIs(t, err, model.ErrDuplicateEmployeeID)
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), johnDoe)
	require.NoError(t, err)

	dup := johnDoe
	dup.EmployeeID = "EMP002"
	_, err = svc.Create(context.Background(), dup)
	assert.ErrorIs(t, err, model.ErrDuplicateEmail)
}

func TestGetUnknownEmployee(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Get(context.Background(), "NONEXISTENT")
	assert.ErrorIs(t, err, model.ErrEmployeeNotFound)
}

func TestGetEmployeeWithAttendanceSummary(t *testing.T) {
	svc, _, attendance, _ := newTestService()

	_, err := svc.Create(context.Background(), johnDoe)
	require.NoError(t, err)

	attendance.add("EMP001", date(2026, 2, 2), attendancemodel.StatusPresent)
	attendance.add("EMP001", date(2026, 2, 3), attendancemodel.StatusAbsent)
	attendance.add("EMP001", date(2026, 2, 4), attendancemodel.StatusPresent)

	emp, err := svc.Get(context.Background(), "EMP001")
	require.NoError(t, err)

	assert.Equal(t, 2, emp.TotalPresent)
	assert.Equal(t, 1, emp.TotalAbsent)
	assert.Equal(t, 3, emp.TotalRecords)
	assert.Equal(t, 66.67, emp.AttendanceRate)

	require.Len(t, emp.AttendanceRecords, 3)
	assert.Equal(t, "2026-02-04", emp.AttendanceRecords[0].Date, "records are newest first")
}

func TestDeleteEmployeeCascades(t *testing.T) {
	svc, _, attendance, c := newTestService()

	_, err := svc.Create(context.Background(), johnDoe)
	require.NoError(t, err)
	attendance.add("EMP001", date(2026, 2, 2), attendancemodel.StatusPresent)

	err = svc.Delete(context.Background(), "EMP001")
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "EMP001")
	assert.ErrorIs(t, err, model.ErrEmployeeNotFound)
	assert.Empty(t, attendance.records, "attendance rows go with their employee")
	assert.Contains(t, c.deleted, dashboardModel.StatsCacheKey)
}

func TestDeleteUnknownEmployee(t *testing.T) {
	svc, _, _, _ := newTestService()

	err := svc.Delete(context.Background(), "NONEXISTENT")
	assert.ErrorIs(t, err, model.ErrEmployeeNotFound)
}

func TestListDepartments(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), johnDoe)
	require.NoError(t, err)

	jane := model.CreateEmployeeRequest{
		EmployeeID: "EMP002",
		FullName:   "Jane Smith",
		Email:      "jane@example.com",
		Department: "Accounting",
	}
	_, err = svc.Create(context.Background(), jane)
	require.NoError(t, err)

	depts, err := svc.ListDepartments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Accounting", "Engineering"}, depts)
}
