package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendancemodel "hrms-backend/internal/domains/attendance/model"
	"hrms-backend/internal/domains/dashboard/model"
	employeemodel "hrms-backend/internal/domains/employee/model"
)

type fakeEmployeeRepo struct {
	employees   int
	departments int
}

func (r *fakeEmployeeRepo) Create(_ context.Context, _ *employeemodel.Employee) error { return nil }
func (r *fakeEmployeeRepo) GetByID(_ context.Context, _ string) (*employeemodel.Employee, error) {
	return nil, employeemodel.ErrEmployeeNotFound
}
func (r *fakeEmployeeRepo) Exists(_ context.Context, _ string) (bool, error) { return false, nil }
func (r *fakeEmployeeRepo) List(_ context.Context, _ employeemodel.ListEmployeeFilter) ([]employeemodel.Employee, error) {
	return nil, nil
}
func (r *fakeEmployeeRepo) Delete(_ context.Context, _ string) error           { return nil }
func (r *fakeEmployeeRepo) ListDepartments(_ context.Context) ([]string, error) { return nil, nil }
func (r *fakeEmployeeRepo) CountEmployees(_ context.Context) (int, error) {
	return r.employees, nil
}
func (r *fakeEmployeeRepo) CountDepartments(_ context.Context) (int, error) {
	return r.departments, nil
}

type fakeAttendanceRepo struct {
	// present/absent counts keyed by date string.
	present map[string]int
	absent  map[string]int
}

func (r *fakeAttendanceRepo) Upsert(_ context.Context, record *attendancemodel.AttendanceRecord) (*attendancemodel.AttendanceRecord, error) {
	return record, nil
}
func (r *fakeAttendanceRepo) List(_ context.Context, _ attendancemodel.ListAttendanceFilter) ([]attendancemodel.AttendanceWithEmployee, error) {
	return nil, nil
}
func (r *fakeAttendanceRepo) ListByEmployee(_ context.Context, _ string) ([]attendancemodel.AttendanceRecord, error) {
	return nil, nil
}
func (r *fakeAttendanceRepo) Delete(_ context.Context, _ string) error { return nil }
func (r *fakeAttendanceRepo) CountStatusOnDate(_ context.Context, date time.Time) (int, int, error) {
	key := date.Format(attendancemodel.DateLayout)
	return r.present[key], r.absent[key], nil
}

type fakeCache struct {
	stored *model.DashboardStats
	sets   int
	ttl    time.Duration
}

func (c *fakeCache) Get(_ context.Context, _ string, dest interface{}) (bool, error) {
	if c.stored == nil {
		return false, nil
	}
	*dest.(*model.DashboardStats) = *c.stored
	return true, nil
}

func (c *fakeCache) Set(_ context.Context, _ string, value interface{}, ttl time.Duration) error {
	stats := *value.(*model.DashboardStats)
	c.stored = &stats
	c.sets++
	c.ttl = ttl
	return nil
}

func (c *fakeCache) Delete(_ context.Context, _ ...string) error { return nil }
func (c *fakeCache) Ping(_ context.Context) error                { return nil }

func fixedClock() time.Time {
	return time.Date(2026, 2, 2, 14, 30, 0, 0, time.UTC)
}

func TestStats(t *testing.T) {
	employees := &fakeEmployeeRepo{employees: 3, departments: 2}
	attendance := &fakeAttendanceRepo{
		present: map[string]int{"2026-02-02": 2, "2026-02-01": 3},
		absent:  map[string]int{"2026-02-02": 1},
	}
	c := &fakeCache{}
	svc := NewServiceWithClock(employees, attendance, c, fixedClock)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalEmployees)
	assert.Equal(t, 2, stats.TotalDepartments)
	assert.Equal(t, 2, stats.TodayPresent, "yesterday's rows do not count")
	assert.Equal(t, 1, stats.TodayAbsent)
	assert.Equal(t, 66.7, stats.AttendanceRate)
}

func TestStatsNoEmployees(t *testing.T) {
	svc := NewServiceWithClock(&fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakeCache{}, fixedClock)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalEmployees)
	assert.Equal(t, float64(0), stats.AttendanceRate)
}

func TestStatsWritesCache(t *testing.T) {
	c := &fakeCache{}
	svc := NewServiceWithClock(&fakeEmployeeRepo{employees: 5}, &fakeAttendanceRepo{}, c, fixedClock)

	_, err := svc.Stats(context.Background())
	require.NoError(t, err)

	require.NotNil(t, c.stored)
	assert.Equal(t, 5, c.stored.TotalEmployees)
	assert.Equal(t, model.StatsCacheTTL, c.ttl)
}

func TestStatsServedFromCache(t *testing.T) {
	c := &fakeCache{stored: &model.DashboardStats{TotalEmployees: 42, AttendanceRate: 50.0}}
	svc := NewServiceWithClock(&fakeEmployeeRepo{employees: 1}, &fakeAttendanceRepo{}, c, fixedClock)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 42, stats.TotalEmployees, "cached snapshot wins over the store")
	assert.Equal(t, 0, c.sets)
}

func TestStatsNilCache(t *testing.T) {
	svc := NewServiceWithClock(&fakeEmployeeRepo{employees: 1}, &fakeAttendanceRepo{}, nil, fixedClock)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalEmployees)
}
