package repository

import (
	"context"
	"time"

	"hrms-backend/internal/domains/attendance/model"
)

type Repository interface {
	// Upsert writes the record under its day key: the status is updated
	// in place when a row for (employee, date) already exists, inserted
	// otherwise. Returns the stored record.
	Upsert(ctx context.Context, record *model.AttendanceRecord) (*model.AttendanceRecord, error)

	// List returns records joined with the employee name, newest date
	// first, narrowed by the filter.
	List(ctx context.Context, filter model.ListAttendanceFilter) ([]model.AttendanceWithEmployee, error)

	// ListByEmployee returns an employee's records, newest date first.
	ListByEmployee(ctx context.Context, employeeID string) ([]model.AttendanceRecord, error)

	// Delete removes one record. Returns model.ErrAttendanceNotFound when
	// the id is unknown.
	Delete(ctx context.Context, attendanceID string) error

	// CountStatusOnDate returns the Present and Absent counts for a date.
	CountStatusOnDate(ctx context.Context, date time.Time) (present int, absent int, err error)
}
