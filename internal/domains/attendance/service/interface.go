package service

import (
	"context"

	"hrms-backend/internal/domains/attendance/model"
)

type Service interface {
	// Mark records or overwrites the status for (employee, date).
	Mark(ctx context.Context, req model.MarkAttendanceRequest) (*model.AttendanceDTO, error)
	List(ctx context.Context, filter model.ListAttendanceFilter) ([]model.AttendanceWithEmployeeDTO, error)
	Delete(ctx context.Context, attendanceID string) error
}
