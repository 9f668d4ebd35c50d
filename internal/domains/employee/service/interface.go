package service

import (
	"context"

	"hrms-backend/internal/domains/employee/model"
)

type Service interface {
	Create(ctx context.Context, req model.CreateEmployeeRequest) (*model.EmployeeDTO, error)
	Get(ctx context.Context, employeeID string) (*model.EmployeeWithAttendanceDTO, error)
	List(ctx context.Context, filter model.ListEmployeeFilter) ([]model.EmployeeDTO, error)
	Delete(ctx context.Context, employeeID string) error
	ListDepartments(ctx context.Context) ([]string, error)
}
