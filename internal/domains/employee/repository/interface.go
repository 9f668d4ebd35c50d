package repository

import (
	"context"

	"hrms-backend/internal/domains/employee/model"
)

type Repository interface {
	// Create inserts a new employee. Returns model.ErrDuplicateEmployeeID
	// or model.ErrDuplicateEmail when a uniqueness check fails; the id is
	// checked before the email.
	Create(ctx context.Context, emp *model.Employee) error

	// GetByID returns model.ErrEmployeeNotFound when the id is unknown.
	GetByID(ctx context.Context, employeeID string) (*model.Employee, error)

	// Exists reports whether an employee with the given id is stored.
	Exists(ctx context.Context, employeeID string) (bool, error)

	// List returns employees matching the filter, ordered by full name.
	List(ctx context.Context, filter model.ListEmployeeFilter) ([]model.Employee, error)

	// Delete removes the employee; attendance rows cascade. Returns
	// model.ErrEmployeeNotFound when the id is unknown.
	Delete(ctx context.Context, employeeID string) error

	// ListDepartments returns the distinct departments, sorted ascending.
	ListDepartments(ctx context.Context) ([]string, error)

	// CountEmployees returns the total number of employees.
	CountEmployees(ctx context.Context) (int, error)

	// CountDepartments returns the number of distinct departments.
	CountDepartments(ctx context.Context) (int, error)
}
