package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	attendancemodel "hrms-backend/internal/domains/attendance/model"
)

// CreateEmployeeRequest carries the payload for POST /api/employees.
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (r CreateEmployeeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EmployeeID,
			validation.Required.Error("employee_id is required"),
			validation.Length(1, 50),
		),
		validation.Field(&r.FullName,
			validation.Required.Error("full_name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Department,
			validation.Required.Error("department is required"),
			validation.Length(1, 100),
		),
	)
}

// ToEntity converts a validated request into an Employee.
func (r CreateEmployeeRequest) ToEntity() *Employee {
	return &Employee{
		EmployeeID: r.EmployeeID,
		FullName:   r.FullName,
		Email:      r.Email,
		Department: r.Department,
	}
}

// ListEmployeesRequest carries the query-string filters.
type ListEmployeesRequest struct {
	Department string `form:"department"`
	Search     string `form:"search"`
}

func (r ListEmployeesRequest) ToFilter() ListEmployeeFilter {
	return ListEmployeeFilter{
		Department: r.Department,
		Search:     r.Search,
	}
}

// EmployeeDTO is the wire shape of an employee.
type EmployeeDTO struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (e *Employee) ToDTO() EmployeeDTO {
	return EmployeeDTO{
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
	}
}

// EmployeeWithAttendanceDTO is the detail view: the employee, their
// attendance records newest first, and the attendance summary.
type EmployeeWithAttendanceDTO struct {
	EmployeeID        string                          `json:"employee_id"`
	FullName          string                          `json:"full_name"`
	Email             string                          `json:"email"`
	Department        string                          `json:"department"`
	AttendanceRecords []attendancemodel.AttendanceDTO `json:"attendance_records"`
	TotalPresent      int                             `json:"total_present"`
	TotalAbsent       int                             `json:"total_absent"`
	TotalRecords      int                             `json:"total_records"`
	AttendanceRate    float64                         `json:"attendance_rate"`
}
