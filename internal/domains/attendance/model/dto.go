package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MarkAttendanceRequest records an employee's status for one day.
// Marking the same employee and date again overwrites the status.
type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r MarkAttendanceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EmployeeID,
			validation.Required.Error("employee_id is required"),
			validation.Length(1, 50),
		),
		validation.Field(&r.Date,
			validation.Required.Error("date is required"),
			validation.Date(DateLayout).Error("date must be in YYYY-MM-DD format"),
		),
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(string(StatusPresent), string(StatusAbsent)).
				Error("status must be Present or Absent"),
		),
	)
}

// ParsedDate returns the request date as a time.Time. Call after Validate.
func (r MarkAttendanceRequest) ParsedDate() (time.Time, error) {
	return time.Parse(DateLayout, r.Date)
}

// ListAttendanceRequest carries the query-string filters.
type ListAttendanceRequest struct {
	EmployeeID string `form:"employee_id"`
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
	Status     string `form:"status"`
}

func (r ListAttendanceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DateFrom,
			validation.Date(DateLayout).Error("date_from must be in YYYY-MM-DD format"),
		),
		validation.Field(&r.DateTo,
			validation.Date(DateLayout).Error("date_to must be in YYYY-MM-DD format"),
		),
		validation.Field(&r.Status,
			validation.In(string(StatusPresent), string(StatusAbsent)).
				Error("status must be Present or Absent"),
		),
	)
}

// ToFilter converts the request into a repository filter. Call after
// Validate; unset fields stay zero.
func (r ListAttendanceRequest) ToFilter() (ListAttendanceFilter, error) {
	filter := ListAttendanceFilter{
		EmployeeID: r.EmployeeID,
		Status:     Status(r.Status),
	}

	if r.DateFrom != "" {
		from, err := time.Parse(DateLayout, r.DateFrom)
		if err != nil {
			return filter, err
		}
		filter.DateFrom = &from
	}

	if r.DateTo != "" {
		to, err := time.Parse(DateLayout, r.DateTo)
		if err != nil {
			return filter, err
		}
		filter.DateTo = &to
	}

	return filter, nil
}

// AttendanceDTO is the wire shape of a record.
type AttendanceDTO struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
}

func (a *AttendanceRecord) ToDTO() AttendanceDTO {
	return AttendanceDTO{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format(DateLayout),
		Status:     a.Status,
	}
}

// AttendanceWithEmployeeDTO adds the employee's name for listing views.
type AttendanceWithEmployeeDTO struct {
	AttendanceDTO
	EmployeeName string `json:"employee_name"`
}

func (a *AttendanceWithEmployee) ToDTO() AttendanceWithEmployeeDTO {
	return AttendanceWithEmployeeDTO{
		AttendanceDTO: a.AttendanceRecord.ToDTO(),
		EmployeeName:  a.EmployeeName,
	}
}
