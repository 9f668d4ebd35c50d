package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical calendar-date format. Day keys must be
// derived from this exact layout so equivalent dates never produce
// different ids.
const DateLayout = "2006-01-02"

// Status is the attendance state for one employee on one day.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// AttendanceRecord holds one employee's status for one calendar date.
// Its id is the day key, which makes (employee, date) naturally unique.
type AttendanceRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
}

// AttendanceWithEmployee is a record joined with the employee's name
// for listing views.
type AttendanceWithEmployee struct {
	AttendanceRecord
	EmployeeName string
}

// DayKey derives the deterministic record id for an employee and date.
func DayKey(employeeID string, date time.Time) string {
	return fmt.Sprintf("%s_%s", employeeID, date.Format(DateLayout))
}

// ListAttendanceFilter narrows the attendance listing. All set fields
// compose with AND; the date range is inclusive on both ends.
type ListAttendanceFilter struct {
	EmployeeID string
	DateFrom   *time.Time
	DateTo     *time.Time
	Status     Status
}

// Summary aggregates one employee's attendance collection.
type Summary struct {
	TotalPresent   int     `json:"total_present"`
	TotalAbsent    int     `json:"total_absent"`
	TotalRecords   int     `json:"total_records"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// Summarize counts Present and Absent entries and derives the rate as
// present/total*100 rounded to 2 decimal places, 0 when there are no
// records. The dashboard rate rounds to 1 decimal place instead; do not
// unify the two.
func Summarize(records []AttendanceRecord) Summary {
	s := Summary{TotalRecords: len(records)}
	for _, r := range records {
		switch r.Status {
		case StatusPresent:
			s.TotalPresent++
		case StatusAbsent:
			s.TotalAbsent++
		}
	}

	if s.TotalRecords > 0 {
		rate := decimal.NewFromInt(int64(s.TotalPresent)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(s.TotalRecords))).
			Round(2)
		s.AttendanceRate = rate.InexactFloat64()
	}

	return s
}
