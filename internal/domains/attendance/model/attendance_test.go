package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayKey(t *testing.T) {
	d := date(2026, 2, 2)

	assert.Equal(t, "EMP001_2026-02-02", DayKey("EMP001", d))

	// Same calendar date with a different wall clock yields the same key.
	later := time.Date(2026, 2, 2, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, DayKey("EMP001", d), DayKey("EMP001", later))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPresent.Valid())
	assert.True(t, StatusAbsent.Valid())
	assert.False(t, Status("Late").Valid())
	assert.False(t, Status("").Valid())
}

func TestSummarize(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		s := Summarize(nil)
		assert.Equal(t, 0, s.TotalPresent)
		assert.Equal(t, 0, s.TotalAbsent)
		assert.Equal(t, 0, s.TotalRecords)
		assert.Equal(t, 0.0, s.AttendanceRate)
	})

	t.Run("rate is rounded to 2 decimal places", func(t *testing.T) {
		records := []AttendanceRecord{
			{Status: StatusPresent},
			{Status: StatusAbsent},
			{Status: StatusAbsent},
		}

		s := Summarize(records)
		assert.Equal(t, 1, s.TotalPresent)
		assert.Equal(t, 2, s.TotalAbsent)
		assert.Equal(t, 3, s.TotalRecords)
		assert.Equal(t, 33.33, s.AttendanceRate)
	})

	t.Run("all present", func(t *testing.T) {
		records := []AttendanceRecord{
			{Status: StatusPresent},
			{Status: StatusPresent},
		}

		s := Summarize(records)
		assert.Equal(t, 100.0, s.AttendanceRate)
	})
}

func TestMarkAttendanceRequestValidate(t *testing.T) {
	valid := MarkAttendanceRequest{
		EmployeeID: "EMP001",
		Date:       "2026-02-02",
		Status:     "Present",
	}

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("missing employee_id", func(t *testing.T) {
		req := valid
		req.EmployeeID = ""
		assert.Error(t, req.Validate())
	})

	t.Run("malformed date", func(t *testing.T) {
		req := valid
		req.Date = "02/02/2026"
		assert.Error(t, req.Validate())
	})

	t.Run("unknown status", func(t *testing.T) {
		req := valid
		req.Status = "Late"
		assert.Error(t, req.Validate())
	})
}

func TestMarkAttendanceRequestParsedDate(t *testing.T) {
	req := MarkAttendanceRequest{Date: "2026-02-02"}

	d, err := req.ParsedDate()
	require.NoError(t, err)
	assert.Equal(t, date(2026, 2, 2), d)
}

func TestListAttendanceRequestToFilter(t *testing.T) {
	req := ListAttendanceRequest{
		EmployeeID: "EMP001",
		DateFrom:   "2026-01-01",
		DateTo:     "2026-01-31",
		Status:     "Absent",
	}
	require.NoError(t, req.Validate())

	filter, err := req.ToFilter()
	require.NoError(t, err)

	assert.Equal(t, "EMP001", filter.EmployeeID)
	require.NotNil(t, filter.DateFrom)
	require.NotNil(t, filter.DateTo)
	assert.Equal(t, date(2026, 1, 1), *filter.DateFrom)
	assert.Equal(t, date(2026, 1, 31), *filter.DateTo)
	assert.Equal(t, StatusAbsent, filter.Status)
}

func TestListAttendanceRequestToFilterEmpty(t *testing.T) {
	filter, err := ListAttendanceRequest{}.ToFilter()
	require.NoError(t, err)

	assert.Empty(t, filter.EmployeeID)
	assert.Nil(t, filter.DateFrom)
	assert.Nil(t, filter.DateTo)
	assert.Empty(t, filter.Status)
}

func TestAttendanceRecordToDTO(t *testing.T) {
	rec := AttendanceRecord{
		ID:         "EMP001_2026-02-02",
		EmployeeID: "EMP001",
		Date:       date(2026, 2, 2),
		Status:     StatusPresent,
	}

	dto := rec.ToDTO()
	assert.Equal(t, "EMP001_2026-02-02", dto.ID)
	assert.Equal(t, "2026-02-02", dto.Date)
	assert.Equal(t, StatusPresent, dto.Status)
}
