package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatsCacheKey is where the dashboard snapshot lives in the cache.
// Every employee or attendance write invalidates it.
const StatsCacheKey = "dashboard:stats"

// StatsCacheTTL bounds staleness when an invalidation is missed.
const StatsCacheTTL = 30 * time.Second

// DashboardStats is the organization-wide snapshot as of today.
// AttendanceRate is today_present / total_employees * 100 rounded to
// 1 decimal place, 0 when there are no employees.
type DashboardStats struct {
	TotalEmployees   int     `json:"total_employees"`
	TotalDepartments int     `json:"total_departments"`
	TodayPresent     int     `json:"today_present"`
	TodayAbsent      int     `json:"today_absent"`
	AttendanceRate   float64 `json:"attendance_rate"`
}

// AttendanceRate derives the dashboard rate, rounded to 1 decimal
// place. The per-employee summary rounds to 2; do not unify the two.
func AttendanceRate(todayPresent, totalEmployees int) float64 {
	if totalEmployees == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(todayPresent)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(totalEmployees))).
		Round(1).
		InexactFloat64()
}
