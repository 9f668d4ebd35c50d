package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	attendanceRepo "hrms-backend/internal/domains/attendance/repository"
	"hrms-backend/internal/domains/dashboard/model"
	employeeRepo "hrms-backend/internal/domains/employee/repository"
	"hrms-backend/pkg/cache"
)

type dashboardService struct {
	employeeRepo   employeeRepo.Repository
	attendanceRepo attendanceRepo.Repository
	cache          cache.Cache
	now            func() time.Time
}

func NewService(employees employeeRepo.Repository, attendance attendanceRepo.Repository, c cache.Cache) Service {
	return &dashboardService{
		employeeRepo:   employees,
		attendanceRepo: attendance,
		cache:          c,
		now:            time.Now,
	}
}

// NewServiceWithClock pins the clock, for tests.
func NewServiceWithClock(employees employeeRepo.Repository, attendance attendanceRepo.Repository, c cache.Cache, now func() time.Time) Service {
	return &dashboardService{
		employeeRepo:   employees,
		attendanceRepo: attendance,
		cache:          c,
		now:            now,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	if s.cache != nil {
		var cached model.DashboardStats
		found, err := s.cache.Get(ctx, model.StatsCacheKey, &cached)
		if err != nil {
			log.Warn().Err(err).Msg("dashboard cache read failed")
		} else if found {
			return &cached, nil
		}
	}

	totalEmployees, err := s.employeeRepo.CountEmployees(ctx)
	if err != nil {
		return nil, err
	}

	totalDepartments, err := s.employeeRepo.CountDepartments(ctx)
	if err != nil {
		return nil, err
	}

	today := s.today()
	present, absent, err := s.attendanceRepo.CountStatusOnDate(ctx, today)
	if err != nil {
		return nil, err
	}

	stats := &model.DashboardStats{
		TotalEmployees:   totalEmployees,
		TotalDepartments: totalDepartments,
		TodayPresent:     present,
		TodayAbsent:      absent,
		AttendanceRate:   model.AttendanceRate(present, totalEmployees),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, model.StatsCacheKey, stats, model.StatsCacheTTL); err != nil {
			log.Warn().Err(err).Msg("dashboard cache write failed")
		}
	}

	return stats, nil
}

func (s *dashboardService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
