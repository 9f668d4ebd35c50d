package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hrms-backend/internal/domains/attendance/model"
	"hrms-backend/internal/domains/attendance/repository"
	dashboardModel "hrms-backend/internal/domains/dashboard/model"
	employeemodel "hrms-backend/internal/domains/employee/model"
	employeeRepo "hrms-backend/internal/domains/employee/repository"
	"hrms-backend/pkg/cache"
)

type attendanceService struct {
	repo         repository.Repository
	employeeRepo employeeRepo.Repository
	cache        cache.Cache
}

func NewService(repo repository.Repository, employees employeeRepo.Repository, c cache.Cache) Service {
	return &attendanceService{
		repo:         repo,
		employeeRepo: employees,
		cache:        c,
	}
}

func (s *attendanceService) Mark(ctx context.Context, req model.MarkAttendanceRequest) (*model.AttendanceDTO, error) {
	exists, err := s.employeeRepo.Exists(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, employeemodel.ErrEmployeeNotFound
	}

	date, err := req.ParsedDate()
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	record := &model.AttendanceRecord{
		ID:         model.DayKey(req.EmployeeID, date),
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     model.Status(req.Status),
	}

	stored, err := s.repo.Upsert(ctx, record)
	if err != nil {
		return nil, err
	}

	s.invalidateDashboard(ctx)

	dto := stored.ToDTO()
	return &dto, nil
}

func (s *attendanceService) List(ctx context.Context, filter model.ListAttendanceFilter) ([]model.AttendanceWithEmployeeDTO, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.AttendanceWithEmployeeDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, records[i].ToDTO())
	}
	return dtos, nil
}

func (s *attendanceService) Delete(ctx context.Context, attendanceID string) error {
	if err := s.repo.Delete(ctx, attendanceID); err != nil {
		return err
	}

	s.invalidateDashboard(ctx)
	return nil
}

func (s *attendanceService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, dashboardModel.StatsCacheKey); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate dashboard cache")
	}
}
