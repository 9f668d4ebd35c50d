package service

import (
	"context"

	"github.com/rs/zerolog/log"

	attendanceRepo "hrms-backend/internal/domains/attendance/repository"
	dashboardModel "hrms-backend/internal/domains/dashboard/model"
	"hrms-backend/internal/domains/employee/model"
	"hrms-backend/internal/domains/employee/repository"
	"hrms-backend/pkg/cache"

	attendancemodel "hrms-backend/internal/domains/attendance/model"
)

type employeeService struct {
	repo           repository.Repository
	attendanceRepo attendanceRepo.Repository
	cache          cache.Cache
}

func NewService(repo repository.Repository, attendance attendanceRepo.Repository, c cache.Cache) Service {
	return &employeeService{
		repo:           repo,
		attendanceRepo: attendance,
		cache:          c,
	}
}

func (s *employeeService) Create(ctx context.Context, req model.CreateEmployeeRequest) (*model.EmployeeDTO, error) {
	emp := req.ToEntity()
	if err := s.repo.Create(ctx, emp); err != nil {
		return nil, err
	}

	s.invalidateDashboard(ctx)

	dto := emp.ToDTO()
	return &dto, nil
}

func (s *employeeService) Get(ctx context.Context, employeeID string) (*model.EmployeeWithAttendanceDTO, error) {
	emp, err := s.repo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	summary := attendancemodel.Summarize(records)

	recordDTOs := make([]attendancemodel.AttendanceDTO, 0, len(records))
	for i := range records {
		recordDTOs = append(recordDTOs, records[i].ToDTO())
	}

	return &model.EmployeeWithAttendanceDTO{
		EmployeeID:        emp.EmployeeID,
		FullName:          emp.FullName,
		Email:             emp.Email,
		Department:        emp.Department,
		AttendanceRecords: recordDTOs,
		TotalPresent:      summary.TotalPresent,
		TotalAbsent:       summary.TotalAbsent,
		TotalRecords:      summary.TotalRecords,
		AttendanceRate:    summary.AttendanceRate,
	}, nil
}

func (s *employeeService) List(ctx context.Context, filter model.ListEmployeeFilter) ([]model.EmployeeDTO, error) {
	employees, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.EmployeeDTO, 0, len(employees))
	for i := range employees {
		dtos = append(dtos, employees[i].ToDTO())
	}
	return dtos, nil
}

func (s *employeeService) Delete(ctx context.Context, employeeID string) error {
	if err := s.repo.Delete(ctx, employeeID); err != nil {
		return err
	}

	s.invalidateDashboard(ctx)
	return nil
}

func (s *employeeService) ListDepartments(ctx context.Context) ([]string, error) {
	return s.repo.ListDepartments(ctx)
}

// invalidateDashboard drops the cached dashboard snapshot after a
// write. Cache failures are non-critical.
func (s *employeeService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, dashboardModel.StatsCacheKey); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate dashboard cache")
	}
}
