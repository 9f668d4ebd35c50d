package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"hrms-backend/internal/config"
	infraCache "hrms-backend/internal/infrastructure/cache"
	"hrms-backend/internal/infrastructure/database"
	"hrms-backend/pkg/cache"

	attendanceHandler "hrms-backend/internal/domains/attendance/handler"
	attendanceRepo "hrms-backend/internal/domains/attendance/repository"
	attendanceService "hrms-backend/internal/domains/attendance/service"
	dashboardHandler "hrms-backend/internal/domains/dashboard/handler"
	dashboardService "hrms-backend/internal/domains/dashboard/service"
	employeeHandler "hrms-backend/internal/domains/employee/handler"
	employeeRepo "hrms-backend/internal/domains/employee/repository"
	employeeService "hrms-backend/internal/domains/employee/service"
)

// Container holds the application's dependency graph, built in order:
// config, infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	EmployeeRepo   employeeRepo.Repository
	AttendanceRepo attendanceRepo.Repository

	EmployeeService   employeeService.Service
	AttendanceService attendanceService.Service
	DashboardService  dashboardService.Service

	EmployeeHandler   *employeeHandler.Handler
	AttendanceHandler *attendanceHandler.Handler
	DashboardHandler  *dashboardHandler.Handler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.InitSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	c.DB = db

	// Redis is non-critical: a failed connection degrades the dashboard
	// to direct database queries.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Connect(context.Background()); err != nil {
		log.Printf("[REDIS] Connection failed (non-critical): %v", err)
	}
	c.Cache = redisCache

	c.EmployeeRepo = employeeRepo.NewRepository(db.Pool)
	c.AttendanceRepo = attendanceRepo.NewRepository(db.Pool)

	c.EmployeeService = employeeService.NewService(c.EmployeeRepo, c.AttendanceRepo, c.Cache)
	c.AttendanceService = attendanceService.NewService(c.AttendanceRepo, c.EmployeeRepo, c.Cache)
	c.DashboardService = dashboardService.NewService(c.EmployeeRepo, c.AttendanceRepo, c.Cache)

	c.EmployeeHandler = employeeHandler.NewHandler(c.EmployeeService)
	c.AttendanceHandler = attendanceHandler.NewHandler(c.AttendanceService)
	c.DashboardHandler = dashboardHandler.NewHandler(c.DashboardService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("[REDIS] Close failed: %v", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
