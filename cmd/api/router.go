package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/shared/middleware"
	"hrms-backend/internal/shared/response"
	"hrms-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	router.GET("/health", healthCheckHandler(c))

	api := router.Group("/api")
	{
		setupEmployeeRoutes(api, c)
		setupAttendanceRoutes(api, c)
		setupDashboardRoutes(api, c)
	}

	return router
}

func setupEmployeeRoutes(api *gin.RouterGroup, c *container.Container) {
	employees := api.Group("/employees")
	{
		employees.POST("", c.EmployeeHandler.Create)
		employees.GET("", c.EmployeeHandler.List)
		employees.GET("/:id", c.EmployeeHandler.GetByID)
		employees.DELETE("/:id", c.EmployeeHandler.Delete)
	}

	api.GET("/departments", c.EmployeeHandler.ListDepartments)
}

func setupAttendanceRoutes(api *gin.RouterGroup, c *container.Container) {
	attendance := api.Group("/attendance")
	{
		attendance.POST("", c.AttendanceHandler.Mark)
		attendance.GET("", c.AttendanceHandler.List)
		attendance.DELETE("/:id", c.AttendanceHandler.Delete)
	}
}

func setupDashboardRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/dashboard", c.DashboardHandler.Stats)
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := "healthy"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = "degraded"
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
