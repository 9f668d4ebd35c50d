package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/domains/employee/model"
	"hrms-backend/internal/domains/employee/service"
	"hrms-backend/internal/shared/response"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// Create adds a new employee.
// POST /api/employees
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid employee payload", err)
		return
	}

	emp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrDuplicateEmployeeID):
			response.ErrorResponse(c, http.StatusConflict, model.ErrCodeDuplicateEmployeeID,
				fmt.Sprintf("Employee with ID '%s' already exists", req.EmployeeID))
		case errors.Is(err, model.ErrDuplicateEmail):
			response.ErrorResponse(c, http.StatusConflict, model.ErrCodeDuplicateEmail,
				fmt.Sprintf("Employee with email '%s' already exists", req.Email))
		default:
			response.InternalServerError(c, "Failed to create employee")
		}
		return
	}

	response.Success(c, http.StatusCreated, emp)
}

// List returns employees, optionally filtered by department and search.
// GET /api/employees?department=&search=
func (h *Handler) List(c *gin.Context) {
	var req model.ListEmployeesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	employees, err := h.svc.List(c.Request.Context(), req.ToFilter())
	if err != nil {
		response.InternalServerError(c, "Failed to list employees")
		return
	}

	response.Success(c, http.StatusOK, employees)
}

// GetByID returns one employee with attendance records and totals.
// GET /api/employees/:id
func (h *Handler) GetByID(c *gin.Context) {
	employeeID := c.Param("id")

	emp, err := h.svc.Get(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, model.ErrEmployeeNotFound) {
			response.ErrorResponse(c, http.StatusNotFound, model.ErrCodeEmployeeNotFound,
				fmt.Sprintf("Employee with ID '%s' not found", employeeID))
			return
		}
		response.InternalServerError(c, "Failed to get employee")
		return
	}

	response.Success(c, http.StatusOK, emp)
}

// Delete removes an employee and, by cascade, their attendance records.
// DELETE /api/employees/:id
func (h *Handler) Delete(c *gin.Context) {
	employeeID := c.Param("id")

	if err := h.svc.Delete(c.Request.Context(), employeeID); err != nil {
		if errors.Is(err, model.ErrEmployeeNotFound) {
			response.ErrorResponse(c, http.StatusNotFound, model.ErrCodeEmployeeNotFound,
				fmt.Sprintf("Employee with ID '%s' not found", employeeID))
			return
		}
		response.InternalServerError(c, "Failed to delete employee")
		return
	}

	response.NoContent(c)
}

// ListDepartments returns the distinct departments, sorted.
// GET /api/departments
func (h *Handler) ListDepartments(c *gin.Context) {
	departments, err := h.svc.ListDepartments(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list departments")
		return
	}

	response.Success(c, http.StatusOK, departments)
}
