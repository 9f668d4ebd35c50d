package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/domains/attendance/model"
	"hrms-backend/internal/domains/attendance/service"
	employeemodel "hrms-backend/internal/domains/employee/model"
	"hrms-backend/internal/shared/response"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// Mark records attendance for an employee on a date. Marking the same
// day twice updates the stored status, so this returns 201 for both the
// insert and the update case.
// POST /api/attendance
func (h *Handler) Mark(c *gin.Context) {
	var req model.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid attendance payload", err)
		return
	}

	record, err := h.svc.Mark(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, employeemodel.ErrEmployeeNotFound) {
			response.ErrorResponse(c, http.StatusNotFound, employeemodel.ErrCodeEmployeeNotFound,
				fmt.Sprintf("Employee with ID '%s' not found", req.EmployeeID))
			return
		}
		response.InternalServerError(c, "Failed to mark attendance")
		return
	}

	response.Success(c, http.StatusCreated, record)
}

// List returns attendance records with the employee name, newest first.
// GET /api/attendance?employee_id=&date_from=&date_to=&status=
func (h *Handler) List(c *gin.Context) {
	var req model.ListAttendanceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid attendance filters", err)
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		response.BadRequest(c, "Invalid date filter")
		return
	}

	records, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "Failed to list attendance")
		return
	}

	response.Success(c, http.StatusOK, records)
}

// Delete removes one attendance record.
// DELETE /api/attendance/:id
func (h *Handler) Delete(c *gin.Context) {
	attendanceID := c.Param("id")

	if err := h.svc.Delete(c.Request.Context(), attendanceID); err != nil {
		if errors.Is(err, model.ErrAttendanceNotFound) {
			response.ErrorResponse(c, http.StatusNotFound, model.ErrCodeAttendanceNotFound,
				fmt.Sprintf("Attendance record '%s' not found", attendanceID))
			return
		}
		response.InternalServerError(c, "Failed to delete attendance record")
		return
	}

	response.NoContent(c)
}
