package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/domains/dashboard/service"
	"hrms-backend/internal/shared/response"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// Stats returns today's organization-wide attendance snapshot.
// GET /api/dashboard
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to compute dashboard stats")
		return
	}

	response.Success(c, http.StatusOK, stats)
}
