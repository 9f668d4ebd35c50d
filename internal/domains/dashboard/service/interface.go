package service

import (
	"context"

	"hrms-backend/internal/domains/dashboard/model"
)

type Service interface {
	// Stats computes the dashboard snapshot as of the current date.
	Stats(ctx context.Context) (*model.DashboardStats, error)
}
