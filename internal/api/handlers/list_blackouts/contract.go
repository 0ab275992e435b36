package list_blackouts

import (
	"context"

	"github.com/sweetnarcisse/SN-BookingService/internal/service/blackouts/models"
)

type BlackoutService interface {
	List(ctx context.Context, req *models.ListBlackoutsRequest) (*models.BlackoutListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
