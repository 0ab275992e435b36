package get_planning

import (
	"context"

	"github.com/sweetnarcisse/SN-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetPlanning(ctx context.Context, req *models.GetPlanningRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
