package list_boats

import (
	"context"

	"github.com/sweetnarcisse/SN-BookingService/internal/service/fleet/models"
)

type FleetService interface {
	ListBoats(ctx context.Context) (*models.BoatListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
