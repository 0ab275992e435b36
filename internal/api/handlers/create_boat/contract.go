package create_boat

import (
	"context"

	"github.com/sweetnarcisse/SN-BookingService/internal/service/fleet/models"
)

type FleetService interface {
	CreateBoat(ctx context.Context, req *models.CreateBoatRequest) (*models.BoatResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
