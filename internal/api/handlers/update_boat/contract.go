package update_boat

import (
	"context"

	"github.com/sweetnarcisse/SN-BookingService/internal/service/fleet/models"
)

type FleetService interface {
	UpdateBoat(ctx context.Context, id int64, req *models.UpdateBoatRequest) (*models.BoatResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
