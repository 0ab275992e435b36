package create_boat

import (
	"errors"
	"net/http"

	"github.com/sweetnarcisse/SN-BookingService/internal/api/handlers"
	"github.com/sweetnarcisse/SN-BookingService/internal/service/fleet"
	"github.com/sweetnarcisse/SN-BookingService/internal/service/fleet/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBoat        = "некорректные данные барки"
)

type Handler struct {
	service FleetService
	logger  Logger
}

func NewHandler(service FleetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff/boats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBoatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/boats - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	boat, err := h.service.CreateBoat(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrInvalidInput):
			h.logger.Warn("POST /staff/boats - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBoat)

		default:
			h.logger.Error("POST /staff/boats - Failed to create boat: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/boats - Boat created: boat_id=%d, name=%q", boat.ID, boat.Name)
	handlers.RespondJSON(w, http.StatusCreated, boat)
}
