package update_boat

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sweetnarcisse/SN-BookingService/internal/api/handlers"
	"github.com/sweetnarcisse/SN-BookingService/internal/service/fleet"
	"github.com/sweetnarcisse/SN-BookingService/internal/service/fleet/models"
)

const (
	msgInvalidBoatID      = "некорректный ID барки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBoat        = "некорректные данные барки"
	msgBoatNotFound       = "барка не найдена"
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

// Handle PATCH /api/v1/staff/boats/{boatId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	boatID, err := strconv.ParseInt(vars["boatId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /staff/boats/{id} - Invalid boat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBoatID)
		return
	}

	var req models.UpdateBoatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /staff/boats/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	boat, err := h.service.UpdateBoat(r.Context(), boatID, &req)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrBoatNotFound):
			h.logger.Warn("PATCH /staff/boats/{id} - Boat not found: boat_id=%d", boatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		case errors.Is(err, fleet.ErrInvalidInput):
			h.logger.Warn("PATCH /staff/boats/{id} - Invalid input: boat_id=%d, error=%v", boatID, err)
			handlers.RespondBadRequest(w, msgInvalidBoat)

		default:
			h.logger.Error("PATCH /staff/boats/{id} - Failed to update boat: boat_id=%d, error=%v", boatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /staff/boats/{id} - Boat updated: boat_id=%d", boatID)
	handlers.RespondJSON(w, http.StatusOK, boat)
}
