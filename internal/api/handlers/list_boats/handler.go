package list_boats

import (
	"net/http"

	"github.com/sweetnarcisse/SN-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/staff/boats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	boats, err := h.service.ListBoats(r.Context())
	if err != nil {
		h.logger.Error("GET /staff/boats - Failed to list boats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff/boats - %d boats returned", len(boats.Boats))
	handlers.RespondJSON(w, http.StatusOK, boats)
}
