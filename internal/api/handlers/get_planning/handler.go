package get_planning

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sweetnarcisse/SN-BookingService/internal/api/handlers"
	"github.com/sweetnarcisse/SN-BookingService/internal/service/bookings"
	"github.com/sweetnarcisse/SN-BookingService/internal/service/bookings/models"
	"github.com/sweetnarcisse/SN-BookingService/pkg/ptr"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/planning
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.GetPlanningRequest{
		Date: query.Get("date"),
	}

	if raw := query.Get("boatId"); raw != "" {
		boatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /staff/planning - Invalid boatId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.BoatID = ptr.Ptr(boatID)
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /staff/planning - Invalid includeInactive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.IncludeInactive = includeInactive
	}

	planning, err := h.service.GetPlanning(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /staff/planning - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /staff/planning - Failed to get planning: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/planning - %d bookings returned for date=%s", len(planning.Bookings), req.Date)
	handlers.RespondJSON(w, http.StatusOK, planning)
}
