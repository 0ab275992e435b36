package list_blackouts

import (
	"errors"
	"net/http"

	"github.com/sweetnarcisse/SN-BookingService/internal/api/handlers"
	"github.com/sweetnarcisse/SN-BookingService/internal/service/blackouts"
	"github.com/sweetnarcisse/SN-BookingService/internal/service/blackouts/models"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
)

type Handler struct {
	service BlackoutService
	logger  Logger
}

func NewHandler(service BlackoutService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/blackouts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListBlackoutsRequest{
		From: query.Get("from"),
		To:   query.Get("to"),
	}

	blackoutList, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, blackouts.ErrInvalidInput):
			h.logger.Warn("GET /staff/blackouts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /staff/blackouts - Failed to list blackouts: from=%s, to=%s, error=%v", req.From, req.To, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/blackouts - %d intervals returned", len(blackoutList.Blackouts))
	handlers.RespondJSON(w, http.StatusOK, blackoutList)
}
