package create_blackout

import (
	"errors"
	"net/http"

	"github.com/sweetnarcisse/SN-BookingService/internal/api/handlers"
	"github.com/sweetnarcisse/SN-BookingService/internal/service/blackouts"
	"github.com/sweetnarcisse/SN-BookingService/internal/service/blackouts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBlackout    = "некорректные данные блокировки"
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

// Handle POST /api/v1/staff/blackouts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlackoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/blackouts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	blackout, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blackouts.ErrInvalidInput):
			h.logger.Warn("POST /staff/blackouts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBlackout)

		default:
			h.logger.Error("POST /staff/blackouts - Failed to create blackout: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/blackouts - Blackout created: blackout_id=%d, scope=%s", blackout.ID, blackout.Scope)
	handlers.RespondJSON(w, http.StatusCreated, blackout)
}
