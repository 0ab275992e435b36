package staff_create_booking

import (
	"errors"
	"net/http"

	"github.com/sweetnarcisse/SN-BookingService/internal/api/handlers"
	"github.com/sweetnarcisse/SN-BookingService/internal/api/middleware"
	createBooking "github.com/sweetnarcisse/SN-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidInput        = "некорректные данные бронирования"
	msgOutsideServiceHours = "время вне часов работы причала"
	msgInvalidTimeSlot     = "время не совпадает с сеткой отправлений"
	msgBoatNotFound        = "барка не найдена среди активных"
	msgSlotBlocked         = "отправления в это время закрыты"
	msgCapacityExceeded    = "группа не помещается в оставшиеся рейсы дня"
	msgSlotConflict        = "слот только что заняли, попробуйте ещё раз"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /staff/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req StaffCreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /staff/bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrOutsideServiceHours):
			h.logger.Warn("POST /staff/bookings - Outside service hours: user_id=%d, time=%s", userID, req.Time)
			handlers.RespondBadRequest(w, msgOutsideServiceHours)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /staff/bookings - Unaligned time: user_id=%d, time=%s", userID, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrNoBoats):
			// Пустой флот - ошибка конфигурации сервиса, а не конфликт бронирования
			h.logger.Error("POST /staff/bookings - No active boats: user_id=%d", userID)
			handlers.RespondInternalError(w)

		case errors.Is(err, createBooking.ErrBoatNotFound):
			h.logger.Warn("POST /staff/bookings - Boat not found: user_id=%d, boat_id=%v", userID, req.BoatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		case errors.Is(err, createBooking.ErrSlotBlocked):
			h.logger.Warn("POST /staff/bookings - Slot blocked: user_id=%d, date=%s %s", userID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotBlocked)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /staff/bookings - Group does not fit: user_id=%d, people=%d",
				userID, req.Adults+req.Children+req.Babies)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /staff/bookings - Lost slot race: user_id=%d, date=%s %s", userID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotConflict)

		default:
			h.logger.Error("POST /staff/bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /staff/bookings - %d booking(s) created: user_id=%d, date=%s, time=%s",
		len(response.Bookings), userID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
