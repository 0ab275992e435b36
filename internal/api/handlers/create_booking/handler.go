package create_booking

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
	msgInvalidDate         = "дата отправления уже в прошлом"
	msgOutsideServiceHours = "время вне часов работы причала"
	msgInvalidTimeSlot     = "время не совпадает с сеткой отправлений"
	msgTooLateToBook       = "до отправления осталось слишком мало времени"
	msgSlotBlocked         = "отправления в это время закрыты"
	msgSlotTaken           = "слот уже занят"
	msgPrivacyConflict     = "слот недоступен из-за приватизации"
	msgLanguageMismatch    = "на этом отправлении группа с другим языком"
	msgCapacityExceeded    = "недостаточно мест на барке"
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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		h.respondUseCaseError(w, &req, userID, err)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: ref=%s, user_id=%d, date=%s, time=%s",
		response.Booking.PublicReference, userID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, req *CreateBookingRequest, userID int64, err error) {
	switch {
	case errors.Is(err, createBooking.ErrInvalidInput):
		h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, createBooking.ErrInvalidDate):
		h.logger.Warn("POST /bookings - Departure in the past: user_id=%d, date=%s %s", userID, req.Date, req.Time)
		handlers.RespondBadRequest(w, msgInvalidDate)

	case errors.Is(err, createBooking.ErrOutsideServiceHours):
		h.logger.Warn("POST /bookings - Outside service hours: user_id=%d, time=%s", userID, req.Time)
		handlers.RespondBadRequest(w, msgOutsideServiceHours)

	case errors.Is(err, createBooking.ErrInvalidTimeSlot):
		h.logger.Warn("POST /bookings - Unaligned time: user_id=%d, time=%s", userID, req.Time)
		handlers.RespondBadRequest(w, msgInvalidTimeSlot)

	case errors.Is(err, createBooking.ErrTooLateToBook):
		h.logger.Warn("POST /bookings - Too late to book: user_id=%d, date=%s %s", userID, req.Date, req.Time)
		handlers.RespondBadRequest(w, msgTooLateToBook)

	case errors.Is(err, createBooking.ErrNoBoats):
		// Пустой флот - ошибка конфигурации сервиса, а не конфликт бронирования
		h.logger.Error("POST /bookings - No active boats: user_id=%d", userID)
		handlers.RespondInternalError(w)

	case errors.Is(err, createBooking.ErrSlotBlocked):
		h.logger.Warn("POST /bookings - Slot blocked: user_id=%d, date=%s %s", userID, req.Date, req.Time)
		handlers.RespondConflict(w, msgSlotBlocked)

	case errors.Is(err, createBooking.ErrSlotTaken):
		h.logger.Warn("POST /bookings - Slot taken: user_id=%d, date=%s %s", userID, req.Date, req.Time)
		handlers.RespondConflict(w, msgSlotTaken)

	case errors.Is(err, createBooking.ErrPrivacyConflict):
		h.logger.Warn("POST /bookings - Privacy conflict: user_id=%d, date=%s %s", userID, req.Date, req.Time)
		handlers.RespondConflict(w, msgPrivacyConflict)

	case errors.Is(err, createBooking.ErrLanguageMismatch):
		h.logger.Warn("POST /bookings - Language mismatch: user_id=%d, date=%s %s", userID, req.Date, req.Time)
		handlers.RespondConflict(w, msgLanguageMismatch)

	case errors.Is(err, createBooking.ErrCapacityExceeded):
		h.logger.Warn("POST /bookings - Capacity exceeded: user_id=%d, people=%d",
			userID, req.Adults+req.Children+req.Babies)
		handlers.RespondConflict(w, msgCapacityExceeded)

	case errors.Is(err, createBooking.ErrSlotConflict):
		h.logger.Warn("POST /bookings - Lost slot race: user_id=%d, date=%s %s", userID, req.Date, req.Time)
		handlers.RespondConflict(w, msgSlotConflict)

	default:
		h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
	}
}
