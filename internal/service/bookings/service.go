package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
	bookingRepo "github.com/sweetnarcisse/SN-BookingService/internal/infra/storage/booking"
	"github.com/sweetnarcisse/SN-BookingService/internal/schedule"
	"github.com/sweetnarcisse/SN-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями
// Создание бронирований живёт отдельно - в usecase создания, вместе
// с транзакционной проверкой конфликтов
type Service struct {
	bookingRepo BookingRepository
	scheduleCfg *domain.ScheduleConfig
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, scheduleCfg *domain.ScheduleConfig, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		scheduleCfg: scheduleCfg,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование; сотрудник - любое
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, isStaff bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d staff=%t", id, userID, isStaff)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !isStaff && booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking, s.scheduleCfg.Location), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование, сотрудник - любое
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d staff=%t", bookingID, req.UserID, req.IsStaff)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLen {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLen)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !req.IsStaff && booking.UserID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Гонка с параллельной отменой - бронирование уже отменено
			s.logger.Warn("Cancel: booking id=%d already cancelled", bookingID)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// GetPlanning возвращает все отправления дня для планирования работы причала
// Доступно только сотрудникам; опционально фильтрует по барке и включает
// отменённые бронирования
func (s *Service) GetPlanning(ctx context.Context, req *models.GetPlanningRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetPlanning: fetching planning for date=%s", req.Date)

	if err := req.Validate(); err != nil {
		s.logger.Warn("GetPlanning: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	dayStart, dayEnd := schedule.DayBounds(req.Date, s.scheduleCfg.Location)

	bookings, err := s.bookingRepo.GetByDayWithFilter(ctx, domain.DayBookingsFilter{
		DayStart:        dayStart,
		DayEnd:          dayEnd,
		BoatID:          req.BoatID,
		IncludeInactive: req.IncludeInactive,
	})
	if err != nil {
		s.logger.Error("GetPlanning: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: GetPlanning - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPlanning: fetched %d bookings for date=%s", len(bookings), req.Date)
	return models.FromDomainBookingList(bookings, s.scheduleCfg.Location), nil
}
