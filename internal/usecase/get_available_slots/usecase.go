package get_available_slots

import (
	"context"
	"fmt"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
)

// UseCase use case для получения доступных отправлений на день
type UseCase struct {
	bookingRepo  BookingRepository
	fleet        FleetService
	blackouts    BlackoutService
	scheduleCfg  *domain.ScheduleConfig
	pricing      domain.Pricing
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	fleet FleetService,
	blackouts BlackoutService,
	scheduleCfg *domain.ScheduleConfig,
	pricing domain.Pricing,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		fleet:        fleet,
		blackouts:    blackouts,
		scheduleCfg:  scheduleCfg,
		pricing:      pricing,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных отправлений
//
// Слоты не хранятся в БД: на каждый запрос они заново выводятся из
// статического расписания, снапшота флота, бронирований дня и блокировок.
// Два одинаковых запроса над одним состоянием дают одинаковый ответ
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s people=%d lang=%s private=%t",
		req.Date, req.People(), req.Language, req.Private)

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now, uc.scheduleCfg.Location); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		Date:       req.Date,
		Slots:      []Slot{},
		TotalPrice: uc.pricing.PriceFor(req.Adults, req.Children, req.Babies),
	}

	// 2. Снапшот активного флота
	boats, err := uc.fleet.ActiveFleet(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get fleet: %v", err)
		return nil, fmt.Errorf("%w: failed to get fleet: %v", ErrInternal, err)
	}
	if len(boats) == 0 {
		uc.logger.Warn("GetAvailableSlots: no active boats in fleet")
		return resp, nil
	}

	// 3. Блокировки дня
	blocks, err := uc.blackouts.ListForDay(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blackouts: %v", err)
		return nil, fmt.Errorf("%w: failed to get blackouts: %v", ErrInternal, err)
	}

	// 4. Бронирования дня (только активные, по всем баркам)
	bookings, err := uc.dayBookings(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Перебор кандидатов
	resp.Slots, resp.BlockedReason = uc.buildSlots(req, now, boats, bookings, blocks)

	uc.logger.Info("GetAvailableSlots: %d slots available for date=%s", len(resp.Slots), req.Date)
	return resp, nil
}
