package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
	bookingRepo "github.com/sweetnarcisse/SN-BookingService/internal/infra/storage/booking"
	"github.com/sweetnarcisse/SN-BookingService/internal/schedule"
	"github.com/sweetnarcisse/SN-BookingService/pkg/types"
)

// UseCase use case для создания бронирования
//
// Единственный путь записи: и клиентские, и staff-бронирования идут через
// Execute, различаясь только флагом StaffOverride. Проверка конфликтов и
// вставка выполняются в одной serializable-транзакции с блокировкой
// конфликтующих строк
type UseCase struct {
	bookingRepo  BookingRepository
	fleet        FleetService
	blackouts    BlackoutService
	txManager    TransactionManager
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
	txManager TransactionManager,
	scheduleCfg *domain.ScheduleConfig,
	pricing domain.Pricing,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		fleet:        fleet,
		blackouts:    blackouts,
		txManager:    txManager,
		scheduleCfg:  scheduleCfg,
		pricing:      pricing,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d date=%s time=%s people=%d lang=%s private=%t staff=%t",
		req.UserID, req.Date, req.Time, req.People(), req.Language, req.Private, req.StaffOverride)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	cfg := uc.scheduleCfg
	now := uc.timeProvider.Now()
	instant := schedule.ToInstant(req.Date, req.Time, cfg.Location)

	// 2. Момент отправления: прошлое и минимальный интервал
	// Сотрудник может вносить рейсы задним числом (коррекция планирования)
	if !req.StaffOverride {
		if instant.Before(now) {
			uc.logger.Warn("CreateBooking: departure %s is in the past", instant)
			return nil, ErrInvalidDate
		}
		minLead := time.Duration(cfg.MinLeadTimeMinutes) * time.Minute
		if instant.Before(now.Add(minLead)) {
			uc.logger.Warn("CreateBooking: departure %s violates min lead time", instant)
			return nil, ErrTooLateToBook
		}
	}

	// 3. Окна обслуживания и сетка отправлений
	minutes, err := types.TimeString(req.Time).Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}
	if !cfg.InServiceWindow(minutes) {
		uc.logger.Warn("CreateBooking: time %s outside service hours", req.Time)
		return nil, ErrOutsideServiceHours
	}

	// 4. Снапшот активного флота и назначение барки по ротации
	boats, err := uc.fleet.ActiveFleet(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get fleet: %v", err)
		return nil, fmt.Errorf("%w: failed to get fleet: %v", ErrInternal, err)
	}
	if len(boats) == 0 {
		uc.logger.Warn("CreateBooking: no active boats in fleet")
		return nil, ErrNoBoats
	}

	boatIndex, aligned := schedule.AssignBoat(types.TimeString(req.Time), cfg, len(boats))
	if !aligned {
		uc.logger.Warn("CreateBooking: time %s not aligned to departure grid", req.Time)
		return nil, ErrInvalidTimeSlot
	}
	boat := boats[boatIndex]

	// Принудительный выбор барки (только для сотрудников)
	if req.ForcedBoatID != nil {
		boat = findBoat(boats, *req.ForcedBoatID)
		if boat == nil {
			uc.logger.Warn("CreateBooking: forced boat id=%d not in active fleet", *req.ForcedBoatID)
			return nil, ErrBoatNotFound
		}
	}

	// 5. Блокировки: применяются и к staff-бронированиям
	blocks, err := uc.blackouts.ListForDay(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get blackouts: %v", err)
		return nil, fmt.Errorf("%w: failed to get blackouts: %v", ErrInternal, err)
	}

	dayStart, dayEnd := schedule.DayBounds(req.Date, cfg.Location)
	if blocked, _ := schedule.IsDayBlocked(dayStart, dayEnd, blocks); blocked {
		uc.logger.Warn("CreateBooking: day %s is fully blocked", req.Date)
		return nil, ErrSlotBlocked
	}
	// Занятое окно рейса включает буфер: блокировка буферного хвоста
	// тоже запрещает отправление
	busyWindow := time.Duration(cfg.TourDurationMinutes+cfg.BufferMinutes) * time.Minute
	if schedule.IsWindowBlocked(instant, instant.Add(busyWindow), blocks) {
		uc.logger.Warn("CreateBooking: departure %s falls into blackout", instant)
		return nil, ErrSlotBlocked
	}

	// 6. Большая staff-группа разбивается на цепочку рейсов
	if req.StaffOverride && req.People() > boat.Capacity && req.ForcedBoatID == nil {
		return uc.createChain(ctx, req, boats, blocks)
	}
	if req.People() > boat.Capacity && !req.Private {
		uc.logger.Warn("CreateBooking: party of %d exceeds boat capacity %d", req.People(), boat.Capacity)
		return nil, ErrCapacityExceeded
	}

	booking := uc.newBooking(req, boat, instant)

	// 7. Транзакционная запись: блокируем конфликтующие строки, решаем
	// допуск и вставляем в одной serializable-транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		conflicts, err := uc.overlappingBookings(txCtx, boat.ID, instant)
		if err != nil {
			return err
		}

		if !req.StaffOverride {
			party := schedule.Party{
				People:   req.People(),
				Language: booking.Language,
				Private:  req.Private,
			}
			if err := verdictToError(schedule.CanAdmit(boat.Capacity, instant, conflicts, party)); err != nil {
				return err
			}
		}

		_, err = uc.bookingRepo.Create(txCtx, booking)
		return err
	})
	if err != nil {
		return nil, uc.mapWriteError(err)
	}

	uc.logger.Info("CreateBooking: created booking id=%d ref=%s boat=%d at %s",
		booking.ID, booking.PublicReference, boat.ID, instant)

	return &Response{
		Bookings: []CreatedBooking{fromDomain(booking, boat.Name, cfg.Location)},
	}, nil
}

// overlappingBookings получает активные бронирования барки, чьё занятое окно
// (рейс + буфер) пересекается с занятым окном нового отправления
func (uc *UseCase) overlappingBookings(ctx context.Context, boatID int64, instant time.Time) ([]*domain.Booking, error) {
	cfg := uc.scheduleCfg
	tourDuration := time.Duration(cfg.TourDurationMinutes) * time.Minute
	buffer := time.Duration(cfg.BufferMinutes) * time.Minute

	fetched, err := uc.bookingRepo.GetConflicts(ctx, boatID, instant.Add(-buffer), instant.Add(tourDuration+buffer))
	if err != nil {
		return nil, err
	}

	// Перепроверяем правило пересечения в явном виде: занятые окна
	// [start, end+buffer) обеих сторон должны строго пересекаться
	newBusyEnd := instant.Add(tourDuration + buffer)
	overlapping := make([]*domain.Booking, 0, len(fetched))
	for _, b := range fetched {
		if b.StartTime.Before(newBusyEnd) && b.EndTime.Add(buffer).After(instant) {
			overlapping = append(overlapping, b)
		}
	}
	return overlapping, nil
}

// newBooking собирает доменное бронирование для вставки
// Приватизация выкупает барку целиком: места и цена считаются по полной
// вместимости независимо от фактического размера группы
func (uc *UseCase) newBooking(req *Request, boat *domain.Boat, instant time.Time) *domain.Booking {
	adults, children, babies := req.Adults, req.Children, req.Babies
	if req.Private {
		adults, children, babies = boat.Capacity, 0, 0
	}

	year, month, day := schedule.ParseWallDate(req.Date)
	tourDuration := time.Duration(uc.scheduleCfg.TourDurationMinutes) * time.Minute

	return &domain.Booking{
		PublicReference: uuid.NewString(),
		UserID:          req.UserID,
		BoatID:          boat.ID,
		Date:            time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
		StartTime:       instant,
		EndTime:         instant.Add(tourDuration),
		Language:        strings.ToUpper(strings.TrimSpace(req.Language)),
		Adults:          adults,
		Children:        children,
		Babies:          babies,
		People:          adults + children + babies,
		IsPrivate:       req.Private,
		TotalPrice:      uc.pricing.PriceFor(adults, children, babies),
		Status:          domain.StatusConfirmed,
		Message:         req.Message,
	}
}

// verdictToError конвертирует вердикт политики допуска в типизированную ошибку
func verdictToError(v schedule.Verdict) error {
	switch v {
	case schedule.VerdictAdmit:
		return nil
	case schedule.VerdictSlotTaken:
		return ErrSlotTaken
	case schedule.VerdictPrivacyConflict:
		return ErrPrivacyConflict
	case schedule.VerdictLanguageMismatch:
		return ErrLanguageMismatch
	case schedule.VerdictCapacityExceeded:
		return ErrCapacityExceeded
	default:
		return fmt.Errorf("%w: unknown admission verdict %d", ErrInternal, v)
	}
}

// mapWriteError приводит ошибку транзакционной записи к ошибке usecase
// Проигрыш гонки за слот (сбой сериализации или нарушение уникальности)
// превращается в типизированный конфликт, который клиент может повторить
func (uc *UseCase) mapWriteError(err error) error {
	switch {
	case errors.Is(err, ErrSlotTaken),
		errors.Is(err, ErrPrivacyConflict),
		errors.Is(err, ErrLanguageMismatch),
		errors.Is(err, ErrCapacityExceeded):
		uc.logger.Warn("CreateBooking: admission rejected: %v", err)
		return err
	case errors.Is(err, bookingRepo.ErrDuplicateSlot),
		errors.Is(err, bookingRepo.ErrSerializationFailure):
		uc.logger.Warn("CreateBooking: lost slot race: %v", err)
		return ErrSlotConflict
	}

	// Сбой сериализации может всплыть и на commit, минуя репозиторий
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && (pqErr.Code == "40001" || pqErr.Code == "23505") {
		uc.logger.Warn("CreateBooking: lost slot race on commit: %v", err)
		return ErrSlotConflict
	}

	uc.logger.Error("CreateBooking: transaction failed: %v", err)
	return fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
}

// findBoat ищет барку по ID в снапшоте флота
func findBoat(boats []*domain.Boat, id int64) *domain.Boat {
	for _, b := range boats {
		if b.ID == id {
			return b
		}
	}
	return nil
}
