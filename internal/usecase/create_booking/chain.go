package create_booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
	"github.com/sweetnarcisse/SN-BookingService/internal/schedule"
	"github.com/sweetnarcisse/SN-BookingService/pkg/types"
)

// chainLeg один рейс цепочки: барка, момент отправления и состав группы
type chainLeg struct {
	boat      *domain.Boat
	timeOfDay types.TimeString
	instant   time.Time
	adults    int
	children  int
	babies    int
}

// createChain разбивает большую staff-группу на цепочку последовательных
// рейсов начиная с запрошенного времени
//
// Планирование и вставка выполняются в одной serializable-транзакции:
// свободные места каждого рейса считаются по уже существующим бронированиям
// под блокировкой строк. Если до конца дня мест не хватило, цепочка
// не создаётся вовсе - частичная рассадка группы бесполезна
func (uc *UseCase) createChain(ctx context.Context, req *Request, boats []*domain.Boat, blocks []domain.BlackoutInterval) (*Response, error) {
	uc.logger.Info("CreateBooking: chaining party of %d from %s %s", req.People(), req.Date, req.Time)

	startMinutes, err := types.TimeString(req.Time).Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}

	var legs []chainLeg
	bookings := make([]*domain.Booking, 0)
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		legs, err = uc.planChain(txCtx, req, startMinutes, boats, blocks)
		if err != nil {
			return err
		}
		for _, leg := range legs {
			booking := uc.newChainBooking(req, leg)
			if _, err := uc.bookingRepo.Create(txCtx, booking); err != nil {
				return err
			}
			bookings = append(bookings, booking)
		}
		return nil
	})
	if err != nil {
		return nil, uc.mapWriteError(err)
	}

	resp := &Response{Bookings: make([]CreatedBooking, 0, len(bookings))}
	for i, b := range bookings {
		resp.Bookings = append(resp.Bookings, fromDomain(b, legs[i].boat.Name, uc.scheduleCfg.Location))
	}

	uc.logger.Info("CreateBooking: chained %d bookings for party of %d", len(bookings), req.People())
	return resp, nil
}

// planChain раскладывает группу по последовательным кандидатам дня
//
// Группа нарезается жадно: каждый следующий выровненный, не заблокированный
// и не занятый кандидат принимает до свободной вместимости назначенной ему
// барки, пока группа не рассядется
func (uc *UseCase) planChain(ctx context.Context, req *Request, startMinutes int, boats []*domain.Boat, blocks []domain.BlackoutInterval) ([]chainLeg, error) {
	cfg := uc.scheduleCfg
	busyWindow := time.Duration(cfg.TourDurationMinutes+cfg.BufferMinutes) * time.Minute

	remAdults, remChildren, remBabies := req.Adults, req.Children, req.Babies
	legs := make([]chainLeg, 0)

	for _, candidate := range schedule.GenerateCandidates(cfg) {
		if remAdults+remChildren+remBabies == 0 {
			break
		}

		candidateMinutes, err := candidate.Minutes()
		if err != nil || candidateMinutes < startMinutes {
			continue
		}

		instant := schedule.ToInstant(req.Date, candidate.String(), cfg.Location)
		if schedule.IsWindowBlocked(instant, instant.Add(busyWindow), blocks) {
			continue
		}

		boatIndex, ok := schedule.AssignBoat(candidate, cfg, len(boats))
		if !ok {
			continue
		}
		boat := boats[boatIndex]

		// Рейс мог быть занят обычными бронированиями - считаем остаток мест
		conflicts, err := uc.overlappingBookings(ctx, boat.ID, instant)
		if err != nil {
			return nil, err
		}
		seats := freeSeats(boat.Capacity, instant, conflicts)
		if seats <= 0 {
			continue
		}

		// Жадно заполняем рейс: сначала взрослые, затем дети и младенцы
		takeAdults := min(seats, remAdults)
		seats -= takeAdults
		takeChildren := min(seats, remChildren)
		seats -= takeChildren
		takeBabies := min(seats, remBabies)

		legs = append(legs, chainLeg{
			boat:      boat,
			timeOfDay: candidate,
			instant:   instant,
			adults:    takeAdults,
			children:  takeChildren,
			babies:    takeBabies,
		})

		remAdults -= takeAdults
		remChildren -= takeChildren
		remBabies -= takeBabies
	}

	if remAdults+remChildren+remBabies > 0 {
		uc.logger.Warn("CreateBooking: day %s cannot seat party of %d", req.Date, req.People())
		return nil, ErrCapacityExceeded
	}

	return legs, nil
}

// freeSeats считает свободные места рейса с учётом уже занявших его групп
// Бронирование, пересекающее занятое окно рейса, но начинающееся в другой
// момент, занимает барку целиком
func freeSeats(capacity int, instant time.Time, existing []*domain.Booking) int {
	seats := capacity
	for _, b := range existing {
		if !b.StartTime.Equal(instant) {
			return 0
		}
		seats -= b.People
	}
	return seats
}

// newChainBooking собирает доменное бронирование для одного рейса цепочки
func (uc *UseCase) newChainBooking(req *Request, leg chainLeg) *domain.Booking {
	year, month, day := schedule.ParseWallDate(req.Date)
	tourDuration := time.Duration(uc.scheduleCfg.TourDurationMinutes) * time.Minute

	return &domain.Booking{
		PublicReference: uuid.NewString(),
		UserID:          req.UserID,
		BoatID:          leg.boat.ID,
		Date:            time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
		StartTime:       leg.instant,
		EndTime:         leg.instant.Add(tourDuration),
		Language:        strings.ToUpper(strings.TrimSpace(req.Language)),
		Adults:          leg.adults,
		Children:        leg.children,
		Babies:          leg.babies,
		People:          leg.adults + leg.children + leg.babies,
		IsPrivate:       false,
		TotalPrice:      uc.pricing.PriceFor(leg.adults, leg.children, leg.babies),
		Status:          domain.StatusConfirmed,
		Message:         req.Message,
	}
}
