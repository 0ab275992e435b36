package get_available_slots

import (
	"context"
	"strings"
	"time"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
	"github.com/sweetnarcisse/SN-BookingService/internal/schedule"
)

// dayBookings получает активные бронирования дня по всем баркам
func (uc *UseCase) dayBookings(ctx context.Context, date string) ([]*domain.Booking, error) {
	dayStart, dayEnd := schedule.DayBounds(date, uc.scheduleCfg.Location)
	return uc.bookingRepo.GetByDayWithFilter(ctx, domain.DayBookingsFilter{
		DayStart: dayStart,
		DayEnd:   dayEnd,
	})
}

// buildSlots строит список доступных отправлений для группы
//
// Порядок фильтров для каждого кандидата:
//  1. Минимальный интервал до отправления (для сегодняшних рейсов)
//  2. Пересечение с интервалом блокировки
//  3. Детерминированное назначение барки по ротации
//  4. Политика допуска группы к слоту назначенной барки
//
// Если слотов не осталось и на день есть блокировки, причина первой
// блокировки возвращается как пояснение
func (uc *UseCase) buildSlots(
	req *Request,
	now time.Time,
	boats []*domain.Boat,
	bookings []*domain.Booking,
	blocks []domain.BlackoutInterval,
) ([]Slot, string) {
	cfg := uc.scheduleCfg

	// Полностью закрытый день - слоты не перебираем
	dayStart, dayEnd := schedule.DayBounds(req.Date, cfg.Location)
	if blocked, reason := schedule.IsDayBlocked(dayStart, dayEnd, blocks); blocked {
		return []Slot{}, reason
	}

	// Язык хранится в верхнем регистре - нормализуем и запрос
	party := schedule.Party{
		People:   req.People(),
		Language: strings.ToUpper(strings.TrimSpace(req.Language)),
		Private:  req.Private,
	}

	// Занятое окно рейса включает буфер: блокировка, накрывающая только
	// буферный хвост, тоже прячет отправление
	busyWindow := time.Duration(cfg.TourDurationMinutes+cfg.BufferMinutes) * time.Minute
	minLead := time.Duration(cfg.MinLeadTimeMinutes) * time.Minute

	slots := make([]Slot, 0)
	for _, candidate := range schedule.GenerateCandidates(cfg) {
		instant := schedule.ToInstant(req.Date, candidate.String(), cfg.Location)

		// Рейсы "на сегодня" - только с запасом времени до отправления
		if instant.Before(now.Add(minLead)) {
			continue
		}

		if schedule.IsWindowBlocked(instant, instant.Add(busyWindow), blocks) {
			continue
		}

		boatIndex, ok := schedule.AssignBoat(candidate, cfg, len(boats))
		if !ok {
			continue
		}
		boat := boats[boatIndex]

		// Для отображения учитываются только бронирования, начинающиеся
		// ровно в момент кандидата: пересечения с соседними рейсами
		// проверяет путь записи
		existing := slotBookings(bookings, boat.ID, instant)

		if schedule.CanAdmit(boat.Capacity, instant, existing, party) != schedule.VerdictAdmit {
			continue
		}

		slots = append(slots, Slot{
			Time:      candidate,
			BoatID:    boat.ID,
			BoatName:  boat.Name,
			SeatsLeft: boat.Capacity - occupiedSeats(existing),
		})
	}

	if len(slots) == 0 {
		return slots, schedule.FirstReason(blocks)
	}
	return slots, ""
}

// slotBookings отбирает активные бронирования барки, начинающиеся ровно в instant
func slotBookings(bookings []*domain.Booking, boatID int64, instant time.Time) []*domain.Booking {
	result := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if b.BoatID == boatID && b.IsActive() && b.StartsAt(instant) {
			result = append(result, b)
		}
	}
	return result
}

// occupiedSeats суммирует размеры групп, уже занявших слот
func occupiedSeats(bookings []*domain.Booking) int {
	total := 0
	for _, b := range bookings {
		total += b.People
	}
	return total
}
