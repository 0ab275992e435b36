package get_available_slots

import (
	"context"
	"time"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDayWithFilter(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

// FleetService интерфейс сервиса флота
type FleetService interface {
	// ActiveFleet возвращает активные барки в порядке ротации
	ActiveFleet(ctx context.Context) ([]*domain.Boat, error)
}

// BlackoutService интерфейс сервиса блокировок
type BlackoutService interface {
	// ListForDay возвращает интервалы блокировки, пересекающиеся с днём
	ListForDay(ctx context.Context, date string) ([]domain.BlackoutInterval, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
