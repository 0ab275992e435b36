package create_booking

import (
	"context"
	"time"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetConflicts получает активные бронирования барки, пересекающиеся с окном.
	// Внутри транзакции строки блокируются до её завершения
	GetConflicts(ctx context.Context, boatID int64, from, to time.Time) ([]*domain.Booking, error)
}

// FleetService интерфейс сервиса флота
type FleetService interface {
	ActiveFleet(ctx context.Context) ([]*domain.Boat, error)
}

// BlackoutService интерфейс сервиса блокировок
type BlackoutService interface {
	ListForDay(ctx context.Context, date string) ([]domain.BlackoutInterval, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
