package blackouts

import (
	"context"
	"time"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
)

// BlackoutRepository интерфейс репозитория интервалов блокировки
type BlackoutRepository interface {
	Create(ctx context.Context, block *domain.BlackoutInterval) (*domain.BlackoutInterval, error)
	Delete(ctx context.Context, id int64) error
	ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.BlackoutInterval, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
