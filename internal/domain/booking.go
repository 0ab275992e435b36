package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Booking represents a tour departure reservation
// Инвариант: EndTime = StartTime + длительность тура; буфер между турами
// никогда не сохраняется в самом бронировании, он добавляется только при
// проверке конфликтов с другими бронированиями
type Booking struct {
	ID              int64
	PublicReference string
	UserID          int64
	BoatID          int64
	Date            time.Time // календарный день отправления (00:00 UTC)
	StartTime       time.Time // абсолютный момент отправления
	EndTime         time.Time // StartTime + длительность тура
	Language        string
	Adults          int
	Children        int
	Babies          int
	People          int // суммарный размер группы
	IsPrivate       bool
	TotalPrice      float64
	Status          BookingStatus

	Message            *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// StartsAt возвращает true, если бронирование начинается ровно в instant
// (сравнение с точностью до минуты, как на фронте)
func (b *Booking) StartsAt(instant time.Time) bool {
	return b.StartTime.Truncate(time.Minute).Equal(instant.Truncate(time.Minute))
}

// DayBookingsFilter фильтр для выборки бронирований на день
type DayBookingsFilter struct {
	DayStart        time.Time // начало календарного дня (включительно)
	DayEnd          time.Time // конец календарного дня (включительно)
	BoatID          *int64    // фильтр по барке (опционально)
	IncludeInactive bool      // включать ли отменённые бронирования
}
