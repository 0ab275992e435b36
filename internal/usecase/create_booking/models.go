package create_booking

import (
	"time"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
//
// StaffOverride доступен только сотрудникам (устанавливается staff-handler'ом,
// клиентский путь его никогда не выставляет): отключает минимальный интервал
// до отправления и политику допуска, позволяет принудительно выбрать барку
// и разбивать большие группы на цепочку рейсов
type Request struct {
	UserID   int64
	Date     string // "2025-07-15"
	Time     string // "10:20"
	Adults   int
	Children int
	Babies   int
	Language string
	Private  bool
	Message  *string

	StaffOverride bool
	ForcedBoatID  *int64
}

// People суммарный размер группы
func (r *Request) People() int {
	return r.Adults + r.Children + r.Babies
}

// Response модель ответа на создание бронирования
// Обычный путь создаёт ровно одно бронирование; staff-цепочка для больших
// групп - несколько, по одному на рейс
type Response struct {
	Bookings []CreatedBooking
}

// CreatedBooking созданное бронирование
type CreatedBooking struct {
	ID              int64
	PublicReference string
	BoatID          int64
	BoatName        string
	Date            string // "2025-07-15"
	StartTime       string // "10:20"
	EndTime         string // "10:45"
	People          int
	TotalPrice      float64
	Status          string
}

// fromDomain конвертирует созданное доменное бронирование в ответ
func fromDomain(b *domain.Booking, boatName string, loc *time.Location) CreatedBooking {
	return CreatedBooking{
		ID:              b.ID,
		PublicReference: b.PublicReference,
		BoatID:          b.BoatID,
		BoatName:        boatName,
		Date:            b.StartTime.In(loc).Format(domain.DateFormat),
		StartTime:       b.StartTime.In(loc).Format(domain.TimeFormat),
		EndTime:         b.EndTime.In(loc).Format(domain.TimeFormat),
		People:          b.People,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
	}
}
