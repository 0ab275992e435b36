package staff_create_booking

import (
	createBooking "github.com/sweetnarcisse/SN-BookingService/internal/usecase/create_booking"
)

// StaffCreateBookingRequest HTTP request model
// Отличия от клиентского запроса: опциональный выбор барки и группы
// любого размера (большие разбиваются на цепочку рейсов)
type StaffCreateBookingRequest struct {
	Date     string  `json:"date"` // "2025-07-15"
	Time     string  `json:"time"` // "10:20"
	Adults   int     `json:"adults"`
	Children int     `json:"children"`
	Babies   int     `json:"babies"`
	Language string  `json:"language"`
	Private  bool    `json:"private,omitempty"`
	Message  *string `json:"message,omitempty"`
	BoatID   *int64  `json:"boatId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *StaffCreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:        userID,
		Date:          r.Date,
		Time:          r.Time,
		Adults:        r.Adults,
		Children:      r.Children,
		Babies:        r.Babies,
		Language:      r.Language,
		Private:       r.Private,
		Message:       r.Message,
		StaffOverride: true,
		ForcedBoatID:  r.BoatID,
	}
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	PublicReference string  `json:"publicReference"`
	BoatID          int64   `json:"boatId"`
	BoatName        string  `json:"boatName"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	People          int     `json:"people"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
}

// StaffCreateBookingResponse HTTP response model
// Цепочка для большой группы возвращает несколько бронирований
type StaffCreateBookingResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *StaffCreateBookingResponse {
	out := &StaffCreateBookingResponse{Bookings: make([]BookingResponse, 0, len(resp.Bookings))}
	for _, b := range resp.Bookings {
		out.Bookings = append(out.Bookings, BookingResponse{
			ID:              b.ID,
			PublicReference: b.PublicReference,
			BoatID:          b.BoatID,
			BoatName:        b.BoatName,
			Date:            b.Date,
			StartTime:       b.StartTime,
			EndTime:         b.EndTime,
			People:          b.People,
			TotalPrice:      b.TotalPrice,
			Status:          b.Status,
		})
	}
	return out
}
