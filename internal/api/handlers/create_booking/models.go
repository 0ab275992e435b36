package create_booking

import (
	createBooking "github.com/sweetnarcisse/SN-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date     string  `json:"date"` // "2025-07-15"
	Time     string  `json:"time"` // "10:20"
	Adults   int     `json:"adults"`
	Children int     `json:"children"`
	Babies   int     `json:"babies"`
	Language string  `json:"language"`
	Private  bool    `json:"private,omitempty"`
	Message  *string `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:   userID,
		Date:     r.Date,
		Time:     r.Time,
		Adults:   r.Adults,
		Children: r.Children,
		Babies:   r.Babies,
		Language: r.Language,
		Private:  r.Private,
		Message:  r.Message,
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

// CreateBookingResponse HTTP response model
// Клиентский путь всегда создаёт ровно одно бронирование
type CreateBookingResponse struct {
	Booking BookingResponse `json:"booking"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{Booking: toBookingResponse(resp.Bookings[0])}
}

func toBookingResponse(b createBooking.CreatedBooking) BookingResponse {
	return BookingResponse{
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
	}
}
