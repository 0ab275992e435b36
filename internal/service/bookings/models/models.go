package models

import (
	"fmt"
	"time"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	IsStaff            bool   `json:"-"`
	CancellationReason string `json:"cancellationReason"`
}

// GetPlanningRequest запрос на планирование причала на день
type GetPlanningRequest struct {
	Date            string `json:"date"` // "2025-07-15"
	BoatID          *int64 `json:"boatId,omitempty"`
	IncludeInactive bool   `json:"includeInactive,omitempty"`
}

// Validate проверяет формат даты запроса
func (r *GetPlanningRequest) Validate() error {
	if _, err := time.Parse(domain.DateFormat, r.Date); err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	return nil
}

// Response модели

// BookingResponse ответ с данными бронирования
// Время отправления отдаётся и как настенное время причала, и как
// абсолютный момент - фронту нужны оба представления
type BookingResponse struct {
	ID              int64  `json:"id"`
	PublicReference string `json:"publicReference"`
	UserID          int64  `json:"userId"`
	BoatID          int64  `json:"boatId"`
	Date            string `json:"date"`      // "2025-07-15"
	StartTime       string `json:"startTime"` // "10:20"
	EndTime         string `json:"endTime"`   // "10:45"
	StartsAt        string `json:"startsAt"`  // ISO 8601
	Language        string `json:"language"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	Babies          int    `json:"babies"`
	People          int    `json:"people"`
	IsPrivate       bool   `json:"isPrivate"`

	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`

	Message            *string `json:"message,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует доменное бронирование в response модель
// Настенное время форматируется в таймзоне причала независимо от того,
// в какой зоне момент хранится в БД
func FromDomainBooking(b *domain.Booking, loc *time.Location) *BookingResponse {
	resp := &BookingResponse{
		ID:              b.ID,
		PublicReference: b.PublicReference,
		UserID:          b.UserID,
		BoatID:          b.BoatID,
		Date:            b.StartTime.In(loc).Format(domain.DateFormat),
		StartTime:       b.StartTime.In(loc).Format(domain.TimeFormat),
		EndTime:         b.EndTime.In(loc).Format(domain.TimeFormat),
		StartsAt:        b.StartTime.In(loc).Format(time.RFC3339),
		Language:        b.Language,
		Adults:          b.Adults,
		Children:        b.Children,
		Babies:          b.Babies,
		People:          b.People,
		IsPrivate:       b.IsPrivate,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		Message:         b.Message,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	resp.CancellationReason = b.CancellationReason
	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.In(loc).Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList конвертирует список доменных бронирований в response модель
func FromDomainBookingList(bookings []*domain.Booking, loc *time.Location) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b, loc))
	}
	return resp
}
