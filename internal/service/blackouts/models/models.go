package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
	"github.com/sweetnarcisse/SN-BookingService/internal/schedule"
	"github.com/sweetnarcisse/SN-BookingService/pkg/types"
)

// Request модели

// ListBlackoutsRequest запрос на список блокировок за период
type ListBlackoutsRequest struct {
	From string `json:"from"` // "2025-07-01"
	To   string `json:"to"`   // "2025-07-31"
}

// Validate проверяет формат и порядок дат периода
func (r *ListBlackoutsRequest) Validate() error {
	from, err := time.Parse(domain.DateFormat, r.From)
	if err != nil {
		return fmt.Errorf("from must be in YYYY-MM-DD format")
	}
	to, err := time.Parse(domain.DateFormat, r.To)
	if err != nil {
		return fmt.Errorf("to must be in YYYY-MM-DD format")
	}
	if to.Before(from) {
		return fmt.Errorf("to must not be before from")
	}
	return nil
}

// CreateBlackoutRequest запрос на создание интервала блокировки
// Для scope=day достаточно даты; для scope=time обязательны startTime и endTime
type CreateBlackoutRequest struct {
	Scope     string `json:"scope"` // "day" | "time"
	Date      string `json:"date"`  // "2025-07-15"
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// ToDomain валидирует запрос и конвертирует его в доменный интервал
func (r *CreateBlackoutRequest) ToDomain(loc *time.Location) (*domain.BlackoutInterval, error) {
	scope := domain.BlockScope(strings.ToLower(r.Scope))
	if !domain.ValidBlockScope(scope) {
		return nil, fmt.Errorf("unknown scope %q", r.Scope)
	}

	if _, err := time.Parse(domain.DateFormat, r.Date); err != nil {
		return nil, fmt.Errorf("date must be in YYYY-MM-DD format")
	}

	reason := strings.TrimSpace(r.Reason)
	if len(reason) > domain.MaxBlackoutReasonLength {
		return nil, fmt.Errorf("reason exceeds %d characters", domain.MaxBlackoutReasonLength)
	}

	block := &domain.BlackoutInterval{
		Scope:  scope,
		Reason: reason,
	}

	switch scope {
	case domain.BlockScopeDay:
		block.StartTime, block.EndTime = schedule.DayBounds(r.Date, loc)
	case domain.BlockScopeTime:
		if err := types.TimeString(r.StartTime).Validate(); err != nil {
			return nil, fmt.Errorf("startTime must be in HH:MM format")
		}
		if err := types.TimeString(r.EndTime).Validate(); err != nil {
			return nil, fmt.Errorf("endTime must be in HH:MM format")
		}
		block.StartTime = schedule.ToInstant(r.Date, r.StartTime, loc)
		block.EndTime = schedule.ToInstant(r.Date, r.EndTime, loc)
		if !block.StartTime.Before(block.EndTime) {
			return nil, fmt.Errorf("startTime must be before endTime")
		}
	}

	return block, nil
}

// Response модели

// BlackoutResponse ответ с данными интервала блокировки
type BlackoutResponse struct {
	ID        int64  `json:"id"`
	Scope     string `json:"scope"`
	Date      string `json:"date"`      // "2025-07-15"
	StartTime string `json:"startTime"` // ISO 8601
	EndTime   string `json:"endTime"`   // ISO 8601
	Reason    string `json:"reason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// BlackoutListResponse ответ со списком интервалов блокировки
type BlackoutListResponse struct {
	Blackouts []BlackoutResponse `json:"blackouts"`
}

// FromDomainBlackout конвертирует доменный интервал в response модель
func FromDomainBlackout(b *domain.BlackoutInterval, loc *time.Location) *BlackoutResponse {
	return &BlackoutResponse{
		ID:        b.ID,
		Scope:     string(b.Scope),
		Date:      b.StartTime.In(loc).Format(domain.DateFormat),
		StartTime: b.StartTime.In(loc).Format(time.RFC3339),
		EndTime:   b.EndTime.In(loc).Format(time.RFC3339),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlackoutList конвертирует список доменных интервалов в response модель
func FromDomainBlackoutList(blocks []*domain.BlackoutInterval, loc *time.Location) *BlackoutListResponse {
	resp := &BlackoutListResponse{Blackouts: make([]BlackoutResponse, 0, len(blocks))}
	for _, b := range blocks {
		resp.Blackouts = append(resp.Blackouts, *FromDomainBlackout(b, loc))
	}
	return resp
}
