package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
)

// Request модели

// CreateBoatRequest запрос на создание барки
type CreateBoatRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status,omitempty"`
}

// ToDomain валидирует запрос и конвертирует его в доменную барку
func (r *CreateBoatRequest) ToDomain() (*domain.Boat, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > domain.MaxBoatNameLength {
		return nil, fmt.Errorf("name exceeds %d characters", domain.MaxBoatNameLength)
	}

	capacity := r.Capacity
	if capacity == 0 {
		capacity = domain.DefaultBoatCapacity
	}
	if capacity < domain.MinBoatCapacity || capacity > domain.MaxBoatCapacity {
		return nil, fmt.Errorf("capacity must be between %d and %d", domain.MinBoatCapacity, domain.MaxBoatCapacity)
	}

	status := domain.BoatStatusActive
	if r.Status != "" {
		status = domain.BoatStatus(strings.ToUpper(r.Status))
		if !domain.ValidBoatStatus(status) {
			return nil, fmt.Errorf("unknown boat status %q", r.Status)
		}
	}

	return &domain.Boat{
		Name:     name,
		Capacity: capacity,
		Status:   status,
	}, nil
}

// UpdateBoatRequest запрос на частичное обновление барки
// Неуказанные поля не меняются
type UpdateBoatRequest struct {
	Name     *string `json:"name,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// ApplyTo валидирует запрос и применяет изменения к доменной барке
func (r *UpdateBoatRequest) ApplyTo(boat *domain.Boat) error {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return fmt.Errorf("name must not be empty")
		}
		if len(name) > domain.MaxBoatNameLength {
			return fmt.Errorf("name exceeds %d characters", domain.MaxBoatNameLength)
		}
		boat.Name = name
	}

	if r.Capacity != nil {
		if *r.Capacity < domain.MinBoatCapacity || *r.Capacity > domain.MaxBoatCapacity {
			return fmt.Errorf("capacity must be between %d and %d", domain.MinBoatCapacity, domain.MaxBoatCapacity)
		}
		boat.Capacity = *r.Capacity
	}

	if r.Status != nil {
		status := domain.BoatStatus(strings.ToUpper(*r.Status))
		if !domain.ValidBoatStatus(status) {
			return fmt.Errorf("unknown boat status %q", *r.Status)
		}
		boat.Status = status
	}

	return nil
}

// Response модели

// BoatResponse ответ с данными барки
type BoatResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BoatListResponse ответ со списком барок
type BoatListResponse struct {
	Boats []BoatResponse `json:"boats"`
}

// FromDomainBoat конвертирует доменную барку в response модель
func FromDomainBoat(boat *domain.Boat) *BoatResponse {
	return &BoatResponse{
		ID:        boat.ID,
		Name:      boat.Name,
		Capacity:  boat.Capacity,
		Status:    string(boat.Status),
		CreatedAt: boat.CreatedAt,
		UpdatedAt: boat.UpdatedAt,
	}
}

// FromDomainBoatList конвертирует список доменных барок в response модель
func FromDomainBoatList(boats []*domain.Boat) *BoatListResponse {
	resp := &BoatListResponse{Boats: make([]BoatResponse, 0, len(boats))}
	for _, boat := range boats {
		resp.Boats = append(resp.Boats, *FromDomainBoat(boat))
	}
	return resp
}
