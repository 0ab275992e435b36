package domain

import "time"

// BoatStatus represents the operational status of a boat
type BoatStatus string

const (
	BoatStatusActive      BoatStatus = "ACTIVE"
	BoatStatusInactive    BoatStatus = "INACTIVE"
	BoatStatusMaintenance BoatStatus = "MAINTENANCE"
)

// Boat represents a vessel of the fleet
// Только активные барки участвуют в ротации; смена статуса не затрагивает
// уже созданные бронирования
type Boat struct {
	ID       int64
	Name     string
	Capacity int
	Status   BoatStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the boat participates in rotation
func (b *Boat) IsActive() bool {
	return b.Status == BoatStatusActive
}

// ValidBoatStatus проверяет, что статус барки допустим
func ValidBoatStatus(s BoatStatus) bool {
	switch s {
	case BoatStatusActive, BoatStatusInactive, BoatStatusMaintenance:
		return true
	default:
		return false
	}
}
