package domain

import "time"

// BlockScope represents the scope of a blackout interval
type BlockScope string

const (
	// BlockScopeDay блокирует весь календарный день независимо от времени
	BlockScopeDay BlockScope = "day"
	// BlockScopeTime блокирует конкретный интервал времени
	BlockScopeTime BlockScope = "time"
)

// BlackoutInterval represents an operator-defined interval during which
// no departures may be booked
type BlackoutInterval struct {
	ID        int64
	Scope     BlockScope
	StartTime time.Time
	EndTime   time.Time
	Reason    string

	CreatedAt time.Time
}

// ValidBlockScope проверяет, что scope допустим
func ValidBlockScope(s BlockScope) bool {
	return s == BlockScopeDay || s == BlockScopeTime
}
