package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
	"github.com/sweetnarcisse/SN-BookingService/internal/schedule"
)

// validateRequest валидирует входные данные запроса
// Формат даты проверяется строго здесь, на границе - дальше по движку
// значения идут уже проверенными
func validateRequest(req *Request, now time.Time, loc *time.Location) error {
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	// Дата в прошлом (по календарному дню причала)
	dayStart, _ := schedule.DayBounds(req.Date, loc)
	if dayStart.Before(now) && !schedule.IsSameCivilDay(dayStart, now, loc) {
		return ErrInvalidDate
	}

	if req.Adults < 0 || req.Children < 0 || req.Babies < 0 {
		return fmt.Errorf("%w: passenger counts must not be negative", ErrInvalidInput)
	}
	if req.People() < 1 {
		return fmt.Errorf("%w: at least one passenger is required", ErrInvalidInput)
	}
	if req.People() > domain.MaxPartySize {
		return fmt.Errorf("%w: party size exceeds %d", ErrInvalidInput, domain.MaxPartySize)
	}

	if strings.TrimSpace(req.Language) == "" {
		return fmt.Errorf("%w: language is required", ErrInvalidInput)
	}

	return nil
}
