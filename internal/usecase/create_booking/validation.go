package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
	"github.com/sweetnarcisse/SN-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Форматы даты и времени проверяются строго: дальше по пути записи значения
// идут уже проверенными и разбираются мягким парсером без повторных проверок
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}
	if err := types.TimeString(req.Time).Validate(); err != nil {
		return fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
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

	if req.Message != nil && len(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	if req.ForcedBoatID != nil && !req.StaffOverride {
		return fmt.Errorf("%w: boat selection requires staff privileges", ErrInvalidInput)
	}

	return nil
}
