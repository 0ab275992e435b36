package schedule

import (
	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
	"github.com/sweetnarcisse/SN-BookingService/pkg/types"
)

// AssignBoat детерминированно назначает барку на настенное время отправления
//
// Позиция внутри цикла ротации (тур + буфер) вычисляется как
// (минуты с открытия) mod (длина цикла); индекс барки - позиция этого смещения
// в упорядоченном списке RotationOffsets, взятая по модулю размера флота.
//
// Назначение stateless и идемпотентно: одна и та же пара (день, время) всегда
// даёт одну и ту же барку без какого-либо сохранённого счётчика "чья очередь"
//
// Возвращает false, если время не выровнено ни на одно смещение ротации
// или флот пуст
func AssignBoat(timeOfDay types.TimeString, cfg *domain.ScheduleConfig, fleetSize int) (int, bool) {
	if fleetSize <= 0 {
		return 0, false
	}

	minutes, err := timeOfDay.Minutes()
	if err != nil {
		return 0, false
	}
	openMinutes, err := cfg.OpenTime.Minutes()
	if err != nil {
		return 0, false
	}

	cycle := cfg.CycleMinutes()
	elapsed := minutes - openMinutes
	cyclePosition := ((elapsed % cycle) + cycle) % cycle

	for i, offset := range cfg.RotationOffsets {
		if offset == cyclePosition {
			return i % fleetSize, true
		}
	}

	return 0, false
}
