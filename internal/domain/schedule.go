package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/sweetnarcisse/SN-BookingService/pkg/types"
)

// TimeWindow окно обслуживания в настенном времени (границы включительно)
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// Contains возвращает true, если minutes (минуты с начала суток) попадает в окно
func (w TimeWindow) Contains(minutes int) bool {
	start, errS := w.Start.Minutes()
	end, errE := w.End.Minutes()
	if errS != nil || errE != nil {
		return false
	}
	return minutes >= start && minutes <= end
}

// ScheduleConfig статическая конфигурация расписания отправлений (см. config.toml)
// Всё настенное время интерпретируется в фиксированной таймзоне оператора
type ScheduleConfig struct {
	Location *time.Location

	OpenTime  types.TimeString
	CloseTime types.TimeString

	MorningWindow   TimeWindow
	AfternoonWindow TimeWindow

	DepartureIntervalMinutes int   // шаг перебора кандидатов
	TourDurationMinutes      int   // длительность тура
	BufferMinutes            int   // буфер между турами
	RotationOffsets          []int // смещения барок внутри цикла ротации, по возрастанию

	MinLeadTimeMinutes int // минимальный интервал до отправления при бронировании "на сегодня"
}

// CycleMinutes длина цикла ротации: тур + буфер
func (c *ScheduleConfig) CycleMinutes() int {
	return c.TourDurationMinutes + c.BufferMinutes
}

// InServiceWindow возвращает true, если minutes попадает в одно из окон обслуживания
func (c *ScheduleConfig) InServiceWindow(minutes int) bool {
	return c.MorningWindow.Contains(minutes) || c.AfternoonWindow.Contains(minutes)
}

// Validate проверяет согласованность конфигурации расписания
// Ошибки конфигурации фатальны и обнаруживаются при старте сервиса
func (c *ScheduleConfig) Validate() error {
	if c.Location == nil {
		return fmt.Errorf("schedule config: timezone is required")
	}
	if err := c.OpenTime.Validate(); err != nil {
		return fmt.Errorf("schedule config: invalid open_time: %w", err)
	}
	if err := c.CloseTime.Validate(); err != nil {
		return fmt.Errorf("schedule config: invalid close_time: %w", err)
	}
	if !c.OpenTime.IsBefore(c.CloseTime) {
		return fmt.Errorf("schedule config: open_time must be before close_time")
	}

	for _, w := range []struct {
		name   string
		window TimeWindow
	}{
		{"morning", c.MorningWindow},
		{"afternoon", c.AfternoonWindow},
	} {
		if err := w.window.Start.Validate(); err != nil {
			return fmt.Errorf("schedule config: invalid %s window start: %w", w.name, err)
		}
		if err := w.window.End.Validate(); err != nil {
			return fmt.Errorf("schedule config: invalid %s window end: %w", w.name, err)
		}
		if w.window.End.IsBefore(w.window.Start) {
			return fmt.Errorf("schedule config: %s window end before start", w.name)
		}
	}

	if c.DepartureIntervalMinutes <= 0 {
		return fmt.Errorf("schedule config: departure_interval_minutes must be positive")
	}
	if c.TourDurationMinutes <= 0 {
		return fmt.Errorf("schedule config: tour_duration_minutes must be positive")
	}
	if c.BufferMinutes < 0 {
		return fmt.Errorf("schedule config: buffer_minutes must not be negative")
	}
	if c.MinLeadTimeMinutes < 0 {
		return fmt.Errorf("schedule config: min_lead_time_minutes must not be negative")
	}

	if len(c.RotationOffsets) == 0 {
		return fmt.Errorf("schedule config: rotation_offsets must not be empty")
	}
	if !sort.IntsAreSorted(c.RotationOffsets) {
		return fmt.Errorf("schedule config: rotation_offsets must be sorted ascending")
	}
	cycle := c.CycleMinutes()
	seen := make(map[int]struct{}, len(c.RotationOffsets))
	for _, offset := range c.RotationOffsets {
		if offset < 0 || offset >= cycle {
			return fmt.Errorf("schedule config: rotation offset %d outside cycle of %d minutes", offset, cycle)
		}
		if _, ok := seen[offset]; ok {
			return fmt.Errorf("schedule config: duplicate rotation offset %d", offset)
		}
		seen[offset] = struct{}{}
	}

	return nil
}
