package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
)

// testConfig возвращает конфигурацию, совпадающую с боевой (config.toml)
func testConfig(t *testing.T) *domain.ScheduleConfig {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	cfg := &domain.ScheduleConfig{
		Location:                 loc,
		OpenTime:                 "10:00",
		CloseTime:                "18:00",
		MorningWindow:            domain.TimeWindow{Start: "10:00", End: "11:45"},
		AfternoonWindow:          domain.TimeWindow{Start: "13:30", End: "17:45"},
		DepartureIntervalMinutes: 10,
		TourDurationMinutes:      25,
		BufferMinutes:            5,
		RotationOffsets:          []int{0, 10, 20},
		MinLeadTimeMinutes:       5,
	}
	require.NoError(t, cfg.Validate())
	return cfg
}
