package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWallTime(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		wantHour   int
		wantMinute int
	}{
		{name: "normal", input: "10:20", wantHour: 10, wantMinute: 20},
		{name: "hour only", input: "7", wantHour: 7, wantMinute: 0},
		{name: "empty", input: "", wantHour: 0, wantMinute: 0},
		{name: "garbled minutes", input: "10:xx", wantHour: 10, wantMinute: 0},
		{name: "garbled hours", input: "xx:30", wantHour: 0, wantMinute: 30},
		{name: "spaces", input: " 9 : 05 ", wantHour: 9, wantMinute: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hour, minute := ParseWallTime(tc.input)
			assert.Equal(t, tc.wantHour, hour)
			assert.Equal(t, tc.wantMinute, minute)
		})
	}
}

func TestToInstant_SeasonalOffset(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	// Зимой Париж UTC+1
	winter := ToInstant("2025-01-15", "10:00", loc)
	assert.Equal(t, "2025-01-15T09:00:00Z", winter.UTC().Format(time.RFC3339))

	// Летом Париж UTC+2: бронирование, сделанное зимой на летнюю дату,
	// обязано использовать летнее смещение
	summer := ToInstant("2025-07-15", "10:00", loc)
	assert.Equal(t, "2025-07-15T08:00:00Z", summer.UTC().Format(time.RFC3339))
}

func TestToInstant_PermissiveDefaults(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	// Отсутствующие компоненты времени становятся нулями
	instant := ToInstant("2025-07-15", "", loc)
	assert.Equal(t, 0, instant.Hour())
	assert.Equal(t, 0, instant.Minute())
}

func TestDayBounds(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	start, end := DayBounds("2025-12-25", loc)
	assert.Equal(t, "2025-12-25T00:00:00+01:00", start.Format(time.RFC3339))
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.True(t, end.After(start))
}

func TestIsSameCivilDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	// 23:30 UTC 14-го июля - это уже 15-е июля в Париже (UTC+2)
	lateUTC := time.Date(2025, 7, 14, 23, 30, 0, 0, time.UTC)
	parisMorning := ToInstant("2025-07-15", "10:00", loc)

	assert.True(t, IsSameCivilDay(lateUTC, parisMorning, loc))
	assert.False(t, IsSameCivilDay(lateUTC, parisMorning, time.UTC))
}
