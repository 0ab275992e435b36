package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
	"github.com/sweetnarcisse/SN-BookingService/internal/schedule"
	"github.com/sweetnarcisse/SN-BookingService/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (r *fakeBookingRepo) GetByDayWithFilter(_ context.Context, _ domain.DayBookingsFilter) ([]*domain.Booking, error) {
	return r.bookings, r.err
}

type fakeFleet struct {
	boats []*domain.Boat
	err   error
}

func (f *fakeFleet) ActiveFleet(_ context.Context) ([]*domain.Boat, error) {
	return f.boats, f.err
}

type fakeBlackouts struct {
	blocks []domain.BlackoutInterval
	err    error
}

func (b *fakeBlackouts) ListForDay(_ context.Context, _ string) ([]domain.BlackoutInterval, error) {
	return b.blocks, b.err
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Хелперы

func testScheduleConfig(t *testing.T) *domain.ScheduleConfig {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	cfg := &domain.ScheduleConfig{
		Location:  loc,
		OpenTime:  "10:00",
		CloseTime: "18:00",
		MorningWindow: domain.TimeWindow{
			Start: "10:00",
			End:   "11:45",
		},
		AfternoonWindow: domain.TimeWindow{
			Start: "13:30",
			End:   "17:45",
		},
		DepartureIntervalMinutes: 10,
		TourDurationMinutes:      25,
		BufferMinutes:            5,
		RotationOffsets:          []int{0, 10, 20},
		MinLeadTimeMinutes:       5,
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func testFleet() []*domain.Boat {
	return []*domain.Boat{
		{ID: 1, Name: "Narcisse", Capacity: 12, Status: domain.BoatStatusActive},
		{ID: 2, Name: "Iris", Capacity: 12, Status: domain.BoatStatusActive},
		{ID: 3, Name: "Eglantine", Capacity: 12, Status: domain.BoatStatusActive},
	}
}

func testPricing() domain.Pricing {
	return domain.Pricing{Adult: 9, Child: 4, Baby: 0}
}

func newTestUseCase(
	t *testing.T,
	bookings []*domain.Booking,
	boats []*domain.Boat,
	blocks []domain.BlackoutInterval,
	now time.Time,
) *UseCase {
	t.Helper()
	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeFleet{boats: boats},
		&fakeBlackouts{blocks: blocks},
		testScheduleConfig(t),
		testPricing(),
		nopLogger{},
	)
	uc.timeProvider = &fakeClock{now: now}
	return uc
}

func parisTime(t *testing.T, date, timeOfDay string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	return schedule.ToInstant(date, timeOfDay, loc)
}

func slotTimes(slots []Slot) []types.TimeString {
	result := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.Time)
	}
	return result
}

// Тесты

func TestExecute_EmptyDay(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	uc := newTestUseCase(t, nil, testFleet(), nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: "2025-07-15", Adults: 2, Children: 1, Language: "FR",
	})
	require.NoError(t, err)

	// 11 утренних + 26 дневных кандидатов, все свободны
	assert.Len(t, resp.Slots, 37)
	assert.Empty(t, resp.BlockedReason)
	assert.Equal(t, float64(2*9+1*4), resp.TotalPrice)

	first := resp.Slots[0]
	assert.Equal(t, types.TimeString("10:00"), first.Time)
	assert.Equal(t, int64(1), first.BoatID)
	assert.Equal(t, "Narcisse", first.BoatName)
	assert.Equal(t, 12, first.SeatsLeft)

	// Ротация: следующие кандидаты уходят следующим баркам
	assert.Equal(t, int64(2), resp.Slots[1].BoatID)
	assert.Equal(t, int64(3), resp.Slots[2].BoatID)
	assert.Equal(t, int64(1), resp.Slots[3].BoatID)
}

func TestExecute_DayBlocked(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	dayStart := parisTime(t, "2025-07-15", "00:00")
	blocks := []domain.BlackoutInterval{{
		Scope:     domain.BlockScopeDay,
		StartTime: dayStart,
		EndTime:   dayStart.Add(24*time.Hour - time.Millisecond),
		Reason:    "Maintenance annuelle",
	}}
	uc := newTestUseCase(t, nil, testFleet(), blocks, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: "2025-07-15", Adults: 2, Language: "FR",
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, "Maintenance annuelle", resp.BlockedReason)
}

func TestExecute_WindowBlackout(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	blocks := []domain.BlackoutInterval{{
		Scope:     domain.BlockScopeTime,
		StartTime: parisTime(t, "2025-07-15", "14:00"),
		EndTime:   parisTime(t, "2025-07-15", "15:00"),
		Reason:    "Passage du jury",
	}}
	uc := newTestUseCase(t, nil, testFleet(), blocks, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: "2025-07-15", Adults: 1, Language: "FR",
	})
	require.NoError(t, err)

	// Вырезаны кандидаты, чей рейс пересекает блокировку: 13:40..14:50
	assert.Len(t, resp.Slots, 29)
	times := slotTimes(resp.Slots)
	assert.Contains(t, times, types.TimeString("13:30"))
	assert.NotContains(t, times, types.TimeString("13:40"))
	assert.NotContains(t, times, types.TimeString("14:00"))
	assert.NotContains(t, times, types.TimeString("14:50"))
	assert.Contains(t, times, types.TimeString("15:00"))
	assert.Empty(t, resp.BlockedReason)
}

func TestExecute_BufferTailBlackout(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	// Блокировка накрывает только буфер рейса 10:00 (тур 10:00-10:25, буфер до 10:30)
	blocks := []domain.BlackoutInterval{{
		Scope:     domain.BlockScopeTime,
		StartTime: parisTime(t, "2025-07-15", "10:25"),
		EndTime:   parisTime(t, "2025-07-15", "10:30"),
	}}
	uc := newTestUseCase(t, nil, testFleet(), blocks, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: "2025-07-15", Adults: 1, Language: "FR",
	})
	require.NoError(t, err)

	times := slotTimes(resp.Slots)
	assert.NotContains(t, times, types.TimeString("10:00"))
	assert.NotContains(t, times, types.TimeString("10:10"))
	assert.NotContains(t, times, types.TimeString("10:20"))
	assert.Contains(t, times, types.TimeString("10:30"))
	assert.Len(t, resp.Slots, 34)
}

func TestExecute_RepeatedReadsIdentical(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	start := parisTime(t, "2025-07-15", "10:00")
	existing := []*domain.Booking{{
		BoatID:    1,
		StartTime: start,
		EndTime:   start.Add(25 * time.Minute),
		Language:  "FR",
		People:    5,
		Status:    domain.StatusConfirmed,
	}}
	blocks := []domain.BlackoutInterval{{
		Scope:     domain.BlockScopeTime,
		StartTime: parisTime(t, "2025-07-15", "14:00"),
		EndTime:   parisTime(t, "2025-07-15", "15:00"),
	}}
	uc := newTestUseCase(t, existing, testFleet(), blocks, now)

	// Слоты нигде не сохраняются: повторный запрос по неизменному
	// состоянию даёт в точности тот же ответ
	req := &Request{Date: "2025-07-15", Adults: 2, Children: 1, Language: "FR"}
	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecute_LeadTimeToday(t *testing.T) {
	// Сейчас 10:02, минимальный интервал 5 минут: рейс 10:00 уже недоступен
	now := parisTime(t, "2025-07-15", "10:02")
	uc := newTestUseCase(t, nil, testFleet(), nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: "2025-07-15", Adults: 1, Language: "FR",
	})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 36)
	assert.Equal(t, types.TimeString("10:10"), resp.Slots[0].Time)
}

func TestExecute_JoinReducesSeats(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	start := parisTime(t, "2025-07-15", "10:00")
	existing := []*domain.Booking{{
		BoatID:    1,
		StartTime: start,
		EndTime:   start.Add(25 * time.Minute),
		Language:  "FR",
		People:    5,
		Status:    domain.StatusConfirmed,
	}}

	// Группа с тем же языком видит слот с уменьшенными местами
	uc := newTestUseCase(t, existing, testFleet(), nil, now)
	resp, err := uc.Execute(context.Background(), &Request{
		Date: "2025-07-15", Adults: 2, Language: "FR",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 37)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].Time)
	assert.Equal(t, 7, resp.Slots[0].SeatsLeft)

	// Регистр языка не влияет на объединение
	resp, err = uc.Execute(context.Background(), &Request{
		Date: "2025-07-15", Adults: 2, Language: "fr",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Slots[0].SeatsLeft)

	// Группа с другим языком этот слот не видит
	resp, err = uc.Execute(context.Background(), &Request{
		Date: "2025-07-15", Adults: 2, Language: "EN",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 36)
	assert.NotContains(t, slotTimes(resp.Slots), types.TimeString("10:00"))
}

func TestExecute_PrivateBookingHidesSlot(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	start := parisTime(t, "2025-07-15", "10:00")
	existing := []*domain.Booking{{
		BoatID:    1,
		StartTime: start,
		EndTime:   start.Add(25 * time.Minute),
		Language:  "FR",
		People:    12,
		IsPrivate: true,
		Status:    domain.StatusConfirmed,
	}}
	uc := newTestUseCase(t, existing, testFleet(), nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: "2025-07-15", Adults: 1, Language: "FR",
	})
	require.NoError(t, err)
	assert.NotContains(t, slotTimes(resp.Slots), types.TimeString("10:00"))
}

func TestExecute_NoActiveBoats(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	uc := newTestUseCase(t, nil, nil, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: "2025-07-15", Adults: 1, Language: "FR",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, resp.BlockedReason)
}

func TestExecute_PastDate(t *testing.T) {
	now := parisTime(t, "2025-07-15", "12:00")
	uc := newTestUseCase(t, nil, testFleet(), nil, now)

	_, err := uc.Execute(context.Background(), &Request{
		Date: "2025-07-14", Adults: 1, Language: "FR",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	uc := newTestUseCase(t, nil, testFleet(), nil, now)

	testCases := []struct {
		name string
		req  *Request
	}{
		{"bad date format", &Request{Date: "15/07/2025", Adults: 1, Language: "FR"}},
		{"no passengers", &Request{Date: "2025-07-15", Language: "FR"}},
		{"negative count", &Request{Date: "2025-07-15", Adults: -1, Children: 2, Language: "FR"}},
		{"party too large", &Request{Date: "2025-07-15", Adults: 101, Language: "FR"}},
		{"missing language", &Request{Date: "2025-07-15", Adults: 2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_BlockedReasonWhenNoSlots(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	blocks := []domain.BlackoutInterval{{
		Scope:     domain.BlockScopeTime,
		StartTime: parisTime(t, "2025-07-15", "09:00"),
		EndTime:   parisTime(t, "2025-07-15", "19:00"),
		Reason:    "Crue de la Seine",
	}}
	uc := newTestUseCase(t, nil, testFleet(), blocks, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: "2025-07-15", Adults: 1, Language: "FR",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, "Crue de la Seine", resp.BlockedReason)
}
