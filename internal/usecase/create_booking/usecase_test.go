package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
	bookingRepo "github.com/sweetnarcisse/SN-BookingService/internal/infra/storage/booking"
	"github.com/sweetnarcisse/SN-BookingService/internal/schedule"
	"github.com/sweetnarcisse/SN-BookingService/pkg/ptr"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	conflicts    []*domain.Booking
	conflictsErr error
	createErr    error

	created []*domain.Booking
	nextID  int64
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	booking.ID = r.nextID
	r.created = append(r.created, booking)
	return booking, nil
}

func (r *fakeBookingRepo) GetConflicts(_ context.Context, boatID int64, from, to time.Time) ([]*domain.Booking, error) {
	if r.conflictsErr != nil {
		return nil, r.conflictsErr
	}
	result := make([]*domain.Booking, 0)
	for _, b := range r.conflicts {
		if b.BoatID == boatID && b.StartTime.Before(to) && b.EndTime.After(from) {
			result = append(result, b)
		}
	}
	return result, nil
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

// fakeTxManager выполняет fn без реальной транзакции; commitErr имитирует
// ошибку, всплывающую на commit
type fakeTxManager struct {
	commitErr error
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return m.commitErr
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

type testEnv struct {
	uc        *UseCase
	repo      *fakeBookingRepo
	txManager *fakeTxManager
}

func newTestEnv(t *testing.T, boats []*domain.Boat, blocks []domain.BlackoutInterval, now time.Time) *testEnv {
	t.Helper()
	repo := &fakeBookingRepo{}
	txManager := &fakeTxManager{}
	uc := NewUseCase(
		repo,
		&fakeFleet{boats: boats},
		&fakeBlackouts{blocks: blocks},
		txManager,
		testScheduleConfig(t),
		domain.Pricing{Adult: 9, Child: 4, Baby: 0},
		nopLogger{},
	)
	uc.timeProvider = &fakeClock{now: now}
	return &testEnv{uc: uc, repo: repo, txManager: txManager}
}

func parisTime(t *testing.T, date, timeOfDay string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	return schedule.ToInstant(date, timeOfDay, loc)
}

func validRequest() *Request {
	return &Request{
		UserID:   42,
		Date:     "2025-07-15",
		Time:     "10:10",
		Adults:   2,
		Children: 1,
		Language: "fr",
	}
}

// Тесты

func TestExecute_CreatesBooking(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	env := newTestEnv(t, testFleet(), nil, now)

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	require.Len(t, env.repo.created, 1)

	created := env.repo.created[0]
	assert.Equal(t, int64(42), created.UserID)
	assert.NotEmpty(t, created.PublicReference)
	// 10:10 - второе смещение цикла, вторая барка ротации
	assert.Equal(t, int64(2), created.BoatID)
	assert.Equal(t, parisTime(t, "2025-07-15", "10:10"), created.StartTime)
	assert.Equal(t, parisTime(t, "2025-07-15", "10:35"), created.EndTime)
	assert.Equal(t, "FR", created.Language)
	assert.Equal(t, 3, created.People)
	assert.Equal(t, float64(2*9+1*4), created.TotalPrice)
	assert.Equal(t, domain.StatusConfirmed, created.Status)

	out := resp.Bookings[0]
	assert.Equal(t, created.ID, out.ID)
	assert.Equal(t, "Iris", out.BoatName)
	assert.Equal(t, "10:10", out.StartTime)
	assert.Equal(t, "10:35", out.EndTime)
}

func TestExecute_JoinSameLanguage(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	env := newTestEnv(t, testFleet(), nil, now)

	start := parisTime(t, "2025-07-15", "10:10")
	env.repo.conflicts = []*domain.Booking{{
		BoatID:    2,
		StartTime: start,
		EndTime:   start.Add(25 * time.Minute),
		Language:  "FR",
		People:    5,
		Status:    domain.StatusConfirmed,
	}}

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestExecute_AdmissionRejections(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	start := parisTime(t, "2025-07-15", "10:10")

	makeConflict := func(language string, people int, private bool, startTime time.Time) *domain.Booking {
		return &domain.Booking{
			BoatID:    2,
			StartTime: startTime,
			EndTime:   startTime.Add(25 * time.Minute),
			Language:  language,
			People:    people,
			IsPrivate: private,
			Status:    domain.StatusConfirmed,
		}
	}

	testCases := []struct {
		name     string
		conflict *domain.Booking
		mutate   func(*Request)
		wantErr  error
	}{
		{
			name:     "overlapping departure with different start",
			conflict: makeConflict("FR", 2, false, start.Add(-20*time.Minute)),
			wantErr:  ErrSlotTaken,
		},
		{
			name:     "language mismatch",
			conflict: makeConflict("EN", 2, false, start),
			wantErr:  ErrLanguageMismatch,
		},
		{
			name:     "existing privatization",
			conflict: makeConflict("FR", 12, true, start),
			wantErr:  ErrPrivacyConflict,
		},
		{
			name:     "privatization of occupied slot",
			conflict: makeConflict("FR", 2, false, start),
			mutate:   func(r *Request) { r.Private = true },
			wantErr:  ErrPrivacyConflict,
		},
		{
			name:     "capacity exceeded",
			conflict: makeConflict("FR", 11, false, start),
			wantErr:  ErrCapacityExceeded,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t, testFleet(), nil, now)
			env.repo.conflicts = []*domain.Booking{tc.conflict}

			req := validRequest()
			if tc.mutate != nil {
				tc.mutate(req)
			}

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, env.repo.created)
		})
	}
}

func TestExecute_StaffOverrideBypassesAdmission(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	env := newTestEnv(t, testFleet(), nil, now)

	start := parisTime(t, "2025-07-15", "10:10")
	env.repo.conflicts = []*domain.Booking{{
		BoatID:    2,
		StartTime: start,
		EndTime:   start.Add(25 * time.Minute),
		Language:  "EN",
		People:    12,
		IsPrivate: true,
		Status:    domain.StatusConfirmed,
	}}

	req := validRequest()
	req.StaffOverride = true

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestExecute_PastAndLeadTime(t *testing.T) {
	// Сейчас 10:07: рейс 10:00 в прошлом, рейс 10:10 ближе минимального интервала
	now := parisTime(t, "2025-07-15", "10:07")

	env := newTestEnv(t, testFleet(), nil, now)
	req := validRequest()
	req.Time = "10:00"
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	env = newTestEnv(t, testFleet(), nil, now)
	req = validRequest()
	req.Time = "10:10"
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)

	// Сотруднику минимальный интервал не мешает
	env = newTestEnv(t, testFleet(), nil, now)
	req = validRequest()
	req.Time = "10:10"
	req.StaffOverride = true
	_, err = env.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_OutsideServiceHours(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	env := newTestEnv(t, testFleet(), nil, now)

	req := validRequest()
	req.Time = "12:30" // обеденный перерыв
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideServiceHours)
}

func TestExecute_UnalignedTime(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	env := newTestEnv(t, testFleet(), nil, now)

	req := validRequest()
	req.Time = "10:05" // внутри окна, но мимо сетки отправлений
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_NoBoats(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	env := newTestEnv(t, nil, nil, now)

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoBoats)
}

func TestExecute_Blackouts(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	dayStart := parisTime(t, "2025-07-15", "00:00")

	t.Run("day scope blocks staff too", func(t *testing.T) {
		blocks := []domain.BlackoutInterval{{
			Scope:     domain.BlockScopeDay,
			StartTime: dayStart,
			EndTime:   dayStart.Add(24*time.Hour - time.Millisecond),
			Reason:    "Maintenance",
		}}
		env := newTestEnv(t, testFleet(), blocks, now)

		req := validRequest()
		req.StaffOverride = true
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotBlocked)
	})

	t.Run("time scope blocks overlapping departure", func(t *testing.T) {
		blocks := []domain.BlackoutInterval{{
			Scope:     domain.BlockScopeTime,
			StartTime: parisTime(t, "2025-07-15", "10:30"),
			EndTime:   parisTime(t, "2025-07-15", "11:00"),
		}}
		env := newTestEnv(t, testFleet(), blocks, now)

		// Рейс 10:10 заканчивается в 10:35 - пересекает блокировку
		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotBlocked)
	})

	t.Run("blocked buffer tail rejects departure", func(t *testing.T) {
		// Тур 10:10-10:35, буфер до 10:40: блокировка одного буфера запрещает рейс
		blocks := []domain.BlackoutInterval{{
			Scope:     domain.BlockScopeTime,
			StartTime: parisTime(t, "2025-07-15", "10:35"),
			EndTime:   parisTime(t, "2025-07-15", "10:40"),
		}}
		env := newTestEnv(t, testFleet(), blocks, now)

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotBlocked)
	})
}

func TestExecute_PrivateFillsBoat(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	env := newTestEnv(t, testFleet(), nil, now)

	req := validRequest()
	req.Adults, req.Children = 2, 0
	req.Private = true

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, env.repo.created, 1)

	created := env.repo.created[0]
	assert.True(t, created.IsPrivate)
	assert.Equal(t, 12, created.Adults)
	assert.Equal(t, 12, created.People)
	assert.Equal(t, float64(12*9), created.TotalPrice)
	assert.Equal(t, float64(12*9), resp.Bookings[0].TotalPrice)
}

func TestExecute_ForcedBoat(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")

	t.Run("staff picks a boat off rotation", func(t *testing.T) {
		env := newTestEnv(t, testFleet(), nil, now)
		req := validRequest()
		req.StaffOverride = true
		req.ForcedBoatID = ptr.Ptr(int64(3))

		resp, err := env.uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.Bookings[0].BoatID)
	})

	t.Run("unknown boat", func(t *testing.T) {
		env := newTestEnv(t, testFleet(), nil, now)
		req := validRequest()
		req.StaffOverride = true
		req.ForcedBoatID = ptr.Ptr(int64(99))

		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrBoatNotFound)
	})

	t.Run("clients cannot pick boats", func(t *testing.T) {
		env := newTestEnv(t, testFleet(), nil, now)
		req := validRequest()
		req.ForcedBoatID = ptr.Ptr(int64(2))

		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_CapacityExceededForClients(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	env := newTestEnv(t, testFleet(), nil, now)

	req := validRequest()
	req.Adults = 13

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_SlotRace(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")

	t.Run("unique violation on insert", func(t *testing.T) {
		env := newTestEnv(t, testFleet(), nil, now)
		env.repo.createErr = bookingRepo.ErrDuplicateSlot

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("serialization failure on commit", func(t *testing.T) {
		env := newTestEnv(t, testFleet(), nil, now)
		env.txManager.commitErr = &pq.Error{Code: "40001"}

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotConflict)
	})
}

func TestExecute_StaffChain(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	env := newTestEnv(t, testFleet(), nil, now)

	req := validRequest()
	req.Time = "10:00"
	req.Adults, req.Children = 28, 2
	req.StaffOverride = true

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 3)

	// Группа из 30 человек раскладывается по трём последовательным рейсам
	assert.Equal(t, "10:00", resp.Bookings[0].StartTime)
	assert.Equal(t, int64(1), resp.Bookings[0].BoatID)
	assert.Equal(t, 12, resp.Bookings[0].People)

	assert.Equal(t, "10:10", resp.Bookings[1].StartTime)
	assert.Equal(t, int64(2), resp.Bookings[1].BoatID)
	assert.Equal(t, 12, resp.Bookings[1].People)

	assert.Equal(t, "10:20", resp.Bookings[2].StartTime)
	assert.Equal(t, int64(3), resp.Bookings[2].BoatID)
	assert.Equal(t, 6, resp.Bookings[2].People)

	totalPeople := 0
	totalPrice := 0.0
	for _, b := range env.repo.created {
		totalPeople += b.People
		totalPrice += b.TotalPrice
	}
	assert.Equal(t, 30, totalPeople)
	assert.Equal(t, float64(28*9+2*4), totalPrice)
}

func TestExecute_StaffChainRespectsExistingBookings(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	env := newTestEnv(t, testFleet(), nil, now)

	// Рейс 10:10 (вторая барка) уже выкуплен обычным бронированием целиком
	taken := parisTime(t, "2025-07-15", "10:10")
	env.repo.conflicts = []*domain.Booking{{
		BoatID:    2,
		StartTime: taken,
		EndTime:   taken.Add(25 * time.Minute),
		Language:  "FR",
		People:    12,
		Status:    domain.StatusConfirmed,
	}}

	req := validRequest()
	req.Time = "10:00"
	req.Adults, req.Children = 20, 0
	req.StaffOverride = true

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)

	// Занятый рейс пропущен: хвост группы уезжает следующим кандидатом
	assert.Equal(t, "10:00", resp.Bookings[0].StartTime)
	assert.Equal(t, int64(1), resp.Bookings[0].BoatID)
	assert.Equal(t, 12, resp.Bookings[0].People)

	assert.Equal(t, "10:20", resp.Bookings[1].StartTime)
	assert.Equal(t, int64(3), resp.Bookings[1].BoatID)
	assert.Equal(t, 8, resp.Bookings[1].People)
}

func TestExecute_StaffChainJoinsPartiallyTakenSlot(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	env := newTestEnv(t, testFleet(), nil, now)

	// На рейсе 10:10 уже сидит группа из 7 - цепочке остаётся 5 мест
	taken := parisTime(t, "2025-07-15", "10:10")
	env.repo.conflicts = []*domain.Booking{{
		BoatID:    2,
		StartTime: taken,
		EndTime:   taken.Add(25 * time.Minute),
		Language:  "EN",
		People:    7,
		Status:    domain.StatusConfirmed,
	}}

	req := validRequest()
	req.Time = "10:00"
	req.Adults, req.Children = 20, 0
	req.StaffOverride = true

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 3)

	assert.Equal(t, 12, resp.Bookings[0].People)
	assert.Equal(t, "10:10", resp.Bookings[1].StartTime)
	assert.Equal(t, 5, resp.Bookings[1].People)
	assert.Equal(t, "10:20", resp.Bookings[2].StartTime)
	assert.Equal(t, 3, resp.Bookings[2].People)
}

func TestExecute_StaffChainSkipsBlackouts(t *testing.T) {
	now := parisTime(t, "2025-07-01", "12:00")
	blocks := []domain.BlackoutInterval{{
		Scope:     domain.BlockScopeTime,
		StartTime: parisTime(t, "2025-07-15", "10:05"),
		EndTime:   parisTime(t, "2025-07-15", "10:30"),
	}}
	env := newTestEnv(t, testFleet(), blocks, now)

	req := validRequest()
	req.Time = "10:30"
	req.Adults, req.Children = 24, 0
	req.StaffOverride = true

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "10:30", resp.Bookings[0].StartTime)
	assert.Equal(t, "10:40", resp.Bookings[1].StartTime)
}
