package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
)

func makeBooking(start time.Time, language string, people int, private bool) *domain.Booking {
	return &domain.Booking{
		BoatID:    1,
		StartTime: start,
		EndTime:   start.Add(25 * time.Minute),
		Language:  language,
		People:    people,
		IsPrivate: private,
		Status:    domain.StatusConfirmed,
	}
}

func TestCanAdmit(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	slotStart := ToInstant("2025-07-15", "10:00", loc)

	testCases := []struct {
		name     string
		capacity int
		existing []*domain.Booking
		party    Party
		want     Verdict
	}{
		{
			name:     "empty slot admits unconditionally",
			capacity: 6,
			existing: nil,
			party:    Party{People: 2, Language: "FR"},
			want:     VerdictAdmit,
		},
		{
			name:     "empty slot admits privatization",
			capacity: 6,
			existing: nil,
			party:    Party{People: 2, Language: "FR", Private: true},
			want:     VerdictAdmit,
		},
		{
			name:     "same language join within capacity",
			capacity: 6,
			existing: []*domain.Booking{makeBooking(slotStart, "FR", 3, false)},
			party:    Party{People: 3, Language: "FR"},
			want:     VerdictAdmit,
		},
		{
			name:     "language mismatch never merges",
			capacity: 6,
			existing: []*domain.Booking{makeBooking(slotStart, "EN", 4, false)},
			party:    Party{People: 2, Language: "FR"},
			want:     VerdictLanguageMismatch,
		},
		{
			name:     "capacity exceeded by one",
			capacity: 6,
			existing: []*domain.Booking{makeBooking(slotStart, "FR", 5, false)},
			party:    Party{People: 2, Language: "FR"},
			want:     VerdictCapacityExceeded,
		},
		{
			name:     "exact fill admitted",
			capacity: 6,
			existing: []*domain.Booking{makeBooking(slotStart, "FR", 5, false)},
			party:    Party{People: 1, Language: "FR"},
			want:     VerdictAdmit,
		},
		{
			name:     "capacity sums over all joined parties",
			capacity: 8,
			existing: []*domain.Booking{
				makeBooking(slotStart, "FR", 3, false),
				makeBooking(slotStart, "FR", 4, false),
			},
			party: Party{People: 2, Language: "FR"},
			want:  VerdictCapacityExceeded,
		},
		{
			name:     "privatization rejected on occupied slot",
			capacity: 6,
			existing: []*domain.Booking{makeBooking(slotStart, "FR", 1, false)},
			party:    Party{People: 2, Language: "FR", Private: true},
			want:     VerdictPrivacyConflict,
		},
		{
			name:     "existing privatization blocks every join",
			capacity: 6,
			existing: []*domain.Booking{makeBooking(slotStart, "FR", 6, true)},
			party:    Party{People: 1, Language: "FR"},
			want:     VerdictPrivacyConflict,
		},
		{
			name:     "overlapping booking with different start is a conflict",
			capacity: 6,
			existing: []*domain.Booking{makeBooking(slotStart.Add(10*time.Minute), "FR", 2, false)},
			party:    Party{People: 2, Language: "FR"},
			want:     VerdictSlotTaken,
		},
		{
			name:     "cancelled bookings are ignored",
			capacity: 6,
			existing: []*domain.Booking{
				func() *domain.Booking {
					b := makeBooking(slotStart, "EN", 6, false)
					b.Status = domain.StatusCancelled
					return b
				}(),
			},
			party: Party{People: 2, Language: "FR"},
			want:  VerdictAdmit,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanAdmit(tc.capacity, slotStart, tc.existing, tc.party)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Свойство чистоты языка: после допуска на слоте не может оказаться
// двух групп с разными языками
func TestCanAdmit_LanguagePurity(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	slotStart := ToInstant("2025-07-15", "14:00", loc)

	languages := []string{"FR", "EN", "DE", "ES"}
	for _, existingLang := range languages {
		for _, requestedLang := range languages {
			existing := []*domain.Booking{makeBooking(slotStart, existingLang, 2, false)}
			verdict := CanAdmit(12, slotStart, existing, Party{People: 2, Language: requestedLang})
			if existingLang == requestedLang {
				assert.Equal(t, VerdictAdmit, verdict)
			} else {
				assert.Equal(t, VerdictLanguageMismatch, verdict)
			}
		}
	}
}
