package schedule

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetnarcisse/SN-BookingService/pkg/types"
)

func TestGenerateCandidates(t *testing.T) {
	cfg := testConfig(t)

	candidates := GenerateCandidates(cfg)

	// Утро: 10:00..11:40 c шагом 10 (11:45 не кратно шагу от 10:00) = 11 слотов
	// День: 13:30..17:40 с шагом 10 = 26 слотов
	require.Len(t, candidates, 37)

	assert.Equal(t, types.TimeString("10:00"), candidates[0])
	assert.Equal(t, types.TimeString("11:40"), candidates[10])
	assert.Equal(t, types.TimeString("13:30"), candidates[11])
	assert.Equal(t, types.TimeString("17:40"), candidates[36])

	// Кандидаты строго упорядочены по возрастанию
	sorted := sort.SliceIsSorted(candidates, func(i, j int) bool {
		return candidates[i].IsBefore(candidates[j])
	})
	assert.True(t, sorted)

	// Обеденный перерыв не генерирует кандидатов
	for _, c := range candidates {
		minutes, err := c.Minutes()
		require.NoError(t, err)
		assert.False(t, minutes > 705 && minutes < 810, "candidate %s falls into the midday break", c)
	}
}

func TestGenerateCandidates_Restartable(t *testing.T) {
	cfg := testConfig(t)

	first := GenerateCandidates(cfg)
	second := GenerateCandidates(cfg)

	// Чистая функция конфигурации: повторный вызов идентичен
	assert.Equal(t, first, second)
}

func TestGenerateCandidates_OffsetFilter(t *testing.T) {
	cfg := testConfig(t)
	// Оставляем одно смещение в цикле из 30 минут:
	// кандидаты только каждые 30 минут от открытия
	cfg.RotationOffsets = []int{0}

	candidates := GenerateCandidates(cfg)
	require.NotEmpty(t, candidates)

	for _, c := range candidates {
		minutes, err := c.Minutes()
		require.NoError(t, err)
		assert.Equal(t, 0, (minutes-600)%30, "candidate %s not aligned to cycle start", c)
	}
}
