package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetnarcisse/SN-BookingService/pkg/types"
)

func TestAssignBoat_Rotation(t *testing.T) {
	cfg := testConfig(t)

	testCases := []struct {
		time      types.TimeString
		fleetSize int
		wantIndex int
	}{
		{time: "10:00", fleetSize: 3, wantIndex: 0},
		{time: "10:10", fleetSize: 3, wantIndex: 1},
		{time: "10:20", fleetSize: 3, wantIndex: 2},
		{time: "10:30", fleetSize: 3, wantIndex: 0}, // новый цикл
		{time: "13:30", fleetSize: 3, wantIndex: 0}, // 210 минут от открытия = 7 циклов ровно
		{time: "13:40", fleetSize: 3, wantIndex: 1},
		// Флот меньше числа смещений: индекс сворачивается по модулю
		{time: "10:20", fleetSize: 2, wantIndex: 0},
		{time: "10:10", fleetSize: 1, wantIndex: 0},
	}

	for _, tc := range testCases {
		index, ok := AssignBoat(tc.time, cfg, tc.fleetSize)
		require.True(t, ok, "time %s", tc.time)
		assert.Equal(t, tc.wantIndex, index, "time %s fleet %d", tc.time, tc.fleetSize)
	}
}

func TestAssignBoat_Deterministic(t *testing.T) {
	cfg := testConfig(t)

	// Одно и то же время всегда даёт одну и ту же барку -
	// никакого сохраняемого состояния ротации нет
	first, ok := AssignBoat("14:20", cfg, 3)
	require.True(t, ok)
	for i := 0; i < 100; i++ {
		index, ok := AssignBoat("14:20", cfg, 3)
		require.True(t, ok)
		require.Equal(t, first, index)
	}
}

func TestAssignBoat_NotAligned(t *testing.T) {
	cfg := testConfig(t)

	// 10:05 не совпадает ни с одним смещением ротации (0, 10, 20)
	_, ok := AssignBoat("10:05", cfg, 3)
	assert.False(t, ok)
}

func TestAssignBoat_EmptyFleet(t *testing.T) {
	cfg := testConfig(t)

	_, ok := AssignBoat("10:00", cfg, 0)
	assert.False(t, ok)
}

func TestAssignBoat_CoversEveryCandidate(t *testing.T) {
	cfg := testConfig(t)

	// Каждый сгенерированный кандидат обязан получить барку
	for _, candidate := range GenerateCandidates(cfg) {
		index, ok := AssignBoat(candidate, cfg, 3)
		require.True(t, ok, "candidate %s has no boat", candidate)
		require.GreaterOrEqual(t, index, 0)
		require.Less(t, index, 3)
	}
}
