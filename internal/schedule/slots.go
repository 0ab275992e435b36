package schedule

import (
	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
	"github.com/sweetnarcisse/SN-BookingService/pkg/types"
)

// GenerateCandidates перечисляет все потенциальные времена отправления на день
//
// Перебор идёт от открытия до закрытия с фиксированным шагом
// DepartureIntervalMinutes, но кандидат попадает в результат только если:
//   - он внутри одного из двух окон обслуживания (утро/день), границы включительно
//   - его смещение внутри цикла ротации совпадает с одним из RotationOffsets
//
// Это жёсткий фильтр, а не мягкое предпочтение. Результат конечен, упорядочен
// по возрастанию и является чистой функцией конфигурации - слоты никогда
// не сохраняются и заново вычисляются на каждый запрос
func GenerateCandidates(cfg *domain.ScheduleConfig) []types.TimeString {
	openMinutes, errOpen := cfg.OpenTime.Minutes()
	closeMinutes, errClose := cfg.CloseTime.Minutes()
	if errOpen != nil || errClose != nil {
		return nil
	}

	cycle := cfg.CycleMinutes()
	candidates := make([]types.TimeString, 0)

	for m := openMinutes; m <= closeMinutes; m += cfg.DepartureIntervalMinutes {
		if !cfg.InServiceWindow(m) {
			continue
		}

		cyclePosition := ((m - openMinutes) % cycle + cycle) % cycle
		aligned := false
		for _, offset := range cfg.RotationOffsets {
			if offset == cyclePosition {
				aligned = true
				break
			}
		}
		if !aligned {
			continue
		}

		candidates = append(candidates, types.NewTimeStringFromMinutes(m))
	}

	return candidates
}
