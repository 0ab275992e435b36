package schedule

import (
	"time"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
)

// IsDayBlocked проверяет, закрыт ли весь календарный день
// День закрыт, если хотя бы один интервал со scope=day полностью покрывает
// диапазон дня [dayStart, dayEnd]. Возвращает причину первого совпавшего
// интервала (может быть пустой - отсутствие причины не ошибка)
func IsDayBlocked(dayStart, dayEnd time.Time, blocks []domain.BlackoutInterval) (bool, string) {
	for _, b := range blocks {
		if b.Scope != domain.BlockScopeDay {
			continue
		}
		if !b.StartTime.After(dayStart) && !b.EndTime.Before(dayEnd) {
			return true, b.Reason
		}
	}
	return false, ""
}

// IsWindowBlocked проверяет, пересекается ли окно кандидата [start, end)
// с каким-либо интервалом блокировки независимо от его scope
// Пересечение строгое: граничащие интервалы не считаются пересечением
func IsWindowBlocked(start, end time.Time, blocks []domain.BlackoutInterval) bool {
	for _, b := range blocks {
		if b.StartTime.Before(end) && b.EndTime.After(start) {
			return true
		}
	}
	return false
}

// FirstReason возвращает причину первого интервала блокировки
// Используется как пояснительное сообщение, когда на день не осталось слотов
func FirstReason(blocks []domain.BlackoutInterval) string {
	if len(blocks) == 0 {
		return ""
	}
	return blocks[0].Reason
}
