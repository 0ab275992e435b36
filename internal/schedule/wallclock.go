package schedule

import (
	"strconv"
	"strings"
	"time"
)

// ParseWallTime разбирает настенное время "HH:MM"
// Разбор намеренно мягкий: отсутствующие или некорректные числовые компоненты
// по умолчанию становятся нулём ("7" -> 07:00, "" -> 00:00). Строгая валидация
// формата выполняется на границе HTTP, до того как значение попадёт в движок
func ParseWallTime(s string) (hour, minute int) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) > 0 {
		hour, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	}
	if len(parts) > 1 {
		minute, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return hour, minute
}

// ParseWallDate разбирает календарную дату "YYYY-MM-DD" с той же мягкой
// семантикой, что и ParseWallTime
func ParseWallDate(s string) (year, month, day int) {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) > 0 {
		year, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	}
	if len(parts) > 1 {
		month, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	if len(parts) > 2 {
		day, _ = strconv.Atoi(strings.TrimSpace(parts[2]))
	}
	return year, month, day
}

// ToInstant конвертирует календарную дату + настенное время в абсолютный момент
// в фиксированной таймзоне оператора. Сезонное смещение (летнее/зимнее время)
// применяется для самой даты, а не для "сейчас": зимнее бронирование на летнюю
// дату получает летнее смещение
func ToInstant(date, timeOfDay string, loc *time.Location) time.Time {
	year, month, day := ParseWallDate(date)
	hour, minute := ParseWallTime(timeOfDay)
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
}

// DayBounds возвращает границы календарного дня в таймзоне оператора:
// 00:00:00.000 и 23:59:59.999
func DayBounds(date string, loc *time.Location) (start, end time.Time) {
	year, month, day := ParseWallDate(date)
	start = time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	end = time.Date(year, time.Month(month), day, 23, 59, 59, 999_000_000, loc)
	return start, end
}

// IsSameCivilDay возвращает true, если оба момента приходятся на один
// календарный день в таймзоне оператора
func IsSameCivilDay(a, b time.Time, loc *time.Location) bool {
	ya, ma, da := a.In(loc).Date()
	yb, mb, db := b.In(loc).Date()
	return ya == yb && ma == mb && da == db
}
