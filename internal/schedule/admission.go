package schedule

import (
	"time"

	"github.com/sweetnarcisse/SN-BookingService/internal/domain"
)

// Party новая группа, запрашивающая место на отправлении
type Party struct {
	People   int
	Language string
	Private  bool // запрос на приватизацию барки
}

// Verdict типизированный результат проверки допуска группы на слот
type Verdict int

const (
	// VerdictAdmit группа допускается на слот
	VerdictAdmit Verdict = iota
	// VerdictSlotTaken слот занят бронированием, начинающимся в другой момент
	// (пересечение интервалов без возможности объединения)
	VerdictSlotTaken
	// VerdictPrivacyConflict приватизация блокирует объединение (в обе стороны)
	VerdictPrivacyConflict
	// VerdictLanguageMismatch на слоте группа с другим языком
	VerdictLanguageMismatch
	// VerdictCapacityExceeded суммарный размер групп превышает вместимость барки
	VerdictCapacityExceeded
)

// CanAdmit решает, может ли новая группа попасть на отправление барки
//
// Политика (в порядке применения):
//  1. Нет активных бронирований - допуск безусловный (свободный слот)
//  2. Бронирование, начинающееся в другой момент, исключает объединение
//     (группы на разных отправлениях одной барки никогда не делят вместимость)
//  3. Приватизация не садится на занятый слот, и занятый приватизацией слот
//     не принимает никого
//  4. Объединение только при полном совпадении языка у всех групп слота
//  5. Вместимость считается как сумма размеров всех групп слота плюс новая -
//     барка заполняется как общий пул мест, а не по-бронированиям
func CanAdmit(capacity int, slotStart time.Time, existing []*domain.Booking, party Party) Verdict {
	active := make([]*domain.Booking, 0, len(existing))
	for _, b := range existing {
		if b.IsActive() {
			active = append(active, b)
		}
	}

	if len(active) == 0 {
		return VerdictAdmit
	}

	for _, b := range active {
		if !b.StartsAt(slotStart) {
			return VerdictSlotTaken
		}
	}

	if party.Private {
		return VerdictPrivacyConflict
	}

	currentPeople := 0
	for _, b := range active {
		if b.IsPrivate {
			return VerdictPrivacyConflict
		}
		if b.Language != party.Language {
			return VerdictLanguageMismatch
		}
		currentPeople += b.People
	}

	if currentPeople+party.People > capacity {
		return VerdictCapacityExceeded
	}

	return VerdictAdmit
}
