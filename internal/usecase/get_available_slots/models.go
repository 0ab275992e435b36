package get_available_slots

import (
	"github.com/sweetnarcisse/SN-BookingService/pkg/types"
)

// Request модель запроса на получение доступных отправлений
// Доступность считается для конкретной группы: состав и язык влияют
// на то, какие слоты группа может занять
type Request struct {
	Date     string // "2025-07-15"
	Adults   int
	Children int
	Babies   int
	Language string // "FR", "EN", ...
	Private  bool   // группа хочет приватизировать барку
}

// People суммарный размер группы
func (r *Request) People() int {
	return r.Adults + r.Children + r.Babies
}

// Response модель ответа со списком доступных отправлений
type Response struct {
	Date  string
	Slots []Slot

	// TotalPrice цена тура для запрошенного состава группы
	TotalPrice float64

	// BlockedReason причина блокировки, когда на день нет слотов
	// из-за интервалов блокировки. Пустая строка, если слоты есть
	// или блокировок нет
	BlockedReason string
}

// Slot модель доступного отправления
type Slot struct {
	Time      types.TimeString // настенное время отправления ("10:20")
	BoatID    int64
	BoatName  string
	SeatsLeft int // свободные места с учётом уже объединённых групп
}
