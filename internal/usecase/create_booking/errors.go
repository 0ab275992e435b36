package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при дате отправления в прошлом
	ErrInvalidDate = errors.New("date is in the past")

	// ErrOutsideServiceHours возвращается, когда время вне окон обслуживания
	ErrOutsideServiceHours = errors.New("time is outside service hours")

	// ErrInvalidTimeSlot возвращается, когда время не выровнено на сетку отправлений
	ErrInvalidTimeSlot = errors.New("time does not match the departure grid")

	// ErrTooLateToBook возвращается, когда до отправления осталось меньше
	// минимального интервала
	ErrTooLateToBook = errors.New("too late to book this departure")

	// ErrNoBoats возвращается, когда в флоте нет активных барок
	ErrNoBoats = errors.New("no active boats in fleet")

	// ErrBoatNotFound возвращается, когда принудительно выбранная барка
	// не найдена среди активных
	ErrBoatNotFound = errors.New("boat not found in active fleet")

	// ErrSlotBlocked возвращается, когда отправление попадает в интервал блокировки
	ErrSlotBlocked = errors.New("departure is blocked")

	// ErrSlotTaken возвращается, когда слот занят пересекающимся рейсом
	ErrSlotTaken = errors.New("slot is already taken")

	// ErrPrivacyConflict возвращается при конфликте приватизации
	ErrPrivacyConflict = errors.New("privatization conflict on this slot")

	// ErrLanguageMismatch возвращается, когда на слоте группа с другим языком
	ErrLanguageMismatch = errors.New("slot is held by a group with a different language")

	// ErrCapacityExceeded возвращается, когда группа не помещается на барку
	ErrCapacityExceeded = errors.New("party does not fit boat capacity")

	// ErrSlotConflict возвращается при проигрыше гонки за слот
	// (сбой сериализации или нарушение уникальности в БД)
	ErrSlotConflict = errors.New("slot was taken by a concurrent booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
