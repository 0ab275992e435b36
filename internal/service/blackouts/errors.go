package blackouts

import "errors"

var (
	// ErrBlackoutNotFound возвращается, когда интервал блокировки не найден
	ErrBlackoutNotFound = errors.New("blackout interval not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("blackouts service: internal error")
)
