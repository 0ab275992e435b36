package fleet

import "errors"

var (
	// ErrBoatNotFound возвращается, когда барка не найдена
	ErrBoatNotFound = errors.New("boat not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("fleet service: internal error")
)
