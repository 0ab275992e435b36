package boat

import "errors"

var (
	// ErrBoatNotFound возвращается, когда барка не найдена
	ErrBoatNotFound = errors.New("boat.repository: boat not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("boat.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("boat.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("boat.repository: failed to scan row")
)
