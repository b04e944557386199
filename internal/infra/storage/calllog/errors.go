package calllog

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия звонка не найдена
	ErrSessionNotFound = errors.New("calllog.repository: call session not found")

	// ErrBookingAlreadyLinked возвращается при попытке привязать второе бронирование к сессии
	ErrBookingAlreadyLinked = errors.New("calllog.repository: booking already linked to session")

	// ErrSessionAlreadyClosed возвращается при попытке закрыть уже завершённую сессию
	ErrSessionAlreadyClosed = errors.New("calllog.repository: call session already closed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calllog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calllog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calllog.repository: failed to scan row")
)
