package calls

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия звонка не найдена
	ErrSessionNotFound = errors.New("call session not found")

	// ErrAlreadyLinked возвращается при повторной привязке бронирования к сессии
	ErrAlreadyLinked = errors.New("call session already linked to a booking")

	// ErrSessionClosed возвращается при попытке закрыть уже завершённую сессию
	ErrSessionClosed = errors.New("call session already closed")

	// ErrInvalidOutcome возвращается, когда исход не является терминальным
	ErrInvalidOutcome = errors.New("invalid call outcome")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
