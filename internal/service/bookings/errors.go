package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда код и телефон не совпали.
	// Одна и та же ошибка для незнакомого кода и чужого телефона -
	// существование бронирования не раскрывается
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда бронирование уже завершено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
