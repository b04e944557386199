package create_booking

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("create_booking: restaurant not found")

	// ErrRestaurantClosed возвращается, когда ресторан закрыт в запрошенное время
	ErrRestaurantClosed = errors.New("create_booking: restaurant is closed at this time")

	// ErrTimeInPast возвращается, когда запрошенные дата/время уже прошли
	ErrTimeInPast = errors.New("create_booking: requested time is in the past")

	// ErrSlotNotAvailable возвращается, когда в запрошенном окне не хватает мест.
	// Проверяется повторно внутри транзакции: успешная проверка доступности
	// до вызова не гарантирует место на момент вставки
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrCodesExhausted возвращается, когда не удалось подобрать свободный код подтверждения
	ErrCodesExhausted = errors.New("create_booking: confirmation code attempts exhausted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
