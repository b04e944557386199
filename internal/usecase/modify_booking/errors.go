package modify_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда код и телефон не совпали.
	// Несовпадение телефона при существующем коде даёт ту же ошибку -
	// факт существования чужого бронирования не раскрывается
	ErrBookingNotFound = errors.New("modify_booking: booking not found")

	// ErrCannotModify возвращается для отменённых и завершённых бронирований
	ErrCannotModify = errors.New("modify_booking: booking can no longer be modified")

	// ErrRestaurantClosed возвращается, когда новое окно вне рабочих часов
	ErrRestaurantClosed = errors.New("modify_booking: restaurant is closed at this time")

	// ErrTimeInPast возвращается, когда новые дата/время уже прошли
	ErrTimeInPast = errors.New("modify_booking: requested time is in the past")

	// ErrSlotNotAvailable возвращается, когда новое окно не вмещает группу.
	// Исходное бронирование при этом остаётся нетронутым
	ErrSlotNotAvailable = errors.New("modify_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("modify_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("modify_booking: internal error")
)
