package check_availability

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrRestaurantClosed возвращается, когда ресторан закрыт в запрошенное время
	ErrRestaurantClosed = errors.New("restaurant is closed at this time")

	// ErrTimeInPast возвращается, когда запрошенные дата/время уже прошли
	ErrTimeInPast = errors.New("requested time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
