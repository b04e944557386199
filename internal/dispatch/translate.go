package dispatch

import (
	"errors"

	restaurantRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/RVA-ReservationService/internal/service/bookings"
	checkAvailability "github.com/m04kA/RVA-ReservationService/internal/usecase/check_availability"
	createBooking "github.com/m04kA/RVA-ReservationService/internal/usecase/create_booking"
	modifyBooking "github.com/m04kA/RVA-ReservationService/internal/usecase/modify_booking"
)

// Сообщения, безопасные для озвучивания клиенту.
// Детали внутренних ошибок наружу не уходят
const (
	msgUnknownIntent    = "Неизвестная операция"
	msgInvalidArguments = "Некорректные данные запроса"
	msgInvalidDate      = "Некорректная дата, ожидается формат ГГГГ-ММ-ДД"
	msgInvalidTime      = "Некорректное время, ожидается формат ЧЧ:ММ"

	msgRestaurantNotFound = "Ресторан не найден"
	msgRestaurantClosed   = "Ресторан в это время не работает"
	msgTimeInPast         = "Это время уже прошло"
	msgSlotNotAvailable   = "К сожалению, на это время свободных мест нет"
	msgBookingNotFound    = "Бронирование с таким кодом и телефоном не найдено"
	msgCannotCancel       = "Это бронирование уже завершено и не может быть отменено"
	msgCannotModify       = "Это бронирование уже нельзя изменить"
	msgCodesExhausted     = "Не получилось назначить код подтверждения, попробуйте ещё раз"
	msgUnavailable        = "Сервис временно недоступен, попробуйте позже"
)

func (d *Dispatcher) translateCreateBookingError(err error) Result {
	switch {
	case errors.Is(err, createBooking.ErrInvalidInput):
		return validationResult(msgInvalidArguments)
	case errors.Is(err, createBooking.ErrTimeInPast):
		return validationResult(msgTimeInPast)
	case errors.Is(err, createBooking.ErrRestaurantNotFound):
		return errorResult(KindNotFound, msgRestaurantNotFound)
	case errors.Is(err, createBooking.ErrRestaurantClosed):
		return errorResult(KindClosed, msgRestaurantClosed)
	case errors.Is(err, createBooking.ErrSlotNotAvailable):
		return errorResult(KindConflict, msgSlotNotAvailable)
	case errors.Is(err, createBooking.ErrCodesExhausted):
		return errorResult(KindExhausted, msgCodesExhausted)
	default:
		return d.unavailableResult("create_booking", err)
	}
}

func (d *Dispatcher) translateCheckAvailabilityError(err error) Result {
	switch {
	case errors.Is(err, checkAvailability.ErrInvalidInput):
		return validationResult(msgInvalidArguments)
	case errors.Is(err, checkAvailability.ErrTimeInPast):
		return validationResult(msgTimeInPast)
	case errors.Is(err, checkAvailability.ErrRestaurantNotFound):
		return errorResult(KindNotFound, msgRestaurantNotFound)
	case errors.Is(err, checkAvailability.ErrRestaurantClosed):
		return errorResult(KindClosed, msgRestaurantClosed)
	default:
		return d.unavailableResult("check_availability", err)
	}
}

func (d *Dispatcher) translateModifyBookingError(err error) Result {
	switch {
	case errors.Is(err, modifyBooking.ErrInvalidInput):
		return validationResult(msgInvalidArguments)
	case errors.Is(err, modifyBooking.ErrTimeInPast):
		return validationResult(msgTimeInPast)
	case errors.Is(err, modifyBooking.ErrBookingNotFound):
		return errorResult(KindNotFound, msgBookingNotFound)
	case errors.Is(err, modifyBooking.ErrCannotModify):
		return errorResult(KindConflict, msgCannotModify)
	case errors.Is(err, modifyBooking.ErrRestaurantClosed):
		return errorResult(KindClosed, msgRestaurantClosed)
	case errors.Is(err, modifyBooking.ErrSlotNotAvailable):
		return errorResult(KindConflict, msgSlotNotAvailable)
	default:
		return d.unavailableResult("modify_booking", err)
	}
}

func (d *Dispatcher) translateBookingsServiceError(err error) Result {
	switch {
	case errors.Is(err, bookings.ErrInvalidInput):
		return validationResult(msgInvalidArguments)
	case errors.Is(err, bookings.ErrBookingNotFound):
		return errorResult(KindNotFound, msgBookingNotFound)
	case errors.Is(err, bookings.ErrCannotCancel):
		return errorResult(KindConflict, msgCannotCancel)
	default:
		return d.unavailableResult("bookings", err)
	}
}

func (d *Dispatcher) translateRestaurantError(err error) Result {
	if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
		return errorResult(KindNotFound, msgRestaurantNotFound)
	}
	return d.unavailableResult("get_restaurant_info", err)
}
