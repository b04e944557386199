package modify_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/RVA-ReservationService/internal/api/handlers"
	modifyBooking "github.com/m04kA/RVA-ReservationService/internal/usecase/modify_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные данные изменения"
	msgBookingNotFound    = "бронирование не найдено"
	msgCannotModify       = "бронирование нельзя изменить"
	msgSlotNotAvailable   = "на новое время свободных мест нет"
	msgRestaurantClosed   = "ресторан закрыт в выбранное время"
	msgTimeInPast         = "выбранное время уже прошло"
)

type Handler struct {
	useCase ModifyBookingUseCase
	logger  Logger
}

func NewHandler(useCase ModifyBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req ModifyBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{code} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(code)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{code} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, modifyBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{code} - Booking not found: code=%s", code)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, modifyBooking.ErrCannotModify):
			h.logger.Warn("PATCH /bookings/{code} - Booking cannot be modified: code=%s", code)
			handlers.RespondError(w, http.StatusConflict, msgCannotModify)

		case errors.Is(err, modifyBooking.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /bookings/{code} - New slot not available: code=%s", code)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, modifyBooking.ErrRestaurantClosed):
			h.logger.Warn("PATCH /bookings/{code} - Restaurant closed at new time: code=%s", code)
			handlers.RespondBadRequest(w, msgRestaurantClosed)

		case errors.Is(err, modifyBooking.ErrTimeInPast):
			h.logger.Warn("PATCH /bookings/{code} - New time in past: code=%s", code)
			handlers.RespondBadRequest(w, msgTimeInPast)

		case errors.Is(err, modifyBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{code} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{code} - Failed to modify booking: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{code} - Booking modified successfully: booking_id=%d, code=%s",
		result.ID, code)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
