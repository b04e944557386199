package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/RVA-ReservationService/internal/api/handlers"
	createBooking "github.com/m04kA/RVA-ReservationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные данные бронирования"
	msgSlotNotAvailable   = "на выбранное время свободных мест нет"
	msgRestaurantNotFound = "ресторан не найден"
	msgRestaurantClosed   = "ресторан закрыт в выбранное время"
	msgTimeInPast         = "выбранное время уже прошло"
	msgCodesExhausted     = "не удалось назначить код подтверждения"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: restaurant_id=%d, date=%s, time=%s",
				req.RestaurantID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrRestaurantNotFound):
			h.logger.Warn("POST /bookings - Restaurant not found: restaurant_id=%d", req.RestaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, createBooking.ErrRestaurantClosed):
			h.logger.Warn("POST /bookings - Restaurant closed: restaurant_id=%d, date=%s, time=%s",
				req.RestaurantID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgRestaurantClosed)

		case errors.Is(err, createBooking.ErrTimeInPast):
			h.logger.Warn("POST /bookings - Time in past: restaurant_id=%d, date=%s, time=%s",
				req.RestaurantID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTimeInPast)

		case errors.Is(err, createBooking.ErrCodesExhausted):
			h.logger.Error("POST /bookings - Confirmation codes exhausted: restaurant_id=%d", req.RestaurantID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCodesExhausted)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: restaurant_id=%d, error=%v",
				req.RestaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, restaurant_id=%d, code=%s",
		result.ID, req.RestaurantID, result.ConfirmationCode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
