package find_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/RVA-ReservationService/internal/api/handlers"
	"github.com/m04kA/RVA-ReservationService/internal/api/middleware"
	"github.com/m04kA/RVA-ReservationService/internal/service/bookings"
	"github.com/m04kA/RVA-ReservationService/internal/service/bookings/models"
)

const (
	msgMissingPhone = "телефон клиента обязателен"
	msgInvalidInput = "некорректные данные запроса"
	msgNotFound     = "бронирование с таким кодом и телефоном не найдено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{code}
// Телефон берётся из заголовка X-Caller-Phone или query параметра phone
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]

	phone, ok := middleware.GetCallerPhone(r.Context())
	if !ok {
		phone = r.URL.Query().Get("phone")
	}
	if phone == "" {
		h.logger.Warn("GET /bookings/{code} - Missing customer phone: code=%s", code)
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	booking, err := h.service.FindByConfirmation(r.Context(), &models.FindBookingRequest{
		ConfirmationCode: code,
		CustomerPhone:    phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{code} - Booking not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{code} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /bookings/{code} - Failed to find booking: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{code} - Booking retrieved successfully: booking_id=%d", booking.ID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
