package get_customer_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/RVA-ReservationService/internal/api/handlers"
	"github.com/m04kA/RVA-ReservationService/internal/service/bookings"
	"github.com/m04kA/RVA-ReservationService/internal/service/bookings/models"
)

const (
	msgInvalidPhone = "некорректный телефон клиента"
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

// Handle GET /api/v1/customers/{phone}/bookings
// Query params: includePast (опционально, по умолчанию false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	phone := vars["phone"]

	includePast := r.URL.Query().Get("includePast") == "true"

	result, err := h.service.GetCustomerBookings(r.Context(), &models.GetCustomerBookingsRequest{
		CustomerPhone: phone,
		IncludePast:   includePast,
	})
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /customers/{phone}/bookings - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPhone)
			return
		}

		h.logger.Error("GET /customers/{phone}/bookings - Failed to get bookings: phone=%s, error=%v", phone, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers/{phone}/bookings - Bookings retrieved successfully: phone=%s, count=%d",
		phone, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
