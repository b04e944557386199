package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/RVA-ReservationService/internal/api/handlers"
	checkAvailability "github.com/m04kA/RVA-ReservationService/internal/usecase/check_availability"
)

const (
	msgInvalidRestaurantID = "некорректный ID ресторана"
	msgMissingDate         = "дата обязательна"
	msgMissingTime         = "время обязательно"
	msgInvalidDateOrTime   = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidPartySize    = "некорректный размер группы"
	msgInvalidInput        = "некорректные данные запроса"
	msgRestaurantNotFound  = "ресторан не найден"
	msgRestaurantClosed    = "ресторан закрыт в выбранное время"
	msgTimeInPast          = "выбранное время уже прошло"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: restaurantId, date (YYYY-MM-DD), time (HH:MM), partySize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	restaurantID, err := strconv.ParseInt(query.Get("restaurantId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeStr := query.Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /availability - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	partySize, err := strconv.Atoi(query.Get("partySize"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid party size: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	useCaseReq, err := ToUseCaseRequest(restaurantID, dateStr, timeStr, partySize)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrRestaurantNotFound):
			h.logger.Warn("GET /availability - Restaurant not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgRestaurantNotFound)

		case errors.Is(err, checkAvailability.ErrRestaurantClosed):
			h.logger.Info("GET /availability - Restaurant closed: restaurant_id=%d, date=%s, time=%s",
				restaurantID, dateStr, timeStr)
			handlers.RespondError(w, http.StatusConflict, msgRestaurantClosed)

		case errors.Is(err, checkAvailability.ErrTimeInPast):
			h.logger.Warn("GET /availability - Time in past: restaurant_id=%d, date=%s, time=%s",
				restaurantID, dateStr, timeStr)
			handlers.RespondBadRequest(w, msgTimeInPast)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability - Failed to check availability: restaurant_id=%d, error=%v",
				restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability checked: restaurant_id=%d, available=%t, alternatives=%d",
		restaurantID, result.Available, len(result.Alternatives))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
