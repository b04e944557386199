package start_call

import (
	"errors"
	"net/http"

	"github.com/m04kA/RVA-ReservationService/internal/api/handlers"
	"github.com/m04kA/RVA-ReservationService/internal/service/calls"
	"github.com/m04kA/RVA-ReservationService/internal/service/calls/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные звонка"
)

type Handler struct {
	service CallsService
	logger  Logger
}

func NewHandler(service CallsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/calls
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.StartCallRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calls - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Start(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, calls.ErrInvalidInput):
			h.logger.Warn("POST /calls - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /calls - Failed to start call session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calls - Call session started: session_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
