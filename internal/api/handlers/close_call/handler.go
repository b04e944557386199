package close_call

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/RVA-ReservationService/internal/api/handlers"
	"github.com/m04kA/RVA-ReservationService/internal/service/calls"
	"github.com/m04kA/RVA-ReservationService/internal/service/calls/models"
)

const (
	msgInvalidSessionID   = "некорректный идентификатор сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidOutcome     = "некорректный исход звонка"
	msgInvalidInput       = "некорректные данные завершения"
	msgSessionNotFound    = "сессия звонка не найдена"
	msgSessionClosed      = "сессия звонка уже завершена"
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

// Handle PATCH /api/v1/calls/{id}/close
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("PATCH /calls/{id}/close - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req models.CloseCallRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /calls/{id}/close - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Close(r.Context(), sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, calls.ErrSessionNotFound):
			h.logger.Warn("PATCH /calls/{id}/close - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, calls.ErrSessionClosed):
			h.logger.Warn("PATCH /calls/{id}/close - Session already closed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionClosed)

		case errors.Is(err, calls.ErrInvalidOutcome):
			h.logger.Warn("PATCH /calls/{id}/close - Invalid outcome: session_id=%s, outcome=%s", sessionID, req.Outcome)
			handlers.RespondBadRequest(w, msgInvalidOutcome)

		case errors.Is(err, calls.ErrInvalidInput):
			h.logger.Warn("PATCH /calls/{id}/close - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /calls/{id}/close - Failed to close session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /calls/{id}/close - Call session closed: session_id=%s, outcome=%s", sessionID, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, result)
}
