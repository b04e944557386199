package tool_call

import (
	"net/http"

	"github.com/m04kA/RVA-ReservationService/internal/api/handlers"
	"github.com/m04kA/RVA-ReservationService/internal/dispatch"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	dispatcher Dispatcher
	logger     Logger
}

func NewHandler(dispatcher Dispatcher, logger Logger) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle POST /api/v1/tool-calls
//
// Единая точка входа для голосового агента: тело запроса содержит intent
// и аргументы в свободной форме. Успешный dispatch всегда отвечает 200 OK,
// результат ошибки кодируется полями ok/errorKind в теле.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var call dispatch.ToolCall
	if err := handlers.DecodeJSON(r, &call); err != nil {
		h.logger.Warn("POST /tool-calls - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result := h.dispatcher.Dispatch(r.Context(), &call)

	if result.OK {
		h.logger.Info("POST /tool-calls - Dispatched successfully: intent=%s", call.Intent)
	} else {
		h.logger.Warn("POST /tool-calls - Dispatch returned error: intent=%s, kind=%s", call.Intent, result.Kind)
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
