package close_call

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/RVA-ReservationService/internal/service/calls/models"
)

// CallsService интерфейс сервиса сессий звонков
type CallsService interface {
	Close(ctx context.Context, sessionID uuid.UUID, req *models.CloseCallRequest) (*models.CallSessionResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
