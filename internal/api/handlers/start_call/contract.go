package start_call

import (
	"context"

	"github.com/m04kA/RVA-ReservationService/internal/service/calls/models"
)

// CallsService интерфейс сервиса сессий звонков
type CallsService interface {
	Start(ctx context.Context, req *models.StartCallRequest) (*models.CallSessionResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
