package tool_call

import (
	"context"

	"github.com/m04kA/RVA-ReservationService/internal/dispatch"
)

// Dispatcher интерфейс диспетчера голосовых инструментов
type Dispatcher interface {
	Dispatch(ctx context.Context, call *dispatch.ToolCall) dispatch.Result
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
