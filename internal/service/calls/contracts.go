package calls

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
)

// CallLogRepository интерфейс репозитория журнала звонков
type CallLogRepository interface {
	Create(ctx context.Context, session *domain.CallSession) (*domain.CallSession, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CallSession, error)
	AttachBooking(ctx context.Context, id uuid.UUID, bookingID int64) error
	Close(ctx context.Context, id uuid.UUID, outcome domain.CallOutcome, endedAt time.Time, durationSeconds int, agentNotes *string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
