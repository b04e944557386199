package restaurants

import (
	"context"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
)

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	UpdateSettings(ctx context.Context, id int64, upd domain.RestaurantSettingsUpdate) (*domain.Restaurant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
