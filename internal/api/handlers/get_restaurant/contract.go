package get_restaurant

import (
	"context"

	"github.com/m04kA/RVA-ReservationService/internal/service/restaurants/models"
)

// RestaurantsService интерфейс сервиса ресторанов
type RestaurantsService interface {
	Get(ctx context.Context, id int64) (*models.RestaurantResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
