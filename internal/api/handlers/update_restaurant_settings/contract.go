package update_restaurant_settings

import (
	"context"

	"github.com/m04kA/RVA-ReservationService/internal/service/restaurants/models"
)

// RestaurantsService интерфейс сервиса ресторанов
type RestaurantsService interface {
	UpdateSettings(ctx context.Context, id int64, req *models.UpdateSettingsRequest) (*models.RestaurantResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
