package check_availability

import (
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	"github.com/m04kA/RVA-ReservationService/pkg/types"
)

// Request модель запроса на проверку доступности столика
type Request struct {
	RestaurantID int64            // ID ресторана
	Date         time.Time        // Дата бронирования (без времени)
	Time         types.TimeString // Запрошенное время начала (например, "19:00")
	PartySize    int              // Количество гостей
}

// Response модель ответа на проверку доступности
type Response struct {
	Available bool            // Свободно ли запрошенное окно
	Slot      domain.TimeSlot // Запрошенное окно обслуживания

	// Alternatives ближайшие свободные окна на ту же дату,
	// отсортированы по удалённости от запрошенного времени
	Alternatives []domain.TimeSlot

	// RemainingCapacity сколько мест остаётся свободным в запрошенном окне
	RemainingCapacity int
}

// Config настройки поиска доступности
type Config struct {
	ServiceDurationMinutes int // Сколько времени столик занят одним бронированием
	SearchStepMinutes      int // Шаг поиска альтернативных окон
	MaxAlternatives        int // Максимум альтернатив в ответе
}

// withDefaults подставляет значения по умолчанию вместо нулевых настроек
func (c Config) withDefaults() Config {
	if c.ServiceDurationMinutes <= 0 {
		c.ServiceDurationMinutes = domain.DefaultServiceDurationMinutes
	}
	if c.SearchStepMinutes <= 0 {
		c.SearchStepMinutes = domain.DefaultSearchStepMinutes
	}
	if c.MaxAlternatives <= 0 {
		c.MaxAlternatives = domain.DefaultMaxAlternatives
	}
	return c
}
