package create_booking

import (
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	"github.com/m04kA/RVA-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	RestaurantID    int64            // ID ресторана
	CustomerName    string           // Имя клиента
	CustomerPhone   string           // Телефон клиента (натуральный ключ)
	PartySize       int              // Количество гостей
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала (например, "19:00")
	SpecialRequests *string          // Пожелания клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	RestaurantID int64
	CustomerID   int64

	CustomerName  string
	CustomerPhone string

	PartySize       int
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string

	// ConfirmationCode код, по которому клиент находит и отменяет бронирование
	ConfirmationCode string

	SpecialRequests *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Config настройки создания бронирования
type Config struct {
	ServiceDurationMinutes int // Сколько времени столик занят одним бронированием
}

// withDefaults подставляет значения по умолчанию вместо нулевых настроек
func (c Config) withDefaults() Config {
	if c.ServiceDurationMinutes <= 0 {
		c.ServiceDurationMinutes = domain.DefaultServiceDurationMinutes
	}
	return c
}

func toResponse(booking *domain.Booking) *Response {
	return &Response{
		ID:               booking.ID,
		RestaurantID:     booking.RestaurantID,
		CustomerID:       booking.CustomerID,
		CustomerName:     booking.CustomerName,
		CustomerPhone:    booking.CustomerPhone,
		PartySize:        booking.PartySize,
		Date:             booking.Slot.Date,
		StartTime:        booking.Slot.StartTime,
		DurationMinutes:  booking.Slot.DurationMinutes,
		Status:           string(booking.Status),
		ConfirmationCode: booking.ConfirmationCode,
		SpecialRequests:  booking.SpecialRequests,
		CreatedAt:        booking.CreatedAt,
		UpdatedAt:        booking.UpdatedAt,
	}
}
