package modify_booking

import (
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	"github.com/m04kA/RVA-ReservationService/pkg/types"
)

// Request модель запроса на изменение бронирования.
// Поля New* опциональны, но хотя бы одно должно быть задано
type Request struct {
	ConfirmationCode string // Код подтверждения
	CustomerPhone    string // Телефон клиента (проверка владения)

	NewDate      *time.Time        // Новая дата (опционально)
	NewStartTime *types.TimeString // Новое время начала (опционально)
	NewPartySize *int              // Новый размер группы (опционально)
}

// Response модель ответа с изменённым бронированием
type Response struct {
	ID           int64
	RestaurantID int64

	CustomerName  string
	CustomerPhone string

	PartySize       int
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string

	ConfirmationCode string
	SpecialRequests  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func toResponse(booking *domain.Booking) *Response {
	return &Response{
		ID:               booking.ID,
		RestaurantID:     booking.RestaurantID,
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
