package find_booking

import (
	"context"

	"github.com/m04kA/RVA-ReservationService/internal/service/bookings/models"
)

type BookingService interface {
	FindByConfirmation(ctx context.Context, req *models.FindBookingRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
