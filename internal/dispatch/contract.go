package dispatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	bookingModels "github.com/m04kA/RVA-ReservationService/internal/service/bookings/models"
	checkAvailability "github.com/m04kA/RVA-ReservationService/internal/usecase/check_availability"
	createBooking "github.com/m04kA/RVA-ReservationService/internal/usecase/create_booking"
	modifyBooking "github.com/m04kA/RVA-ReservationService/internal/usecase/modify_booking"
)

// CreateBookingUseCase интерфейс usecase создания бронирования
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// CheckAvailabilityUseCase интерфейс usecase проверки доступности
type CheckAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
}

// ModifyBookingUseCase интерфейс usecase изменения бронирования
type ModifyBookingUseCase interface {
	Execute(ctx context.Context, req *modifyBooking.Request) (*modifyBooking.Response, error)
}

// BookingsService интерфейс сервиса чтения и отмены бронирований
type BookingsService interface {
	FindByConfirmation(ctx context.Context, req *bookingModels.FindBookingRequest) (*bookingModels.BookingResponse, error)
	Cancel(ctx context.Context, req *bookingModels.CancelBookingRequest) error
}

// CallsService интерфейс сервиса сессий звонков
type CallsService interface {
	AttachBooking(ctx context.Context, sessionID uuid.UUID, bookingID int64) error
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
