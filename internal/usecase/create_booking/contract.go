package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	"github.com/m04kA/RVA-ReservationService/internal/integrations/notifier"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByRestaurantWithFilter внутри транзакции блокирует строки даты через FOR UPDATE
	GetByRestaurantWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// RestaurantRepository интерфейс репозитория ресторанов
type RestaurantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetOrCreateByPhone(ctx context.Context, phone, name string) (*domain.Customer, error)
}

// CodeGenerator интерфейс генератора кодов подтверждения
type CodeGenerator interface {
	Generate(ctx context.Context, restaurantID int64) (string, error)
}

// Notifier интерфейс шлюза уведомлений
// Доставка best-effort: ошибки доставки не откатывают бронирование
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, confirmation *notifier.BookingConfirmation) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
