package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a table reservation in the system
type Booking struct {
	ID           int64
	RestaurantID int64
	CustomerID   int64

	// Denormalized customer data for lookups and history
	CustomerName  string
	CustomerPhone string

	PartySize int
	Slot      TimeSlot
	Status    BookingStatus

	// ConfirmationCode уникален среди активных бронирований ресторана, не меняется после назначения
	ConfirmationCode string

	SpecialRequests *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies capacity
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeModified returns true if the booking slot or party size can be changed
func (b *Booking) CanBeModified() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookingsFilter фильтр для выборки бронирований ресторана
type BookingsFilter struct {
	RestaurantID    int64      // Обязательный параметр
	Date            *time.Time // Дата бронирования (опционально)
	Status          *BookingStatus
	IncludeInactive bool // Включать ли отменённые и завершённые бронирования
}
