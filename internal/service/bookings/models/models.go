package models

import (
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
)

// Request модели

// FindBookingRequest запрос на поиск бронирования по коду и телефону
type FindBookingRequest struct {
	ConfirmationCode string `json:"confirmationCode"`
	CustomerPhone    string `json:"customerPhone"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	ConfirmationCode string `json:"confirmationCode"`
	CustomerPhone    string `json:"customerPhone"`
}

// GetCustomerBookingsRequest запрос истории бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerPhone string `json:"customerPhone"`
	IncludePast   bool   `json:"includePast,omitempty"` // По умолчанию только будущие
}

// GetRestaurantBookingsRequest запрос бронирований ресторана за дату
type GetRestaurantBookingsRequest struct {
	RestaurantID    int64      `json:"restaurantId"`
	Date            *time.Time `json:"date,omitempty"`   // nil = все даты
	Status          *string    `json:"status,omitempty"` // nil = все статусы
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64 `json:"id"`
	RestaurantID int64 `json:"restaurantId"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	PartySize       int    `json:"partySize"`
	Date            string `json:"date"`      // "2026-09-15"
	StartTime       string `json:"startTime"` // "19:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	ConfirmationCode string  `json:"confirmationCode"`
	SpecialRequests  *string `json:"specialRequests,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:               b.ID,
		RestaurantID:     b.RestaurantID,
		CustomerName:     b.CustomerName,
		CustomerPhone:    b.CustomerPhone,
		PartySize:        b.PartySize,
		Date:             b.Slot.Date.Format(domain.DateFormat),
		StartTime:        b.Slot.StartTime.String(),
		DurationMinutes:  b.Slot.DurationMinutes,
		Status:           string(b.Status),
		ConfirmationCode: b.ConfirmationCode,
		SpecialRequests:  b.SpecialRequests,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}
