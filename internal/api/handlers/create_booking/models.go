package create_booking

import (
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	createBooking "github.com/m04kA/RVA-ReservationService/internal/usecase/create_booking"
	"github.com/m04kA/RVA-ReservationService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RestaurantID    int64   `json:"restaurantId"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	PartySize       int     `json:"partySize"`
	Date            string  `json:"date"`      // "2026-09-15"
	StartTime       string  `json:"startTime"` // "19:00"
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64   `json:"id"`
	RestaurantID     int64   `json:"restaurantId"`
	CustomerName     string  `json:"customerName"`
	CustomerPhone    string  `json:"customerPhone"`
	PartySize        int     `json:"partySize"`
	Date             string  `json:"date"`
	StartTime        string  `json:"startTime"`
	DurationMinutes  int     `json:"durationMinutes"`
	Status           string  `json:"status"`
	ConfirmationCode string  `json:"confirmationCode"`
	SpecialRequests  *string `json:"specialRequests,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RestaurantID:    r.RestaurantID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		PartySize:       r.PartySize,
		Date:            date,
		StartTime:       startTime,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		RestaurantID:     resp.RestaurantID,
		CustomerName:     resp.CustomerName,
		CustomerPhone:    resp.CustomerPhone,
		PartySize:        resp.PartySize,
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		DurationMinutes:  resp.DurationMinutes,
		Status:           resp.Status,
		ConfirmationCode: resp.ConfirmationCode,
		SpecialRequests:  resp.SpecialRequests,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
