package modify_booking

import (
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	modifyBooking "github.com/m04kA/RVA-ReservationService/internal/usecase/modify_booking"
	"github.com/m04kA/RVA-ReservationService/pkg/types"
)

// ModifyBookingRequest HTTP request model
type ModifyBookingRequest struct {
	CustomerPhone string  `json:"customerPhone"`
	NewDate       *string `json:"newDate,omitempty"`      // "2026-09-16"
	NewStartTime  *string `json:"newStartTime,omitempty"` // "20:00"
	NewPartySize  *int    `json:"newPartySize,omitempty"`
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
func (r *ModifyBookingRequest) ToUseCaseRequest(code string) (*modifyBooking.Request, error) {
	req := &modifyBooking.Request{
		ConfirmationCode: code,
		CustomerPhone:    r.CustomerPhone,
		NewPartySize:     r.NewPartySize,
	}

	if r.NewDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.NewDate)
		if err != nil {
			return nil, err
		}
		req.NewDate = &date
	}

	if r.NewStartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.NewStartTime)
		if err != nil {
			return nil, err
		}
		req.NewStartTime = &startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *modifyBooking.Response) *BookingResponse {
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
