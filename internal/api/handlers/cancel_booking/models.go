package cancel_booking

import (
	"github.com/m04kA/RVA-ReservationService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CustomerPhone string `json:"customerPhone"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(code string) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		ConfirmationCode: code,
		CustomerPhone:    r.CustomerPhone,
	}
}
