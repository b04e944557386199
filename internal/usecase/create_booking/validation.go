package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	if req.PartySize < domain.MinPartySize {
		return fmt.Errorf("%w: partySize must be at least %d", ErrInvalidInput, domain.MinPartySize)
	}

	if req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must not exceed %d", ErrInvalidInput, domain.MaxPartySize)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests must not exceed %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// validateNotInPast проверяет, что запрошенное окно ещё не началось
func validateNotInPast(slot domain.TimeSlot, now time.Time) error {
	startsAt, err := slot.StartsAt()
	if err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if !startsAt.After(now) {
		return ErrTimeInPast
	}

	return nil
}

// occupiedSeats суммирует размеры групп активных бронирований,
// пересекающихся с указанным окном обслуживания
func occupiedSeats(window domain.TimeSlot, bookings []*domain.Booking) int {
	total := 0

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if window.Overlaps(booking.Slot) {
			total += booking.PartySize
		}
	}

	return total
}
