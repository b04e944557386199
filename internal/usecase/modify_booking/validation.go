package modify_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ConfirmationCode) == "" {
		return fmt.Errorf("%w: confirmationCode is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	if req.NewDate == nil && req.NewStartTime == nil && req.NewPartySize == nil {
		return fmt.Errorf("%w: nothing to modify", ErrInvalidInput)
	}

	if req.NewDate != nil && req.NewDate.IsZero() {
		return fmt.Errorf("%w: newDate must not be empty", ErrInvalidInput)
	}

	if req.NewStartTime != nil {
		if err := req.NewStartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid newStartTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.NewPartySize != nil {
		if *req.NewPartySize < domain.MinPartySize {
			return fmt.Errorf("%w: newPartySize must be at least %d", ErrInvalidInput, domain.MinPartySize)
		}
		if *req.NewPartySize > domain.MaxPartySize {
			return fmt.Errorf("%w: newPartySize must not exceed %d", ErrInvalidInput, domain.MaxPartySize)
		}
	}

	return nil
}

// validateNotInPast проверяет, что новое окно ещё не началось
func validateNotInPast(slot domain.TimeSlot, now time.Time) error {
	startsAt, err := slot.StartsAt()
	if err != nil {
		return fmt.Errorf("%w: invalid newStartTime: %v", ErrInvalidInput, err)
	}

	if !startsAt.After(now) {
		return ErrTimeInPast
	}

	return nil
}

// occupiedSeats суммирует размеры групп активных бронирований,
// пересекающихся с окном, исключая изменяемое бронирование
func occupiedSeats(window domain.TimeSlot, bookings []*domain.Booking, excludeID int64) int {
	total := 0

	for _, booking := range bookings {
		if booking.ID == excludeID {
			continue
		}
		if !booking.IsActive() {
			continue
		}
		if window.Overlaps(booking.Slot) {
			total += booking.PartySize
		}
	}

	return total
}
