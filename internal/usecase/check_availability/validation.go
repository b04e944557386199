package check_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RestaurantID <= 0 {
		return fmt.Errorf("%w: restaurantID must be positive", ErrInvalidInput)
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

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}

	return nil
}

// validateNotInPast проверяет, что запрошенное окно ещё не началось
func validateNotInPast(slot domain.TimeSlot, now time.Time) error {
	startsAt, err := slot.StartsAt()
	if err != nil {
		return fmt.Errorf("%w: time must be in HH:MM format", ErrInvalidInput)
	}

	if !startsAt.After(now) {
		return ErrTimeInPast
	}

	return nil
}
