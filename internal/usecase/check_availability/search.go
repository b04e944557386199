package check_availability

import (
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
)

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

// windowFits проверяет, помещается ли группа в окно с учётом занятых мест
func windowFits(window domain.TimeSlot, partySize, capacity int, bookings []*domain.Booking) bool {
	return capacity-occupiedSeats(window, bookings) >= partySize
}

// findAlternatives ищет ближайшие свободные окна на ту же дату.
// Кандидаты перебираются с шагом stepMinutes в обе стороны от запрошенного
// времени: ближние раньше дальних, при равной удалённости более раннее время
// первым. Кандидат подходит, если окно целиком в рабочих часах, ещё не
// началось и группа помещается по вместимости
func findAlternatives(
	requested domain.TimeSlot,
	partySize int,
	restaurant *domain.Restaurant,
	schedule domain.DaySchedule,
	bookings []*domain.Booking,
	now time.Time,
	cfg Config,
) []domain.TimeSlot {
	alternatives := make([]domain.TimeSlot, 0, cfg.MaxAlternatives)

	maxSteps := (24 * 60) / cfg.SearchStepMinutes

	for k := 1; k <= maxSteps && len(alternatives) < cfg.MaxAlternatives; k++ {
		for _, offset := range []int{-k * cfg.SearchStepMinutes, k * cfg.SearchStepMinutes} {
			if len(alternatives) >= cfg.MaxAlternatives {
				break
			}

			start, err := requested.StartTime.AddMinutes(offset)
			if err != nil {
				// Кандидат вышел за пределы суток
				continue
			}

			candidate := domain.TimeSlot{
				Date:            requested.Date,
				StartTime:       start,
				DurationMinutes: requested.DurationMinutes,
			}

			if !schedule.SlotWithinHours(candidate.StartTime, candidate.DurationMinutes) {
				continue
			}

			startsAt, err := candidate.StartsAt()
			if err != nil || !startsAt.After(now) {
				continue
			}

			if !windowFits(candidate, partySize, restaurant.MaxCapacity, bookings) {
				continue
			}

			alternatives = append(alternatives, candidate)
		}
	}

	return alternatives
}
