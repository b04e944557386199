package domain

import (
	"time"

	"github.com/m04kA/RVA-ReservationService/pkg/types"
)

// TimeSlot represents a reservation occupancy window: date, start time and duration.
// Identity is computed, two slots are the same window when all three fields match.
type TimeSlot struct {
	Date            time.Time // Дата без времени
	StartTime       types.TimeString
	DurationMinutes int
}

// End returns the end time of the slot
func (s TimeSlot) End() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}

// Overlaps returns true if the two slots occupy intersecting windows on the same date.
// Строгие неравенства: граничащие интервалы (конец одного == начало другого) не пересекаются
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	if !isSameDay(s.Date, other.Date) {
		return false
	}

	sEnd, err := s.End()
	if err != nil {
		return false
	}
	oEnd, err := other.End()
	if err != nil {
		return false
	}

	return s.StartTime.IsBefore(oEnd) && sEnd.IsAfter(other.StartTime)
}

// StartsAt returns the slot start as an absolute point in time
func (s TimeSlot) StartsAt() (time.Time, error) {
	minutes, err := s.StartTime.TotalMinutes()
	if err != nil {
		return time.Time{}, err
	}
	day := time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), 0, 0, 0, 0, s.Date.Location())
	return day.Add(time.Duration(minutes) * time.Minute), nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
