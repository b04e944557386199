package domain

import (
	"time"

	"github.com/m04kA/RVA-ReservationService/pkg/types"
)

// Restaurant represents restaurant settings used by the reservation core.
// The booking flow itself never mutates the record; changes come in through
// the settings surface only.
type Restaurant struct {
	ID          int64
	Name        string
	Address     string
	Phone       string
	Email       *string
	WorkingDays WeekSchedule
	MaxCapacity int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RestaurantSettingsUpdate partial update of restaurant settings.
// Nil fields keep their current values.
type RestaurantSettingsUpdate struct {
	Phone       *string
	Email       *string
	WorkingDays *WeekSchedule
	MaxCapacity *int
}

// WeekSchedule opening hours per weekday
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// DaySchedule opening hours for a single weekday
type DaySchedule struct {
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`  // "HH:MM"
	CloseTime *string `json:"closeTime,omitempty"` // "HH:MM"
}

// ScheduleFor returns the schedule for the weekday of the given date
func (r *Restaurant) ScheduleFor(date time.Time) DaySchedule {
	switch date.Weekday() {
	case time.Monday:
		return r.WorkingDays.Monday
	case time.Tuesday:
		return r.WorkingDays.Tuesday
	case time.Wednesday:
		return r.WorkingDays.Wednesday
	case time.Thursday:
		return r.WorkingDays.Thursday
	case time.Friday:
		return r.WorkingDays.Friday
	case time.Saturday:
		return r.WorkingDays.Saturday
	case time.Sunday:
		return r.WorkingDays.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}

// SlotWithinHours returns true if the whole slot window fits into the day's opening hours
func (d DaySchedule) SlotWithinHours(start types.TimeString, durationMinutes int) bool {
	if !d.IsOpen || d.OpenTime == nil || d.CloseTime == nil {
		return false
	}

	openTime, err := types.NewTimeStringFromString(*d.OpenTime)
	if err != nil {
		return false
	}
	closeTime, err := types.NewTimeStringFromString(*d.CloseTime)
	if err != nil {
		return false
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}

	return !start.IsBefore(openTime) && !end.IsAfter(closeTime)
}
