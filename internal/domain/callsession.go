package domain

import (
	"time"

	"github.com/google/uuid"
)

// CallOutcome represents the terminal outcome of a voice call session
type CallOutcome string

const (
	CallInProgress CallOutcome = "in_progress"
	CallCompleted  CallOutcome = "completed"
	CallFailed     CallOutcome = "failed"
	CallAbandoned  CallOutcome = "abandoned"
)

// CallSession represents one voice interaction, optionally linked to a single booking
type CallSession struct {
	ID          uuid.UUID
	CallerPhone string
	Purpose     *string

	StartedAt       time.Time
	EndedAt         *time.Time
	DurationSeconds *int

	// BookingID устанавливается не более одного раза, после установки не меняется
	BookingID *int64

	Outcome    CallOutcome
	AgentNotes *string

	CreatedAt time.Time
}

// IsClosed returns true if the session has reached a terminal outcome
func (s *CallSession) IsClosed() bool {
	return s.Outcome != CallInProgress
}

// HasBooking returns true if a booking has been attached to the session
func (s *CallSession) HasBooking() bool {
	return s.BookingID != nil
}
