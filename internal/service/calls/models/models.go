package models

import (
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
)

// Request модели

// StartCallRequest запрос на регистрацию начала звонка
type StartCallRequest struct {
	CallerPhone string  `json:"callerPhone"`
	Purpose     *string `json:"purpose,omitempty"`
}

// CloseCallRequest запрос на завершение звонка
type CloseCallRequest struct {
	Outcome    string  `json:"outcome"` // completed | failed | abandoned
	AgentNotes *string `json:"agentNotes,omitempty"`
}

// Response модели

// CallSessionResponse ответ с данными сессии звонка
type CallSessionResponse struct {
	ID          string  `json:"id"`
	CallerPhone string  `json:"callerPhone"`
	Purpose     *string `json:"purpose,omitempty"`

	StartedAt       time.Time  `json:"startedAt"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
	DurationSeconds *int       `json:"durationSeconds,omitempty"`

	BookingID *int64 `json:"bookingId,omitempty"`

	Outcome    string  `json:"outcome"`
	AgentNotes *string `json:"agentNotes,omitempty"`
}

// FromDomainCallSession конвертирует domain модель в DTO
func FromDomainCallSession(s *domain.CallSession) *CallSessionResponse {
	if s == nil {
		return nil
	}

	return &CallSessionResponse{
		ID:              s.ID.String(),
		CallerPhone:     s.CallerPhone,
		Purpose:         s.Purpose,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
		DurationSeconds: s.DurationSeconds,
		BookingID:       s.BookingID,
		Outcome:         string(s.Outcome),
		AgentNotes:      s.AgentNotes,
	}
}
