package calls

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	callLogRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/calllog"
	"github.com/m04kA/RVA-ReservationService/internal/service/calls/models"
)

// Service сервис учёта сессий звонков.
// Наблюдательный по отношению к бронированиям: ошибки здесь никогда
// не должны ронять операции с бронированиями у вызывающего кода
type Service struct {
	callLogRepo  CallLogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса звонков
func NewService(callLogRepo CallLogRepository, logger Logger) *Service {
	return &Service{
		callLogRepo:  callLogRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Start регистрирует начало звонка и возвращает новую сессию
func (s *Service) Start(ctx context.Context, req *models.StartCallRequest) (*models.CallSessionResponse, error) {
	s.logger.Info("StartCall: phone=%s", req.CallerPhone)

	if strings.TrimSpace(req.CallerPhone) == "" {
		s.logger.Warn("StartCall: empty caller phone")
		return nil, fmt.Errorf("%w: callerPhone is required", ErrInvalidInput)
	}

	session := &domain.CallSession{
		ID:          uuid.New(),
		CallerPhone: req.CallerPhone,
		Purpose:     req.Purpose,
		StartedAt:   s.timeProvider.Now(),
		Outcome:     domain.CallInProgress,
	}

	created, err := s.callLogRepo.Create(ctx, session)
	if err != nil {
		s.logger.Error("StartCall: repository error: %v", err)
		return nil, fmt.Errorf("%w: Start - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("StartCall: started session id=%s", created.ID)
	return models.FromDomainCallSession(created), nil
}

// AttachBooking привязывает бронирование к сессии.
// Привязка неизменяема: вторая попытка возвращает ErrAlreadyLinked
func (s *Service) AttachBooking(ctx context.Context, sessionID uuid.UUID, bookingID int64) error {
	s.logger.Info("AttachBooking: session=%s, booking=%d", sessionID, bookingID)

	if bookingID <= 0 {
		s.logger.Warn("AttachBooking: invalid booking id=%d", bookingID)
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	err := s.callLogRepo.AttachBooking(ctx, sessionID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, callLogRepo.ErrSessionNotFound):
			s.logger.Warn("AttachBooking: session id=%s not found", sessionID)
			return ErrSessionNotFound
		case errors.Is(err, callLogRepo.ErrBookingAlreadyLinked):
			s.logger.Warn("AttachBooking: session id=%s already linked", sessionID)
			return ErrAlreadyLinked
		default:
			s.logger.Error("AttachBooking: repository error for session id=%s: %v", sessionID, err)
			return fmt.Errorf("%w: AttachBooking - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("AttachBooking: linked booking %d to session %s", bookingID, sessionID)
	return nil
}

// Close переводит сессию в терминальный исход и фиксирует длительность звонка
func (s *Service) Close(ctx context.Context, sessionID uuid.UUID, req *models.CloseCallRequest) (*models.CallSessionResponse, error) {
	s.logger.Info("CloseCall: session=%s, outcome=%s", sessionID, req.Outcome)

	outcome, err := toTerminalOutcome(req.Outcome)
	if err != nil {
		s.logger.Warn("CloseCall: invalid outcome=%s for session id=%s", req.Outcome, sessionID)
		return nil, err
	}

	if req.AgentNotes != nil && len(*req.AgentNotes) > domain.MaxAgentNotesLength {
		s.logger.Warn("CloseCall: agent notes too long for session id=%s", sessionID)
		return nil, fmt.Errorf("%w: agentNotes must not exceed %d characters", ErrInvalidInput, domain.MaxAgentNotesLength)
	}

	session, err := s.callLogRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, callLogRepo.ErrSessionNotFound) {
			s.logger.Warn("CloseCall: session id=%s not found", sessionID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("CloseCall: repository error for session id=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Close - repository error: %v", ErrInternal, err)
	}

	if session.IsClosed() {
		s.logger.Warn("CloseCall: session id=%s already closed with outcome=%s", sessionID, session.Outcome)
		return nil, ErrSessionClosed
	}

	endedAt := s.timeProvider.Now()
	durationSeconds := int(endedAt.Sub(session.StartedAt).Seconds())
	if durationSeconds < 0 {
		durationSeconds = 0
	}

	err = s.callLogRepo.Close(ctx, sessionID, outcome, endedAt, durationSeconds, req.AgentNotes)
	if err != nil {
		switch {
		case errors.Is(err, callLogRepo.ErrSessionNotFound):
			return nil, ErrSessionNotFound
		case errors.Is(err, callLogRepo.ErrSessionAlreadyClosed):
			// Гонка с параллельным закрытием
			s.logger.Warn("CloseCall: session id=%s closed concurrently", sessionID)
			return nil, ErrSessionClosed
		default:
			s.logger.Error("CloseCall: repository error for session id=%s: %v", sessionID, err)
			return nil, fmt.Errorf("%w: Close - repository error: %v", ErrInternal, err)
		}
	}

	closed, err := s.callLogRepo.GetByID(ctx, sessionID)
	if err != nil {
		s.logger.Error("CloseCall: failed to reload session id=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Close - failed to reload session: %v", ErrInternal, err)
	}

	s.logger.Info("CloseCall: closed session id=%s, outcome=%s, duration=%ds", sessionID, outcome, durationSeconds)
	return models.FromDomainCallSession(closed), nil
}

// toTerminalOutcome валидирует и конвертирует строку в терминальный исход
func toTerminalOutcome(outcome string) (domain.CallOutcome, error) {
	switch domain.CallOutcome(outcome) {
	case domain.CallCompleted:
		return domain.CallCompleted, nil
	case domain.CallFailed:
		return domain.CallFailed, nil
	case domain.CallAbandoned:
		return domain.CallAbandoned, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}
}
