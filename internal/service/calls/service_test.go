package calls

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	callLogRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/calllog"
	"github.com/m04kA/RVA-ReservationService/internal/service/calls/models"
)

// Фейк репозитория журнала звонков

type fakeCallLogRepo struct {
	sessions map[uuid.UUID]*domain.CallSession
}

func newFakeCallLogRepo() *fakeCallLogRepo {
	return &fakeCallLogRepo{sessions: map[uuid.UUID]*domain.CallSession{}}
}

func (f *fakeCallLogRepo) Create(_ context.Context, session *domain.CallSession) (*domain.CallSession, error) {
	copied := *session
	copied.CreatedAt = time.Now()
	f.sessions[session.ID] = &copied
	result := copied
	return &result, nil
}

func (f *fakeCallLogRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.CallSession, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, callLogRepo.ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeCallLogRepo) AttachBooking(_ context.Context, id uuid.UUID, bookingID int64) error {
	s, ok := f.sessions[id]
	if !ok {
		return callLogRepo.ErrSessionNotFound
	}
	if s.BookingID != nil {
		return callLogRepo.ErrBookingAlreadyLinked
	}
	s.BookingID = &bookingID
	return nil
}

func (f *fakeCallLogRepo) Close(_ context.Context, id uuid.UUID, outcome domain.CallOutcome, endedAt time.Time, durationSeconds int, agentNotes *string) error {
	s, ok := f.sessions[id]
	if !ok {
		return callLogRepo.ErrSessionNotFound
	}
	if s.Outcome != domain.CallInProgress {
		return callLogRepo.ErrSessionAlreadyClosed
	}
	s.Outcome = outcome
	s.EndedAt = &endedAt
	s.DurationSeconds = &durationSeconds
	if agentNotes != nil {
		s.AgentNotes = agentNotes
	}
	return nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Тесты

func TestStart_CreatesInProgressSession(t *testing.T) {
	repo := newFakeCallLogRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Start(context.Background(), &models.StartCallRequest{
		CallerPhone: "+79990001122",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.CallInProgress), resp.Outcome)
	assert.Equal(t, "+79990001122", resp.CallerPhone)
	assert.Nil(t, resp.BookingID)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	assert.Contains(t, repo.sessions, id)
}

func TestStart_EmptyPhoneRejected(t *testing.T) {
	svc := NewService(newFakeCallLogRepo(), nopLogger{})

	_, err := svc.Start(context.Background(), &models.StartCallRequest{CallerPhone: "  "})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAttachBooking_LinksOnce(t *testing.T) {
	repo := newFakeCallLogRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Start(context.Background(), &models.StartCallRequest{CallerPhone: "+79990001122"})
	require.NoError(t, err)
	sessionID := uuid.MustParse(resp.ID)

	require.NoError(t, svc.AttachBooking(context.Background(), sessionID, 42))

	// Привязка неизменяема: вторая попытка отклоняется, первая сохраняется
	err = svc.AttachBooking(context.Background(), sessionID, 43)
	assert.ErrorIs(t, err, ErrAlreadyLinked)
	assert.Equal(t, int64(42), *repo.sessions[sessionID].BookingID)
}

func TestAttachBooking_UnknownSession(t *testing.T) {
	svc := NewService(newFakeCallLogRepo(), nopLogger{})

	err := svc.AttachBooking(context.Background(), uuid.New(), 42)

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestClose_ComputesDuration(t *testing.T) {
	repo := newFakeCallLogRepo()
	svc := NewService(repo, nopLogger{})

	startedAt := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)
	svc.timeProvider = &fakeTimeProvider{now: startedAt}

	resp, err := svc.Start(context.Background(), &models.StartCallRequest{CallerPhone: "+79990001122"})
	require.NoError(t, err)
	sessionID := uuid.MustParse(resp.ID)

	// Звонок длился 3 минуты 20 секунд
	svc.timeProvider = &fakeTimeProvider{now: startedAt.Add(3*time.Minute + 20*time.Second)}

	closed, err := svc.Close(context.Background(), sessionID, &models.CloseCallRequest{
		Outcome: string(domain.CallCompleted),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.CallCompleted), closed.Outcome)
	require.NotNil(t, closed.DurationSeconds)
	assert.Equal(t, 200, *closed.DurationSeconds)
	assert.NotNil(t, closed.EndedAt)
}

func TestClose_TerminalOutcomesOnly(t *testing.T) {
	for _, outcome := range []string{"in_progress", "ringing", ""} {
		t.Run(outcome, func(t *testing.T) {
			repo := newFakeCallLogRepo()
			svc := NewService(repo, nopLogger{})

			resp, err := svc.Start(context.Background(), &models.StartCallRequest{CallerPhone: "+79990001122"})
			require.NoError(t, err)

			_, err = svc.Close(context.Background(), uuid.MustParse(resp.ID), &models.CloseCallRequest{
				Outcome: outcome,
			})
			assert.ErrorIs(t, err, ErrInvalidOutcome)
		})
	}
}

func TestAttachBooking_InvalidBookingID(t *testing.T) {
	svc := NewService(newFakeCallLogRepo(), nopLogger{})

	err := svc.AttachBooking(context.Background(), uuid.New(), 0)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClose_AgentNotesTooLong(t *testing.T) {
	repo := newFakeCallLogRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Start(context.Background(), &models.StartCallRequest{CallerPhone: "+79990001122"})
	require.NoError(t, err)

	notes := strings.Repeat("a", domain.MaxAgentNotesLength+1)
	_, err = svc.Close(context.Background(), uuid.MustParse(resp.ID), &models.CloseCallRequest{
		Outcome:    string(domain.CallCompleted),
		AgentNotes: &notes,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClose_SavesAgentNotes(t *testing.T) {
	repo := newFakeCallLogRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Start(context.Background(), &models.StartCallRequest{CallerPhone: "+79990001122"})
	require.NoError(t, err)

	notes := "Гость просил столик у окна"
	closed, err := svc.Close(context.Background(), uuid.MustParse(resp.ID), &models.CloseCallRequest{
		Outcome:    string(domain.CallCompleted),
		AgentNotes: &notes,
	})

	require.NoError(t, err)
	require.NotNil(t, closed.AgentNotes)
	assert.Equal(t, notes, *closed.AgentNotes)
}

func TestClose_ClosedSessionStaysClosed(t *testing.T) {
	repo := newFakeCallLogRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Start(context.Background(), &models.StartCallRequest{CallerPhone: "+79990001122"})
	require.NoError(t, err)
	sessionID := uuid.MustParse(resp.ID)

	_, err = svc.Close(context.Background(), sessionID, &models.CloseCallRequest{
		Outcome: string(domain.CallAbandoned),
	})
	require.NoError(t, err)

	_, err = svc.Close(context.Background(), sessionID, &models.CloseCallRequest{
		Outcome: string(domain.CallCompleted),
	})
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.Equal(t, domain.CallAbandoned, repo.sessions[sessionID].Outcome)
}
