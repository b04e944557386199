package calllog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	"github.com/m04kA/RVA-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/RVA-ReservationService/pkg/psqlbuilder"
)

var callLogColumns = []string{
	"id",
	"caller_phone",
	"purpose",
	"started_at",
	"ended_at",
	"duration_seconds",
	"booking_id",
	"outcome",
	"agent_notes",
	"created_at",
}

// Repository репозиторий для работы с журналом звонков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала звонков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию звонка
func (r *Repository) Create(ctx context.Context, session *domain.CallSession) (*domain.CallSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("call_logs").
		Columns("id", "caller_phone", "purpose", "started_at", "outcome").
		Values(session.ID, session.CallerPhone, session.Purpose, session.StartedAt, session.Outcome).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	session.CreatedAt = createdAt.Time

	return session, nil
}

// GetByID получает сессию звонка по идентификатору
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CallSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(callLogColumns...).
		From("call_logs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSession(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// AttachBooking привязывает бронирование к сессии.
// Привязка выполняется не более одного раза: повторный вызов возвращает
// ErrBookingAlreadyLinked, даже если передан тот же booking_id
func (r *Repository) AttachBooking(ctx context.Context, id uuid.UUID, bookingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("call_logs").
		Set("booking_id", bookingID).
		Where(squirrel.Eq{"id": id}).
		Where("booking_id IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AttachBooking - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AttachBooking - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AttachBooking - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Обновление не прошло либо из-за отсутствия сессии, либо из-за уже привязанного бронирования
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrBookingAlreadyLinked
	}

	return nil
}

// Close переводит сессию в терминальный исход с фиксацией времени окончания.
// Закрытая сессия повторно не закрывается
func (r *Repository) Close(ctx context.Context, id uuid.UUID, outcome domain.CallOutcome, endedAt time.Time, durationSeconds int, agentNotes *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("call_logs").
		Set("outcome", outcome).
		Set("ended_at", endedAt).
		Set("duration_seconds", durationSeconds).
		Where(squirrel.Eq{"id": id, "outcome": domain.CallInProgress})

	if agentNotes != nil {
		updateBuilder = updateBuilder.Set("agent_notes", *agentNotes)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Close - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Close - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Close - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrSessionAlreadyClosed
	}

	return nil
}

// GetByPhone получает историю звонков по номеру телефона, свежие первыми
func (r *Repository) GetByPhone(ctx context.Context, phone string, limit uint64) ([]*domain.CallSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(callLogColumns...).
		From("call_logs").
		Where(squirrel.Eq{"caller_phone": phone}).
		OrderBy("started_at DESC")

	if limit > 0 {
		selectBuilder = selectBuilder.Limit(limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sessions := make([]*domain.CallSession, 0)
	for rows.Next() {
		session, err := r.scanSessionRow(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - rows error: %v", ErrScanRow, err)
	}

	return sessions, nil
}

func (r *Repository) scanSession(row *sql.Row, op string) (*domain.CallSession, error) {
	var session domain.CallSession
	var endedAt, createdAt sql.NullTime
	var durationSeconds sql.NullInt64
	var bookingID sql.NullInt64

	err := row.Scan(
		&session.ID,
		&session.CallerPhone,
		&session.Purpose,
		&session.StartedAt,
		&endedAt,
		&durationSeconds,
		&bookingID,
		&session.Outcome,
		&session.AgentNotes,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan session: %v", ErrScanRow, op, err)
	}

	fillNullable(&session, endedAt, durationSeconds, bookingID, createdAt)

	return &session, nil
}

func (r *Repository) scanSessionRow(rows *sql.Rows) (*domain.CallSession, error) {
	var session domain.CallSession
	var endedAt, createdAt sql.NullTime
	var durationSeconds sql.NullInt64
	var bookingID sql.NullInt64

	err := rows.Scan(
		&session.ID,
		&session.CallerPhone,
		&session.Purpose,
		&session.StartedAt,
		&endedAt,
		&durationSeconds,
		&bookingID,
		&session.Outcome,
		&session.AgentNotes,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: scanSessionRow - scan row: %v", ErrScanRow, err)
	}

	fillNullable(&session, endedAt, durationSeconds, bookingID, createdAt)

	return &session, nil
}

func fillNullable(session *domain.CallSession, endedAt sql.NullTime, durationSeconds, bookingID sql.NullInt64, createdAt sql.NullTime) {
	if endedAt.Valid {
		session.EndedAt = &endedAt.Time
	}
	if durationSeconds.Valid {
		duration := int(durationSeconds.Int64)
		session.DurationSeconds = &duration
	}
	if bookingID.Valid {
		session.BookingID = &bookingID.Int64
	}
	session.CreatedAt = createdAt.Time
}
