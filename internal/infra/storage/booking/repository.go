package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	"github.com/m04kA/RVA-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/RVA-ReservationService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"restaurant_id",
	"customer_id",
	"customer_name",
	"customer_phone",
	"party_size",
	"booking_date",
	"start_time",
	"duration_minutes",
	"status",
	"confirmation_code",
	"special_requests",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Создание с проверкой вместимости обязано выполняться внутри сериализуемой транзакции,
// иначе возможна гонка с параллельными бронированиями на то же окно
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"restaurant_id",
			"customer_id",
			"customer_name",
			"customer_phone",
			"party_size",
			"booking_date",
			"start_time",
			"duration_minutes",
			"status",
			"confirmation_code",
			"special_requests",
		).
		Values(
			booking.RestaurantID,
			booking.CustomerID,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.PartySize,
			booking.Slot.Date,
			booking.Slot.StartTime,
			booking.Slot.DurationMinutes,
			booking.Status,
			booking.ConfirmationCode,
			booking.SpecialRequests,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByConfirmationAndPhone получает бронирование по коду подтверждения и телефону клиента
// Оба поля обязаны совпасть - несовпадение телефона неотличимо от отсутствия кода,
// чтобы не раскрывать факт существования чужого бронирования
func (r *Repository) GetByConfirmationAndPhone(ctx context.Context, code, phone string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"confirmation_code": code, "customer_phone": phone}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByConfirmationAndPhone - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByConfirmationAndPhone")
}

// ActiveCodeExists проверяет, занят ли код подтверждения активным бронированием ресторана
func (r *Repository) ActiveCodeExists(ctx context.Context, restaurantID int64, code string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{
			"restaurant_id":     restaurantID,
			"confirmation_code": code,
			"status":            activeStatuses,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ActiveCodeExists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ActiveCodeExists - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetByRestaurantWithFilter получает бронирования ресторана с фильтрацией
// по дате, статусу и включению неактивных бронирований.
//
// Если вызов идёт внутри транзакции и указана конкретная дата, строки блокируются
// через FOR UPDATE - это используется usecase создания/изменения бронирования,
// чтобы проверка вместимости и вставка были неделимы
func (r *Repository) GetByRestaurantWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"restaurant_id": filter.RestaurantID})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - исключаем их
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("booking_date ASC, start_time ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRestaurantWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByCustomerPhone получает историю бронирований клиента по телефону
// Если fromDate задан, возвращаются только бронирования начиная с этой даты
func (r *Repository) GetByCustomerPhone(ctx context.Context, phone string, fromDate *time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_phone": phone}).
		OrderBy("booking_date ASC, start_time ASC")

	if fromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *fromDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// Cancel отменяет бронирование с фиксацией времени отмены
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Cancel")
}

// UpdateSlot обновляет временной слот и размер группы бронирования
// Вызывается только внутри сериализуемой транзакции usecase изменения бронирования
func (r *Repository) UpdateSlot(ctx context.Context, id int64, slot domain.TimeSlot, partySize int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("booking_date", slot.Date).
		Set("start_time", slot.StartTime).
		Set("duration_minutes", slot.DurationMinutes).
		Set("party_size", partySize).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSlot - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateSlot")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) scanBooking(row *sql.Row, op string) (*domain.Booking, error) {
	var booking domain.Booking
	var cancelledAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.RestaurantID,
		&booking.CustomerID,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.PartySize,
		&booking.Slot.Date,
		&booking.Slot.StartTime,
		&booking.Slot.DurationMinutes,
		&booking.Status,
		&booking.ConfirmationCode,
		&booking.SpecialRequests,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var cancelledAt, createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.RestaurantID,
			&booking.CustomerID,
			&booking.CustomerName,
			&booking.CustomerPhone,
			&booking.PartySize,
			&booking.Slot.Date,
			&booking.Slot.StartTime,
			&booking.Slot.DurationMinutes,
			&booking.Status,
			&booking.ConfirmationCode,
			&booking.SpecialRequests,
			&cancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		if cancelledAt.Valid {
			booking.CancelledAt = &cancelledAt.Time
		}
		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
