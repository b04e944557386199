package restaurant

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	"github.com/m04kA/RVA-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/RVA-ReservationService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий ресторанов
// Поток бронирований только читает рестораны, запись идёт через UpdateSettings
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресторанов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает ресторан по ID
// Рабочие часы хранятся в JSONB-колонке working_days
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"address",
		"phone",
		"email",
		"working_days",
		"max_capacity",
		"created_at",
		"updated_at",
	).
		From("restaurants").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var restaurant domain.Restaurant
	var workingDaysRaw []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Address,
		&restaurant.Phone,
		&restaurant.Email,
		&workingDaysRaw,
		&restaurant.MaxCapacity,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan restaurant: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(workingDaysRaw, &restaurant.WorkingDays); err != nil {
		return nil, fmt.Errorf("%w: GetByID - unmarshal working_days: %v", ErrScanRow, err)
	}

	restaurant.CreatedAt = createdAt.Time
	restaurant.UpdatedAt = updatedAt.Time

	return &restaurant, nil
}

// UpdateSettings частично обновляет настройки ресторана
// Обновляются только непустые поля, затем запись перечитывается
func (r *Repository) UpdateSettings(ctx context.Context, id int64, upd domain.RestaurantSettingsUpdate) (*domain.Restaurant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("restaurants").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.Phone != nil {
		updateBuilder = updateBuilder.Set("phone", *upd.Phone)
	}
	if upd.Email != nil {
		updateBuilder = updateBuilder.Set("email", *upd.Email)
	}
	if upd.WorkingDays != nil {
		workingDaysRaw, err := json.Marshal(upd.WorkingDays)
		if err != nil {
			return nil, fmt.Errorf("%w: UpdateSettings - marshal working_days: %v", ErrBuildQuery, err)
		}
		updateBuilder = updateBuilder.Set("working_days", workingDaysRaw)
	}
	if upd.MaxCapacity != nil {
		updateBuilder = updateBuilder.Set("max_capacity", *upd.MaxCapacity)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSettings - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSettings - exec update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSettings - rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrRestaurantNotFound
	}

	return r.GetByID(ctx, id)
}
