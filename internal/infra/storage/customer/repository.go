package customer

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	"github.com/m04kA/RVA-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/RVA-ReservationService/pkg/psqlbuilder"
)

var customerColumns = []string{
	"id",
	"phone",
	"name",
	"email",
	"preferences",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с клиентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPhone получает клиента по номеру телефона
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"phone": phone}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanCustomer(executor.QueryRowContext(ctx, query, args...), "GetByPhone")
}

// GetOrCreateByPhone возвращает клиента по телефону, создавая запись при отсутствии.
// Телефон - натуральный ключ, поэтому используется upsert: при конфликте
// обновляется имя, если клиент представился иначе
func (r *Repository) GetOrCreateByPhone(ctx context.Context, phone, name string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("phone", "name").
		Values(phone, name).
		Suffix("ON CONFLICT (phone) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()").
		Suffix("RETURNING " + strings.Join(customerColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateByPhone - build upsert query: %v", ErrBuildQuery, err)
	}

	return r.scanCustomer(executor.QueryRowContext(ctx, query, args...), "GetOrCreateByPhone")
}

func (r *Repository) scanCustomer(row *sql.Row, op string) (*domain.Customer, error) {
	var customer domain.Customer
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&customer.ID,
		&customer.Phone,
		&customer.Name,
		&customer.Email,
		&customer.Preferences,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan customer: %v", ErrScanRow, op, err)
	}

	customer.CreatedAt = createdAt.Time
	customer.UpdatedAt = updatedAt.Time

	return &customer, nil
}
