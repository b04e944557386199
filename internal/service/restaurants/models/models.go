package models

import (
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на обновление настроек ресторана
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	Phone       *string              `json:"phone,omitempty"`
	Email       *string              `json:"email,omitempty"`
	WorkingDays *domain.WeekSchedule `json:"workingDays,omitempty"`
	MaxCapacity *int                 `json:"maxCapacity,omitempty"`
}

// Response модели

// RestaurantResponse ответ с данными ресторана
type RestaurantResponse struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Address     string              `json:"address"`
	Phone       string              `json:"phone"`
	Email       *string             `json:"email,omitempty"`
	WorkingDays domain.WeekSchedule `json:"workingDays"`
	MaxCapacity int                 `json:"maxCapacity"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// Методы конвертации

// FromDomainRestaurant конвертирует domain модель в DTO
func FromDomainRestaurant(r *domain.Restaurant) *RestaurantResponse {
	if r == nil {
		return nil
	}

	return &RestaurantResponse{
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		Phone:       r.Phone,
		Email:       r.Email,
		WorkingDays: r.WorkingDays,
		MaxCapacity: r.MaxCapacity,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ToDomainUpdate конвертирует запрос в domain модель частичного обновления
func (r *UpdateSettingsRequest) ToDomainUpdate() domain.RestaurantSettingsUpdate {
	return domain.RestaurantSettingsUpdate{
		Phone:       r.Phone,
		Email:       r.Email,
		WorkingDays: r.WorkingDays,
		MaxCapacity: r.MaxCapacity,
	}
}

// HasChanges возвращает true, если хотя бы одно поле задано
func (r *UpdateSettingsRequest) HasChanges() bool {
	return r.Phone != nil || r.Email != nil || r.WorkingDays != nil || r.MaxCapacity != nil
}
