package restaurants

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/RVA-ReservationService/internal/service/restaurants/models"
	"github.com/m04kA/RVA-ReservationService/pkg/types"
)

// Service сервис для чтения и обновления настроек ресторана.
// Поток бронирований к этим операциям не обращается
type Service struct {
	restaurantRepo RestaurantRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса ресторанов
func NewService(restaurantRepo RestaurantRepository, logger Logger) *Service {
	return &Service{
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

// Get возвращает данные ресторана по ID
func (s *Service) Get(ctx context.Context, id int64) (*models.RestaurantResponse, error) {
	s.logger.Info("Get: restaurant_id=%d", id)

	if id <= 0 {
		s.logger.Warn("Get: invalid restaurant id=%d", id)
		return nil, fmt.Errorf("%w: restaurant id must be positive", ErrInvalidInput)
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("Get: restaurant id=%d not found", id)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("Get: repository error for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRestaurant(restaurant), nil
}

// UpdateSettings частично обновляет настройки ресторана
func (s *Service) UpdateSettings(ctx context.Context, id int64, req *models.UpdateSettingsRequest) (*models.RestaurantResponse, error) {
	s.logger.Info("UpdateSettings: restaurant_id=%d", id)

	if id <= 0 {
		s.logger.Warn("UpdateSettings: invalid restaurant id=%d", id)
		return nil, fmt.Errorf("%w: restaurant id must be positive", ErrInvalidInput)
	}

	if err := s.validateUpdate(req); err != nil {
		s.logger.Warn("UpdateSettings: validation failed for restaurant id=%d: %v", id, err)
		return nil, err
	}

	restaurant, err := s.restaurantRepo.UpdateSettings(ctx, id, req.ToDomainUpdate())
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			s.logger.Warn("UpdateSettings: restaurant id=%d not found", id)
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("UpdateSettings: repository error for restaurant id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSettings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSettings: restaurant id=%d updated", id)
	return models.FromDomainRestaurant(restaurant), nil
}

func (s *Service) validateUpdate(req *models.UpdateSettingsRequest) error {
	if !req.HasChanges() {
		return fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}

	if req.Phone != nil && strings.TrimSpace(*req.Phone) == "" {
		return fmt.Errorf("%w: phone must not be empty", ErrInvalidInput)
	}

	if req.MaxCapacity != nil && *req.MaxCapacity <= 0 {
		return fmt.Errorf("%w: maxCapacity must be positive", ErrInvalidInput)
	}

	if req.WorkingDays != nil {
		if err := validateWeekSchedule(req.WorkingDays); err != nil {
			return err
		}
	}

	return nil
}

// validateWeekSchedule проверяет, что у каждого открытого дня заданы корректные
// часы работы и открытие раньше закрытия
func validateWeekSchedule(week *domain.WeekSchedule) error {
	days := map[string]domain.DaySchedule{
		"monday":    week.Monday,
		"tuesday":   week.Tuesday,
		"wednesday": week.Wednesday,
		"thursday":  week.Thursday,
		"friday":    week.Friday,
		"saturday":  week.Saturday,
		"sunday":    week.Sunday,
	}

	for name, day := range days {
		if !day.IsOpen {
			continue
		}
		if day.OpenTime == nil || day.CloseTime == nil {
			return fmt.Errorf("%w: %s is open but hours are missing", ErrInvalidInput, name)
		}
		openTime, err := types.NewTimeStringFromString(*day.OpenTime)
		if err != nil {
			return fmt.Errorf("%w: %s openTime: %v", ErrInvalidInput, name, err)
		}
		closeTime, err := types.NewTimeStringFromString(*day.CloseTime)
		if err != nil {
			return fmt.Errorf("%w: %s closeTime: %v", ErrInvalidInput, name, err)
		}
		if !openTime.IsBefore(closeTime) {
			return fmt.Errorf("%w: %s openTime must be before closeTime", ErrInvalidInput, name)
		}
	}

	return nil
}
