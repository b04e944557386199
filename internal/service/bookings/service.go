package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/RVA-ReservationService/internal/service/bookings/models"
)

// Service сервис для чтения и отмены бронирований.
// Все операции требуют пары код+телефон: клиент распоряжается только
// своими бронированиями
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// FindByConfirmation ищет бронирование по коду подтверждения и телефону.
// Несовпадение любого из двух полей даёт одинаковый ErrBookingNotFound
func (s *Service) FindByConfirmation(ctx context.Context, req *models.FindBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("FindByConfirmation: code=%s", req.ConfirmationCode)

	if err := validateCodeAndPhone(req.ConfirmationCode, req.CustomerPhone); err != nil {
		s.logger.Warn("FindByConfirmation: validation failed: %v", err)
		return nil, err
	}

	booking, err := s.bookingRepo.GetByConfirmationAndPhone(ctx, normalizeCode(req.ConfirmationCode), req.CustomerPhone)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("FindByConfirmation: no booking for code=%s", req.ConfirmationCode)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("FindByConfirmation: repository error: %v", err)
		return nil, fmt.Errorf("%w: FindByConfirmation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("FindByConfirmation: found booking id=%d", booking.ID)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование по коду подтверждения и телефону.
// Повторная отмена уже отменённого бронирования - успешный no-op.
// Завершённое бронирование отменить нельзя
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: code=%s", req.ConfirmationCode)

	if err := validateCodeAndPhone(req.ConfirmationCode, req.CustomerPhone); err != nil {
		s.logger.Warn("Cancel: validation failed: %v", err)
		return err
	}

	booking, err := s.bookingRepo.GetByConfirmationAndPhone(ctx, normalizeCode(req.ConfirmationCode), req.CustomerPhone)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: no booking for code=%s", req.ConfirmationCode)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error: %v", err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Идемпотентность: повторная отмена не ошибка
	if booking.IsCancelled() {
		s.logger.Info("Cancel: booking id=%d already cancelled", booking.ID)
		return nil
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d in status %s cannot be cancelled", booking.ID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, booking.ID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d disappeared during cancellation", booking.ID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", booking.ID)
	return nil
}

// GetCustomerBookings возвращает историю бронирований клиента по телефону.
// По умолчанию только бронирования начиная с сегодняшнего дня
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: phone=%s, includePast=%t", req.CustomerPhone, req.IncludePast)

	if strings.TrimSpace(req.CustomerPhone) == "" {
		s.logger.Warn("GetCustomerBookings: empty phone")
		return nil, fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	var fromDate *time.Time
	if !req.IncludePast {
		now := s.timeProvider.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		fromDate = &today
	}

	bookings, err := s.bookingRepo.GetByCustomerPhone(ctx, req.CustomerPhone, fromDate)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for phone=%s: %v", req.CustomerPhone, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings for phone=%s", len(bookings), req.CustomerPhone)
	return models.FromDomainBookingList(bookings), nil
}

// GetRestaurantBookings возвращает бронирования ресторана для персонала.
// По умолчанию только активные (pending и confirmed)
func (s *Service) GetRestaurantBookings(ctx context.Context, req *models.GetRestaurantBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetRestaurantBookings: restaurant_id=%d, date=%v", req.RestaurantID, req.Date)

	if req.RestaurantID <= 0 {
		s.logger.Warn("GetRestaurantBookings: invalid restaurant id=%d", req.RestaurantID)
		return nil, fmt.Errorf("%w: restaurantId must be positive", ErrInvalidInput)
	}

	filter := domain.BookingsFilter{
		RestaurantID:    req.RestaurantID,
		Date:            req.Date,
		IncludeInactive: req.IncludeInactive,
	}

	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		switch status {
		case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted:
			filter.Status = &status
		default:
			s.logger.Warn("GetRestaurantBookings: unknown status %q", *req.Status)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
	}

	bookings, err := s.bookingRepo.GetByRestaurantWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRestaurantBookings: repository error for restaurant_id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: GetRestaurantBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRestaurantBookings: fetched %d bookings for restaurant_id=%d", len(bookings), req.RestaurantID)
	return models.FromDomainBookingList(bookings), nil
}

// Вспомогательные функции

func validateCodeAndPhone(code, phone string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: confirmationCode is required", ErrInvalidInput)
	}
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}
	return nil
}

// normalizeCode приводит код к виду, в котором он хранится:
// клиент диктует код голосом, регистр и пробелы не значимы
func normalizeCode(code string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(code), " ", ""))
}
