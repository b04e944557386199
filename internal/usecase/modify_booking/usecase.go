package modify_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/booking"
	restaurantRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/restaurant"
)

// UseCase use case для изменения бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	restaurantRepo RestaurantRepository
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	restaurantRepo RestaurantRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		restaurantRepo: restaurantRepo,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет изменение бронирования.
// Проверка вместимости нового окна и запись выполняются в одной сериализуемой
// транзакции, как и при создании. При конфликте исходное бронирование не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ModifyBooking: code=%s, phone=%s", req.ConfirmationCode, req.CustomerPhone)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ModifyBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Находим бронирование по коду и телефону (проверка владения)
	booking, err := uc.bookingRepo.GetByConfirmationAndPhone(ctx, req.ConfirmationCode, req.CustomerPhone)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ModifyBooking: booking not found for code=%s", req.ConfirmationCode)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ModifyBooking: failed to find booking: %v", err)
		return nil, fmt.Errorf("%w: failed to find booking: %v", ErrInternal, err)
	}

	// 3. Изменять можно только активные бронирования
	if !booking.CanBeModified() {
		uc.logger.Warn("ModifyBooking: booking id=%d in status %s cannot be modified", booking.ID, booking.Status)
		return nil, ErrCannotModify
	}

	// 4. Собираем новые параметры поверх текущих
	newSlot := booking.Slot
	if req.NewDate != nil {
		newSlot.Date = *req.NewDate
	}
	if req.NewStartTime != nil {
		newSlot.StartTime = *req.NewStartTime
	}

	newPartySize := booking.PartySize
	if req.NewPartySize != nil {
		newPartySize = *req.NewPartySize
	}

	// 5. Проверяем, что новое окно ещё не началось
	if err := validateNotInPast(newSlot, now); err != nil {
		uc.logger.Warn("ModifyBooking: new time in the past: %s %s", newSlot.Date.Format(domain.DateFormat), newSlot.StartTime)
		return nil, err
	}

	// 6. Проверяем рабочие часы ресторана для нового окна
	restaurant, err := uc.restaurantRepo.GetByID(ctx, booking.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Error("ModifyBooking: restaurant id=%d not found for booking id=%d", booking.RestaurantID, booking.ID)
			return nil, fmt.Errorf("%w: restaurant not found", ErrInternal)
		}
		uc.logger.Error("ModifyBooking: failed to get restaurant id=%d: %v", booking.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	schedule := restaurant.ScheduleFor(newSlot.Date)
	if !schedule.SlotWithinHours(newSlot.StartTime, newSlot.DurationMinutes) {
		uc.logger.Warn("ModifyBooking: restaurant id=%d closed for %s %s",
			booking.RestaurantID, newSlot.Date.Format(domain.DateFormat), newSlot.StartTime)
		return nil, ErrRestaurantClosed
	}

	// 7. Проверка вместимости и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingRepo.GetByRestaurantWithFilter(txCtx, domain.BookingsFilter{
			RestaurantID: booking.RestaurantID,
			Date:         &newSlot.Date,
		})
		if err != nil {
			uc.logger.Error("ModifyBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// Само изменяемое бронирование в подсчёт не входит
		occupied := occupiedSeats(newSlot, bookings, booking.ID)
		if restaurant.MaxCapacity-occupied < newPartySize {
			uc.logger.Warn("ModifyBooking: new slot not available, %d/%d seats taken, party=%d",
				occupied, restaurant.MaxCapacity, newPartySize)
			return ErrSlotNotAvailable
		}

		if err := uc.bookingRepo.UpdateSlot(txCtx, booking.ID, newSlot, newPartySize); err != nil {
			uc.logger.Error("ModifyBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// 8. Перечитываем бронирование с обновлёнными полями
	updated, err := uc.bookingRepo.GetByID(ctx, booking.ID)
	if err != nil {
		uc.logger.Error("ModifyBooking: failed to reload booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
	}

	uc.logger.Info("ModifyBooking: successfully modified booking id=%d", updated.ID)

	return toResponse(updated), nil
}
