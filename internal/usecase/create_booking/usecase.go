package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RVA-ReservationService/internal/codegen"
	"github.com/m04kA/RVA-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/RVA-ReservationService/internal/integrations/notifier"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	restaurantRepo RestaurantRepository
	customerRepo   CustomerRepository
	codeGen        CodeGenerator
	txManager      TransactionManager
	notifier       Notifier
	timeProvider   TimeProvider
	logger         Logger
	cfg            Config
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	restaurantRepo RestaurantRepository,
	customerRepo CustomerRepository,
	codeGen CodeGenerator,
	txManager TransactionManager,
	notifier Notifier,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		restaurantRepo: restaurantRepo,
		customerRepo:   customerRepo,
		codeGen:        codeGen,
		txManager:      txManager,
		notifier:       notifier,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
		cfg:            cfg.withDefaults(),
	}
}

// Execute выполняет use case создания бронирования.
// Проверка вместимости и вставка выполняются в одной сериализуемой транзакции:
// два параллельных запроса на одно окно никогда не превысят вместимость вместе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: restaurant=%d, phone=%s, party=%d, date=%s, time=%s",
		req.RestaurantID, req.CustomerPhone, req.PartySize, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем ресторан
	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("CreateBooking: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("CreateBooking: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	slot := domain.TimeSlot{
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: uc.cfg.ServiceDurationMinutes,
	}

	// 3. Проверяем, что окно ещё не началось
	if err := validateNotInPast(slot, now); err != nil {
		uc.logger.Warn("CreateBooking: requested time in the past: %s %s", req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, err
	}

	// 4. Проверяем рабочие часы
	schedule := restaurant.ScheduleFor(req.Date)
	if !schedule.SlotWithinHours(slot.StartTime, slot.DurationMinutes) {
		uc.logger.Warn("CreateBooking: restaurant id=%d closed for %s %s",
			req.RestaurantID, req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, ErrRestaurantClosed
	}

	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем активные бронирования даты с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByRestaurantWithFilter(txCtx, domain.BookingsFilter{
			RestaurantID: req.RestaurantID,
			Date:         &req.Date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Повторная проверка вместимости на момент вставки
		occupied := occupiedSeats(slot, bookings)
		if restaurant.MaxCapacity-occupied < req.PartySize {
			uc.logger.Warn("CreateBooking: slot not available, %d/%d seats taken, party=%d",
				occupied, restaurant.MaxCapacity, req.PartySize)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("CreateBooking: slot fits, %d/%d seats taken, party=%d",
			occupied, restaurant.MaxCapacity, req.PartySize)

		// 5.3. Находим или создаём клиента по телефону
		customer, err := uc.customerRepo.GetOrCreateByPhone(txCtx, req.CustomerPhone, req.CustomerName)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get or create customer phone=%s: %v", req.CustomerPhone, err)
			return fmt.Errorf("%w: failed to get or create customer: %v", ErrInternal, err)
		}

		// 5.4. Назначаем код подтверждения до того, как бронирование станет видимым
		code, err := uc.codeGen.Generate(txCtx, req.RestaurantID)
		if err != nil {
			if errors.Is(err, codegen.ErrExhausted) {
				uc.logger.Error("CreateBooking: confirmation codes exhausted for restaurant id=%d", req.RestaurantID)
				return ErrCodesExhausted
			}
			uc.logger.Error("CreateBooking: failed to generate confirmation code: %v", err)
			return fmt.Errorf("%w: failed to generate confirmation code: %v", ErrInternal, err)
		}

		booking := &domain.Booking{
			RestaurantID:     req.RestaurantID,
			CustomerID:       customer.ID,
			CustomerName:     req.CustomerName,
			CustomerPhone:    req.CustomerPhone,
			PartySize:        req.PartySize,
			Slot:             slot,
			Status:           domain.StatusConfirmed,
			ConfirmationCode: code,
			SpecialRequests:  req.SpecialRequests,
		}

		// 5.5. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, code=%s", result.ID, result.ConfirmationCode)

	// 6. Отправляем SMS с кодом после коммита, неудача не отменяет бронирование
	if uc.notifier != nil {
		confirmation := &notifier.BookingConfirmation{
			CustomerPhone:    result.CustomerPhone,
			CustomerName:     result.CustomerName,
			RestaurantName:   restaurant.Name,
			ConfirmationCode: result.ConfirmationCode,
			Date:             result.Slot.Date.Format(domain.DateFormat),
			StartTime:        result.Slot.StartTime.String(),
			PartySize:        result.PartySize,
		}
		if err := uc.notifier.SendBookingConfirmation(ctx, confirmation); err != nil {
			uc.logger.Warn("CreateBooking: failed to send confirmation for booking id=%d: %v", result.ID, err)
		}
	}

	return toResponse(result), nil
}
