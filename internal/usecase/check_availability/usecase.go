package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/restaurant"
)

// UseCase use case для проверки доступности столика
type UseCase struct {
	bookingRepo    BookingRepository
	restaurantRepo RestaurantRepository
	timeProvider   TimeProvider
	logger         Logger
	cfg            Config
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	restaurantRepo RestaurantRepository,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		restaurantRepo: restaurantRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
		cfg:            cfg.withDefaults(),
	}
}

// Execute выполняет проверку доступности запрошенного окна.
// Если окно занято, подбираются ближайшие свободные альтернативы на ту же дату.
// Закрытый день - ошибка ErrRestaurantClosed без каких-либо альтернатив
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: restaurant=%d, date=%s, time=%s, party=%d",
		req.RestaurantID, req.Date.Format(domain.DateFormat), req.Time, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем ресторан
	restaurant, err := uc.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, restaurantRepo.ErrRestaurantNotFound) {
			uc.logger.Warn("CheckAvailability: restaurant id=%d not found", req.RestaurantID)
			return nil, ErrRestaurantNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get restaurant id=%d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: failed to get restaurant: %v", ErrInternal, err)
	}

	requested := domain.TimeSlot{
		Date:            req.Date,
		StartTime:       req.Time,
		DurationMinutes: uc.cfg.ServiceDurationMinutes,
	}

	// 3. Проверяем, что окно ещё не началось
	if err := validateNotInPast(requested, now); err != nil {
		uc.logger.Warn("CheckAvailability: requested time in the past: %s %s", req.Date.Format(domain.DateFormat), req.Time)
		return nil, err
	}

	// 4. Проверяем рабочие часы: закрытый день или окно вне часов работы
	schedule := restaurant.ScheduleFor(req.Date)
	if !schedule.SlotWithinHours(requested.StartTime, requested.DurationMinutes) {
		uc.logger.Info("CheckAvailability: restaurant id=%d closed for %s %s",
			req.RestaurantID, req.Date.Format(domain.DateFormat), req.Time)
		return nil, ErrRestaurantClosed
	}

	// 5. Получаем активные бронирования на эту дату
	bookings, err := uc.bookingRepo.GetByRestaurantWithFilter(ctx, domain.BookingsFilter{
		RestaurantID: req.RestaurantID,
		Date:         &req.Date,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Считаем занятые места в запрошенном окне
	occupied := occupiedSeats(requested, bookings)
	remaining := restaurant.MaxCapacity - occupied
	if remaining < 0 {
		remaining = 0
	}

	if remaining >= req.PartySize {
		uc.logger.Info("CheckAvailability: restaurant=%d %s %s available, remaining=%d",
			req.RestaurantID, req.Date.Format(domain.DateFormat), req.Time, remaining)
		return &Response{
			Available:         true,
			Slot:              requested,
			Alternatives:      []domain.TimeSlot{},
			RemainingCapacity: remaining,
		}, nil
	}

	// 7. Окно занято - подбираем альтернативы
	alternatives := findAlternatives(requested, req.PartySize, restaurant, schedule, bookings, now, uc.cfg)

	uc.logger.Info("CheckAvailability: restaurant=%d %s %s unavailable (remaining=%d, party=%d), %d alternatives",
		req.RestaurantID, req.Date.Format(domain.DateFormat), req.Time, remaining, req.PartySize, len(alternatives))

	return &Response{
		Available:         false,
		Slot:              requested,
		Alternatives:      alternatives,
		RemainingCapacity: remaining,
	}, nil
}
