package dispatch

import (
	"context"
	"encoding/json"
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	bookingModels "github.com/m04kA/RVA-ReservationService/internal/service/bookings/models"
	checkAvailability "github.com/m04kA/RVA-ReservationService/internal/usecase/check_availability"
	createBooking "github.com/m04kA/RVA-ReservationService/internal/usecase/create_booking"
	modifyBooking "github.com/m04kA/RVA-ReservationService/internal/usecase/modify_booking"
	"github.com/m04kA/RVA-ReservationService/pkg/types"
)

type intentHandler func(ctx context.Context, call *ToolCall) Result

// Dispatcher транслирует интенты голосового слоя в операции ядра.
// Единственная точка перевода типизированных ошибок в безопасные для
// озвучивания сообщения: внутренние детали наружу не уходят.
// Интенты не ретраятся - решение о повторе принимает голосовой слой
type Dispatcher struct {
	createBooking     CreateBookingUseCase
	checkAvailability CheckAvailabilityUseCase
	modifyBooking     ModifyBookingUseCase
	bookingsService   BookingsService
	callsService      CallsService
	restaurantRepo    RestaurantRepository
	logger            Logger

	handlers map[string]intentHandler
}

// NewDispatcher создает диспетчер и регистрирует все интенты
func NewDispatcher(
	createBookingUC CreateBookingUseCase,
	checkAvailabilityUC CheckAvailabilityUseCase,
	modifyBookingUC ModifyBookingUseCase,
	bookingsService BookingsService,
	callsService CallsService,
	restaurantRepo RestaurantRepository,
	logger Logger,
) *Dispatcher {
	d := &Dispatcher{
		createBooking:     createBookingUC,
		checkAvailability: checkAvailabilityUC,
		modifyBooking:     modifyBookingUC,
		bookingsService:   bookingsService,
		callsService:      callsService,
		restaurantRepo:    restaurantRepo,
		logger:            logger,
	}

	d.handlers = map[string]intentHandler{
		IntentCreateBooking:     d.handleCreateBooking,
		IntentCheckAvailability: d.handleCheckAvailability,
		IntentFindBooking:       d.handleFindBooking,
		IntentCancelBooking:     d.handleCancelBooking,
		IntentModifyBooking:     d.handleModifyBooking,
		IntentGetRestaurantInfo: d.handleGetRestaurantInfo,
	}

	return d
}

// Dispatch выполняет интент и возвращает структурированный результат
func (d *Dispatcher) Dispatch(ctx context.Context, call *ToolCall) Result {
	handler, ok := d.handlers[call.Intent]
	if !ok {
		d.logger.Warn("Dispatch: unknown intent %q", call.Intent)
		return validationResult(msgUnknownIntent)
	}

	d.logger.Info("Dispatch: intent=%s", call.Intent)
	return handler(ctx, call)
}

func (d *Dispatcher) handleCreateBooking(ctx context.Context, call *ToolCall) Result {
	var args createBookingArgs
	if err := json.Unmarshal(call.Arguments, &args); err != nil {
		return validationResult(msgInvalidArguments)
	}

	date, startTime, errResult := parseDateAndTime(args.Date, args.Time)
	if errResult != nil {
		return *errResult
	}

	resp, err := d.createBooking.Execute(ctx, &createBooking.Request{
		RestaurantID:    args.RestaurantID,
		CustomerName:    args.CustomerName,
		CustomerPhone:   args.CustomerPhone,
		PartySize:       args.PartySize,
		Date:            date,
		StartTime:       startTime,
		SpecialRequests: args.SpecialRequests,
	})
	if err != nil {
		return d.translateCreateBookingError(err)
	}

	// Привязываем бронирование к сессии звонка, если она есть.
	// Неудача не ломает успешное бронирование - учёт звонков наблюдательный
	if call.SessionID != nil {
		if err := d.callsService.AttachBooking(ctx, *call.SessionID, resp.ID); err != nil {
			d.logger.Warn("Dispatch: failed to attach booking %d to session %s: %v", resp.ID, *call.SessionID, err)
		}
	}

	return Result{OK: true, Data: resp}
}

func (d *Dispatcher) handleCheckAvailability(ctx context.Context, call *ToolCall) Result {
	var args checkAvailabilityArgs
	if err := json.Unmarshal(call.Arguments, &args); err != nil {
		return validationResult(msgInvalidArguments)
	}

	date, startTime, errResult := parseDateAndTime(args.Date, args.Time)
	if errResult != nil {
		return *errResult
	}

	resp, err := d.checkAvailability.Execute(ctx, &checkAvailability.Request{
		RestaurantID: args.RestaurantID,
		Date:         date,
		Time:         startTime,
		PartySize:    args.PartySize,
	})
	if err != nil {
		return d.translateCheckAvailabilityError(err)
	}

	return Result{OK: true, Data: toAvailabilityData(resp)}
}

func (d *Dispatcher) handleFindBooking(ctx context.Context, call *ToolCall) Result {
	var args findBookingArgs
	if err := json.Unmarshal(call.Arguments, &args); err != nil {
		return validationResult(msgInvalidArguments)
	}

	resp, err := d.bookingsService.FindByConfirmation(ctx, &bookingModels.FindBookingRequest{
		ConfirmationCode: args.ConfirmationCode,
		CustomerPhone:    args.CustomerPhone,
	})
	if err != nil {
		return d.translateBookingsServiceError(err)
	}

	return Result{OK: true, Data: resp}
}

func (d *Dispatcher) handleCancelBooking(ctx context.Context, call *ToolCall) Result {
	var args cancelBookingArgs
	if err := json.Unmarshal(call.Arguments, &args); err != nil {
		return validationResult(msgInvalidArguments)
	}

	err := d.bookingsService.Cancel(ctx, &bookingModels.CancelBookingRequest{
		ConfirmationCode: args.ConfirmationCode,
		CustomerPhone:    args.CustomerPhone,
	})
	if err != nil {
		return d.translateBookingsServiceError(err)
	}

	return Result{OK: true, Data: cancelData{Cancelled: true}}
}

func (d *Dispatcher) handleModifyBooking(ctx context.Context, call *ToolCall) Result {
	var args modifyBookingArgs
	if err := json.Unmarshal(call.Arguments, &args); err != nil {
		return validationResult(msgInvalidArguments)
	}

	req := &modifyBooking.Request{
		ConfirmationCode: args.ConfirmationCode,
		CustomerPhone:    args.CustomerPhone,
		NewPartySize:     args.NewPartySize,
	}

	if args.NewDate != nil {
		date, err := time.Parse(domain.DateFormat, *args.NewDate)
		if err != nil {
			return validationResult(msgInvalidDate)
		}
		req.NewDate = &date
	}

	if args.NewTime != nil {
		startTime, err := types.NewTimeStringFromString(*args.NewTime)
		if err != nil {
			return validationResult(msgInvalidTime)
		}
		req.NewStartTime = &startTime
	}

	resp, err := d.modifyBooking.Execute(ctx, req)
	if err != nil {
		return d.translateModifyBookingError(err)
	}

	return Result{OK: true, Data: resp}
}

func (d *Dispatcher) handleGetRestaurantInfo(ctx context.Context, call *ToolCall) Result {
	var args getRestaurantInfoArgs
	if err := json.Unmarshal(call.Arguments, &args); err != nil {
		return validationResult(msgInvalidArguments)
	}

	if args.RestaurantID <= 0 {
		return validationResult(msgInvalidArguments)
	}

	restaurant, err := d.restaurantRepo.GetByID(ctx, args.RestaurantID)
	if err != nil {
		return d.translateRestaurantError(err)
	}

	return Result{OK: true, Data: toRestaurantInfoData(restaurant)}
}

// Вспомогательные функции

func parseDateAndTime(dateStr, timeStr string) (time.Time, types.TimeString, *Result) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		r := validationResult(msgInvalidDate)
		return time.Time{}, "", &r
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		r := validationResult(msgInvalidTime)
		return time.Time{}, "", &r
	}

	return date, startTime, nil
}

func toAvailabilityData(resp *checkAvailability.Response) availabilityData {
	data := availabilityData{
		Available:         resp.Available,
		Slot:              toSlotData(resp.Slot),
		Alternatives:      make([]slotData, 0, len(resp.Alternatives)),
		RemainingCapacity: resp.RemainingCapacity,
	}

	for _, alt := range resp.Alternatives {
		data.Alternatives = append(data.Alternatives, toSlotData(alt))
	}

	return data
}

func toSlotData(slot domain.TimeSlot) slotData {
	return slotData{
		Date:            slot.Date.Format(domain.DateFormat),
		Time:            slot.StartTime.String(),
		DurationMinutes: slot.DurationMinutes,
	}
}

func toRestaurantInfoData(r *domain.Restaurant) restaurantInfoData {
	return restaurantInfoData{
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		Phone:       r.Phone,
		MaxCapacity: r.MaxCapacity,
		Hours: map[string]dayHoursData{
			"monday":    toDayHours(r.WorkingDays.Monday),
			"tuesday":   toDayHours(r.WorkingDays.Tuesday),
			"wednesday": toDayHours(r.WorkingDays.Wednesday),
			"thursday":  toDayHours(r.WorkingDays.Thursday),
			"friday":    toDayHours(r.WorkingDays.Friday),
			"saturday":  toDayHours(r.WorkingDays.Saturday),
			"sunday":    toDayHours(r.WorkingDays.Sunday),
		},
	}
}

func toDayHours(d domain.DaySchedule) dayHoursData {
	return dayHoursData{
		IsOpen:    d.IsOpen,
		OpenTime:  d.OpenTime,
		CloseTime: d.CloseTime,
	}
}

func validationResult(message string) Result {
	return Result{OK: false, Kind: KindValidation, Message: message}
}

func errorResult(kind ErrorKind, message string) Result {
	return Result{OK: false, Kind: kind, Message: message}
}

func (d *Dispatcher) unavailableResult(op string, err error) Result {
	d.logger.Error("Dispatch: %s failed: %v", op, err)
	return Result{OK: false, Kind: KindUnavailable, Message: msgUnavailable}
}
