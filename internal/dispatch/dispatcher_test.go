package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/RVA-ReservationService/internal/service/bookings"
	bookingModels "github.com/m04kA/RVA-ReservationService/internal/service/bookings/models"
	checkAvailability "github.com/m04kA/RVA-ReservationService/internal/usecase/check_availability"
	createBooking "github.com/m04kA/RVA-ReservationService/internal/usecase/create_booking"
	modifyBooking "github.com/m04kA/RVA-ReservationService/internal/usecase/modify_booking"
)

// Фейки зависимостей диспетчера

type fakeCreateBookingUC struct {
	lastReq *createBooking.Request
	resp    *createBooking.Response
	err     error
}

func (f *fakeCreateBookingUC) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeCheckAvailabilityUC struct {
	resp *checkAvailability.Response
	err  error
}

func (f *fakeCheckAvailabilityUC) Execute(_ context.Context, _ *checkAvailability.Request) (*checkAvailability.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeModifyBookingUC struct {
	resp *modifyBooking.Response
	err  error
}

func (f *fakeModifyBookingUC) Execute(_ context.Context, _ *modifyBooking.Request) (*modifyBooking.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeBookingsService struct {
	findResp  *bookingModels.BookingResponse
	findErr   error
	cancelErr error

	cancelled []string
}

func (f *fakeBookingsService) FindByConfirmation(_ context.Context, _ *bookingModels.FindBookingRequest) (*bookingModels.BookingResponse, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findResp, nil
}

func (f *fakeBookingsService) Cancel(_ context.Context, req *bookingModels.CancelBookingRequest) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, req.ConfirmationCode)
	return nil
}

type fakeCallsService struct {
	attachErr error

	attachedSession uuid.UUID
	attachedBooking int64
	attachCalls     int
}

func (f *fakeCallsService) AttachBooking(_ context.Context, sessionID uuid.UUID, bookingID int64) error {
	f.attachCalls++
	if f.attachErr != nil {
		return f.attachErr
	}
	f.attachedSession = sessionID
	f.attachedBooking = bookingID
	return nil
}

type fakeRestaurantRepo struct {
	restaurant *domain.Restaurant
	err        error
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.Restaurant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.restaurant, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type dispatcherFixture struct {
	createUC   *fakeCreateBookingUC
	checkUC    *fakeCheckAvailabilityUC
	modifyUC   *fakeModifyBookingUC
	bookings   *fakeBookingsService
	calls      *fakeCallsService
	restaurant *fakeRestaurantRepo

	dispatcher *Dispatcher
}

func newDispatcherFixture() *dispatcherFixture {
	f := &dispatcherFixture{
		createUC:   &fakeCreateBookingUC{},
		checkUC:    &fakeCheckAvailabilityUC{},
		modifyUC:   &fakeModifyBookingUC{},
		bookings:   &fakeBookingsService{},
		calls:      &fakeCallsService{},
		restaurant: &fakeRestaurantRepo{},
	}
	f.dispatcher = NewDispatcher(f.createUC, f.checkUC, f.modifyUC, f.bookings, f.calls, f.restaurant, nopLogger{})
	return f
}

func rawArgs(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

// Тесты

func TestDispatch_UnknownIntent(t *testing.T) {
	f := newDispatcherFixture()

	result := f.dispatcher.Dispatch(context.Background(), &ToolCall{
		Intent:    "teleport_guest",
		Arguments: json.RawMessage(`{}`),
	})

	assert.False(t, result.OK)
	assert.Equal(t, KindValidation, result.Kind)
	assert.Equal(t, msgUnknownIntent, result.Message)
}

func TestDispatch_MalformedArguments(t *testing.T) {
	f := newDispatcherFixture()

	result := f.dispatcher.Dispatch(context.Background(), &ToolCall{
		Intent:    IntentCreateBooking,
		Arguments: json.RawMessage(`{"restaurantId": "not a number"`),
	})

	assert.False(t, result.OK)
	assert.Equal(t, KindValidation, result.Kind)
	assert.Equal(t, msgInvalidArguments, result.Message)
}

func TestDispatch_CreateBooking_Success(t *testing.T) {
	f := newDispatcherFixture()
	f.createUC.resp = &createBooking.Response{
		ID:               7,
		RestaurantID:     1,
		ConfirmationCode: "ABC234",
		Status:           string(domain.StatusConfirmed),
	}

	result := f.dispatcher.Dispatch(context.Background(), &ToolCall{
		Intent: IntentCreateBooking,
		Arguments: rawArgs(t, map[string]interface{}{
			"restaurantId":  1,
			"customerName":  "Анна",
			"customerPhone": "+79990001122",
			"partySize":     4,
			"date":          "2026-09-15",
			"time":          "19:00",
		}),
	})

	require.True(t, result.OK)
	assert.Empty(t, result.Kind)
	assert.Same(t, f.createUC.resp, result.Data)

	require.NotNil(t, f.createUC.lastReq)
	assert.Equal(t, "+79990001122", f.createUC.lastReq.CustomerPhone)
	assert.Equal(t, "19:00", f.createUC.lastReq.StartTime.String())
	assert.Equal(t, time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), f.createUC.lastReq.Date)

	// Сессия не передавалась, привязки быть не должно
	assert.Equal(t, 0, f.calls.attachCalls)
}

func TestDispatch_CreateBooking_AttachesToSession(t *testing.T) {
	f := newDispatcherFixture()
	f.createUC.resp = &createBooking.Response{ID: 7, ConfirmationCode: "ABC234"}
	sessionID := uuid.New()

	result := f.dispatcher.Dispatch(context.Background(), &ToolCall{
		Intent:    IntentCreateBooking,
		SessionID: &sessionID,
		Arguments: rawArgs(t, map[string]interface{}{
			"restaurantId":  1,
			"customerName":  "Анна",
			"customerPhone": "+79990001122",
			"partySize":     4,
			"date":          "2026-09-15",
			"time":          "19:00",
		}),
	})

	require.True(t, result.OK)
	assert.Equal(t, 1, f.calls.attachCalls)
	assert.Equal(t, sessionID, f.calls.attachedSession)
	assert.Equal(t, int64(7), f.calls.attachedBooking)
}

func TestDispatch_CreateBooking_AttachFailureKeepsBooking(t *testing.T) {
	f := newDispatcherFixture()
	f.createUC.resp = &createBooking.Response{ID: 7, ConfirmationCode: "ABC234"}
	f.calls.attachErr = errors.New("session closed concurrently")
	sessionID := uuid.New()

	result := f.dispatcher.Dispatch(context.Background(), &ToolCall{
		Intent:    IntentCreateBooking,
		SessionID: &sessionID,
		Arguments: rawArgs(t, map[string]interface{}{
			"restaurantId":  1,
			"customerName":  "Анна",
			"customerPhone": "+79990001122",
			"partySize":     4,
			"date":          "2026-09-15",
			"time":          "19:00",
		}),
	})

	// Учёт звонков наблюдательный: бронирование остаётся успешным
	require.True(t, result.OK)
	assert.Same(t, f.createUC.resp, result.Data)
}

func TestDispatch_CreateBooking_ErrorKinds(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		wantKind    ErrorKind
		wantMessage string
	}{
		{"slot conflict", createBooking.ErrSlotNotAvailable, KindConflict, msgSlotNotAvailable},
		{"restaurant closed", createBooking.ErrRestaurantClosed, KindClosed, msgRestaurantClosed},
		{"restaurant not found", createBooking.ErrRestaurantNotFound, KindNotFound, msgRestaurantNotFound},
		{"codes exhausted", createBooking.ErrCodesExhausted, KindExhausted, msgCodesExhausted},
		{"time in past", createBooking.ErrTimeInPast, KindValidation, msgTimeInPast},
		{"invalid input", createBooking.ErrInvalidInput, KindValidation, msgInvalidArguments},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newDispatcherFixture()
			f.createUC.err = tc.err

			result := f.dispatcher.Dispatch(context.Background(), &ToolCall{
				Intent: IntentCreateBooking,
				Arguments: rawArgs(t, map[string]interface{}{
					"restaurantId":  1,
					"customerName":  "Анна",
					"customerPhone": "+79990001122",
					"partySize":     4,
					"date":          "2026-09-15",
					"time":          "19:00",
				}),
			})

			assert.False(t, result.OK)
			assert.Equal(t, tc.wantKind, result.Kind)
			assert.Equal(t, tc.wantMessage, result.Message)
		})
	}
}

func TestDispatch_CreateBooking_UnexpectedErrorHidesDetails(t *testing.T) {
	f := newDispatcherFixture()
	f.createUC.err = errors.New("pq: connection refused on 10.0.0.5")

	result := f.dispatcher.Dispatch(context.Background(), &ToolCall{
		Intent: IntentCreateBooking,
		Arguments: rawArgs(t, map[string]interface{}{
			"restaurantId":  1,
			"customerName":  "Анна",
			"customerPhone": "+79990001122",
			"partySize":     4,
			"date":          "2026-09-15",
			"time":          "19:00",
		}),
	})

	assert.False(t, result.OK)
	assert.Equal(t, KindUnavailable, result.Kind)
	assert.Equal(t, msgUnavailable, result.Message)
	assert.NotContains(t, result.Message, "10.0.0.5")
}

func TestDispatch_CheckAvailability_ShapesResponse(t *testing.T) {
	f := newDispatcherFixture()
	date := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	f.checkUC.resp = &checkAvailability.Response{
		Available: false,
		Slot:      domain.TimeSlot{Date: date, StartTime: "19:00", DurationMinutes: 120},
		Alternatives: []domain.TimeSlot{
			{Date: date, StartTime: "18:45", DurationMinutes: 120},
			{Date: date, StartTime: "19:15", DurationMinutes: 120},
		},
		RemainingCapacity: 2,
	}

	result := f.dispatcher.Dispatch(context.Background(), &ToolCall{
		Intent: IntentCheckAvailability,
		Arguments: rawArgs(t, map[string]interface{}{
			"restaurantId": 1,
			"date":         "2026-09-15",
			"time":         "19:00",
			"partySize":    4,
		}),
	})

	require.True(t, result.OK)
	data, ok := result.Data.(availabilityData)
	require.True(t, ok)
	assert.False(t, data.Available)
	assert.Equal(t, slotData{Date: "2026-09-15", Time: "19:00", DurationMinutes: 120}, data.Slot)
	assert.Equal(t, []slotData{
		{Date: "2026-09-15", Time: "18:45", DurationMinutes: 120},
		{Date: "2026-09-15", Time: "19:15", DurationMinutes: 120},
	}, data.Alternatives)
	assert.Equal(t, 2, data.RemainingCapacity)
}

func TestDispatch_CheckAvailability_InvalidDate(t *testing.T) {
	f := newDispatcherFixture()

	result := f.dispatcher.Dispatch(context.Background(), &ToolCall{
		Intent: IntentCheckAvailability,
		Arguments: rawArgs(t, map[string]interface{}{
			"restaurantId": 1,
			"date":         "15.09.2026",
			"time":         "19:00",
			"partySize":    4,
		}),
	})

	assert.False(t, result.OK)
	assert.Equal(t, KindValidation, result.Kind)
	assert.Equal(t, msgInvalidDate, result.Message)
}

func TestDispatch_FindBooking_NotFound(t *testing.T) {
	f := newDispatcherFixture()
	f.bookings.findErr = bookings.ErrBookingNotFound

	result := f.dispatcher.Dispatch(context.Background(), &ToolCall{
		Intent: IntentFindBooking,
		Arguments: rawArgs(t, map[string]interface{}{
			"confirmationCode": "ABC234",
			"customerPhone":    "+79990001122",
		}),
	})

	assert.False(t, result.OK)
	assert.Equal(t, KindNotFound, result.Kind)
	assert.Equal(t, msgBookingNotFound, result.Message)
}

func TestDispatch_CancelBooking_Success(t *testing.T) {
	f := newDispatcherFixture()

	result := f.dispatcher.Dispatch(context.Background(), &ToolCall{
		Intent: IntentCancelBooking,
		Arguments: rawArgs(t, map[string]interface{}{
			"confirmationCode": "ABC234",
			"customerPhone":    "+79990001122",
		}),
	})

	require.True(t, result.OK)
	assert.Equal(t, cancelData{Cancelled: true}, result.Data)
	assert.Equal(t, []string{"ABC234"}, f.bookings.cancelled)
}

func TestDispatch_CancelBooking_AlreadyCompleted(t *testing.T) {
	f := newDispatcherFixture()
	f.bookings.cancelErr = bookings.ErrCannotCancel

	result := f.dispatcher.Dispatch(context.Background(), &ToolCall{
		Intent: IntentCancelBooking,
		Arguments: rawArgs(t, map[string]interface{}{
			"confirmationCode": "ABC234",
			"customerPhone":    "+79990001122",
		}),
	})

	assert.False(t, result.OK)
	assert.Equal(t, KindConflict, result.Kind)
	assert.Equal(t, msgCannotCancel, result.Message)
}

func TestDispatch_ModifyBooking_InvalidNewTime(t *testing.T) {
	f := newDispatcherFixture()

	result := f.dispatcher.Dispatch(context.Background(), &ToolCall{
		Intent: IntentModifyBooking,
		Arguments: rawArgs(t, map[string]interface{}{
			"confirmationCode": "ABC234",
			"customerPhone":    "+79990001122",
			"newTime":          "семь вечера",
		}),
	})

	assert.False(t, result.OK)
	assert.Equal(t, KindValidation, result.Kind)
	assert.Equal(t, msgInvalidTime, result.Message)
}

func TestDispatch_ModifyBooking_Conflict(t *testing.T) {
	f := newDispatcherFixture()
	f.modifyUC.err = modifyBooking.ErrSlotNotAvailable

	result := f.dispatcher.Dispatch(context.Background(), &ToolCall{
		Intent: IntentModifyBooking,
		Arguments: rawArgs(t, map[string]interface{}{
			"confirmationCode": "ABC234",
			"customerPhone":    "+79990001122",
			"newTime":          "20:00",
		}),
	})

	assert.False(t, result.OK)
	assert.Equal(t, KindConflict, result.Kind)
	assert.Equal(t, msgSlotNotAvailable, result.Message)
}

func TestDispatch_GetRestaurantInfo_Success(t *testing.T) {
	f := newDispatcherFixture()
	open := "10:00"
	closeTime := "23:00"
	f.restaurant.restaurant = &domain.Restaurant{
		ID:          1,
		Name:        "Вечер",
		Address:     "Невский 1",
		Phone:       "+78120000000",
		MaxCapacity: 50,
		WorkingDays: domain.WeekSchedule{
			Monday: domain.DaySchedule{IsOpen: true, OpenTime: &open, CloseTime: &closeTime},
		},
	}

	result := f.dispatcher.Dispatch(context.Background(), &ToolCall{
		Intent:    IntentGetRestaurantInfo,
		Arguments: rawArgs(t, map[string]interface{}{"restaurantId": 1}),
	})

	require.True(t, result.OK)
	data, ok := result.Data.(restaurantInfoData)
	require.True(t, ok)
	assert.Equal(t, "Вечер", data.Name)
	assert.Equal(t, 50, data.MaxCapacity)
	assert.True(t, data.Hours["monday"].IsOpen)
	assert.False(t, data.Hours["tuesday"].IsOpen)
}

func TestDispatch_GetRestaurantInfo_NotFound(t *testing.T) {
	f := newDispatcherFixture()
	f.restaurant.err = restaurantRepo.ErrRestaurantNotFound

	result := f.dispatcher.Dispatch(context.Background(), &ToolCall{
		Intent:    IntentGetRestaurantInfo,
		Arguments: rawArgs(t, map[string]interface{}{"restaurantId": 999}),
	})

	assert.False(t, result.OK)
	assert.Equal(t, KindNotFound, result.Kind)
	assert.Equal(t, msgRestaurantNotFound, result.Message)
}
