package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/RVA-ReservationService/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByRestaurantWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
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

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Вспомогательные конструкторы

func testRestaurant(capacity int) *domain.Restaurant {
	openTime := "10:00"
	closeTime := "23:00"
	allWeek := domain.DaySchedule{IsOpen: true, OpenTime: &openTime, CloseTime: &closeTime}

	return &domain.Restaurant{
		ID:          1,
		Name:        "La Riviera",
		MaxCapacity: capacity,
		WorkingDays: domain.WeekSchedule{
			Monday:    allWeek,
			Tuesday:   allWeek,
			Wednesday: allWeek,
			Thursday:  allWeek,
			Friday:    allWeek,
			Saturday:  allWeek,
			Sunday:    allWeek,
		},
	}
}

func activeBooking(date time.Time, start string, durationMinutes, partySize int) *domain.Booking {
	return &domain.Booking{
		PartySize: partySize,
		Status:    domain.StatusConfirmed,
		Slot: domain.TimeSlot{
			Date:            date,
			StartTime:       types.TimeString(start),
			DurationMinutes: durationMinutes,
		},
	}
}

func newTestUseCase(restaurant *domain.Restaurant, bookings []*domain.Booking, now time.Time, cfg Config) *UseCase {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeRestaurantRepo{restaurant: restaurant},
		cfg,
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

// Тесты

var testDate = time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)

func TestExecute_AvailableWindow(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(testRestaurant(50), nil, now, Config{})

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		Date:         testDate,
		Time:         "19:00",
		PartySize:    4,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, 50, resp.RemainingCapacity)
	assert.Empty(t, resp.Alternatives)
}

func TestExecute_CapacityCountsOverlappingActiveBookings(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	bookings := []*domain.Booking{
		activeBooking(testDate, "19:00", 120, 30),
		activeBooking(testDate, "20:00", 120, 15),
		// Отменённое бронирование мест не занимает
		{
			PartySize: 40,
			Status:    domain.StatusCancelled,
			Slot:      domain.TimeSlot{Date: testDate, StartTime: "19:00", DurationMinutes: 120},
		},
		// Граничащее окно не пересекается
		activeBooking(testDate, "17:00", 120, 40),
	}

	uc := newTestUseCase(testRestaurant(50), bookings, now, Config{})

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		Date:         testDate,
		Time:         "19:00",
		PartySize:    5,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, 5, resp.RemainingCapacity)
}

func TestExecute_UnavailableWithNearestAlternatives(t *testing.T) {
	// Вместимость 50, на 19:00 занято 45 мест, группа из 10 не помещается.
	// Длительность равна шагу поиска, поэтому соседние окна не пересекаются
	// с занятым: ближние предлагаются раньше дальних, при равной удалённости
	// более раннее время первым
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	bookings := []*domain.Booking{
		activeBooking(testDate, "19:00", 15, 45),
	}

	cfg := Config{ServiceDurationMinutes: 15, SearchStepMinutes: 15, MaxAlternatives: 5}
	uc := newTestUseCase(testRestaurant(50), bookings, now, cfg)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		Date:         testDate,
		Time:         "19:00",
		PartySize:    10,
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, 5, resp.RemainingCapacity)

	starts := make([]string, 0, len(resp.Alternatives))
	for _, alt := range resp.Alternatives {
		starts = append(starts, alt.StartTime.String())
	}
	assert.Equal(t, []string{"18:45", "19:15", "18:30", "19:30", "18:15"}, starts)
}

func TestExecute_AlternativesRespectOpeningHoursAndPast(t *testing.T) {
	// Сейчас 18:50 того же дня: кандидаты 18:45 и ранее уже начались
	now := time.Date(2026, time.September, 15, 18, 50, 0, 0, time.UTC)
	bookings := []*domain.Booking{
		activeBooking(testDate, "19:00", 15, 50),
	}

	cfg := Config{ServiceDurationMinutes: 15, SearchStepMinutes: 15, MaxAlternatives: 3}
	uc := newTestUseCase(testRestaurant(50), bookings, now, cfg)

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		Date:         testDate,
		Time:         "19:00",
		PartySize:    10,
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)

	starts := make([]string, 0, len(resp.Alternatives))
	for _, alt := range resp.Alternatives {
		starts = append(starts, alt.StartTime.String())
	}
	assert.Equal(t, []string{"19:15", "19:30", "19:45"}, starts)
}

func TestExecute_ClosedDayShortCircuits(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	restaurant := testRestaurant(50)
	restaurant.WorkingDays.Tuesday = domain.DaySchedule{IsOpen: false} // 2026-09-15 - вторник

	uc := newTestUseCase(restaurant, nil, now, Config{})

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		Date:         testDate,
		Time:         "19:00",
		PartySize:    2,
	})

	assert.ErrorIs(t, err, ErrRestaurantClosed)
	assert.Nil(t, resp)
}

func TestExecute_WindowOutsideHoursIsClosed(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(testRestaurant(50), nil, now, Config{ServiceDurationMinutes: 120})

	// Окно 22:30-00:30 выходит за закрытие в 23:00
	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		Date:         testDate,
		Time:         "22:30",
		PartySize:    2,
	})

	assert.ErrorIs(t, err, ErrRestaurantClosed)
	assert.Nil(t, resp)
}

func TestExecute_TimeInPast(t *testing.T) {
	now := time.Date(2026, time.September, 15, 20, 0, 0, 0, time.UTC)
	uc := newTestUseCase(testRestaurant(50), nil, now, Config{})

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 1,
		Date:         testDate,
		Time:         "19:00",
		PartySize:    2,
	})

	assert.ErrorIs(t, err, ErrTimeInPast)
	assert.Nil(t, resp)
}

func TestExecute_RestaurantNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeRestaurantRepo{err: restaurantRepo.ErrRestaurantNotFound},
		Config{},
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: 42,
		Date:         testDate,
		Time:         "19:00",
		PartySize:    2,
	})

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
	assert.Nil(t, resp)
}

func TestExecute_Validation(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(testRestaurant(50), nil, now, Config{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero restaurant id", &Request{RestaurantID: 0, Date: testDate, Time: "19:00", PartySize: 2}},
		{"zero party size", &Request{RestaurantID: 1, Date: testDate, Time: "19:00", PartySize: 0}},
		{"party size too large", &Request{RestaurantID: 1, Date: testDate, Time: "19:00", PartySize: 101}},
		{"zero date", &Request{RestaurantID: 1, Time: "19:00", PartySize: 2}},
		{"malformed time", &Request{RestaurantID: 1, Date: testDate, Time: "7pm", PartySize: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
		})
	}
}
