package modify_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/RVA-ReservationService/pkg/ptr"
	"github.com/m04kA/RVA-ReservationService/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByConfirmationAndPhone(_ context.Context, code, phone string) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.ConfirmationCode == code && b.CustomerPhone == phone {
			copied := *b
			return &copied, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByRestaurantWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		if b.RestaurantID != filter.RestaurantID {
			continue
		}
		if filter.Date != nil && !b.Slot.Date.Equal(*filter.Date) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateSlot(_ context.Context, id int64, slot domain.TimeSlot, partySize int) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Slot = slot
	b.PartySize = partySize
	b.UpdatedAt = time.Now()
	return nil
}

type fakeRestaurantRepo struct {
	restaurant *domain.Restaurant
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, _ int64) (*domain.Restaurant, error) {
	return f.restaurant, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

var (
	testDate = time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
)

func testRestaurant(capacity int) *domain.Restaurant {
	openTime := "10:00"
	closeTime := "23:00"
	allWeek := domain.DaySchedule{IsOpen: true, OpenTime: &openTime, CloseTime: &closeTime}

	return &domain.Restaurant{
		ID:          1,
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

func testBooking(id int64, code, phone string, partySize int, start string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:               id,
		RestaurantID:     1,
		CustomerPhone:    phone,
		PartySize:        partySize,
		Status:           status,
		ConfirmationCode: code,
		Slot: domain.TimeSlot{
			Date:            testDate,
			StartTime:       types.TimeString(start),
			DurationMinutes: 120,
		},
	}
}

func newTestUseCase(capacity int, bookings ...*domain.Booking) (*UseCase, *fakeBookingRepo) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}

	uc := NewUseCase(repo, &fakeRestaurantRepo{restaurant: testRestaurant(capacity)}, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc, repo
}

func ptrTime(s string) *types.TimeString {
	return ptr.Ptr(types.TimeString(s))
}

func ptrInt(v int) *int {
	return ptr.Ptr(v)
}

// Тесты

func TestExecute_ChangesStartTime(t *testing.T) {
	uc, repo := newTestUseCase(50,
		testBooking(1, "ABC234", "+79990001122", 4, "19:00", domain.StatusConfirmed),
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ConfirmationCode: "ABC234",
		CustomerPhone:    "+79990001122",
		NewStartTime:     ptrTime("20:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("20:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("20:00"), repo.bookings[1].Slot.StartTime)
}

func TestExecute_ChangesPartySizeWithinCapacity(t *testing.T) {
	uc, repo := newTestUseCase(50,
		testBooking(1, "ABC234", "+79990001122", 4, "19:00", domain.StatusConfirmed),
		testBooking(2, "XYZ789", "+79990003344", 40, "19:00", domain.StatusConfirmed),
	)

	// 40 занято другими, своя группа не считается: 10 мест доступно
	resp, err := uc.Execute(context.Background(), &Request{
		ConfirmationCode: "ABC234",
		CustomerPhone:    "+79990001122",
		NewPartySize:     ptrInt(10),
	})

	require.NoError(t, err)
	assert.Equal(t, 10, resp.PartySize)
	assert.Equal(t, 10, repo.bookings[1].PartySize)
}

func TestExecute_ConflictLeavesOriginalUntouched(t *testing.T) {
	uc, repo := newTestUseCase(50,
		testBooking(1, "ABC234", "+79990001122", 4, "12:00", domain.StatusConfirmed),
		testBooking(2, "XYZ789", "+79990003344", 48, "19:00", domain.StatusConfirmed),
	)

	// На 19:00 свободно всего 2 места
	resp, err := uc.Execute(context.Background(), &Request{
		ConfirmationCode: "ABC234",
		CustomerPhone:    "+79990001122",
		NewStartTime:     ptrTime("19:00"),
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, resp)

	// Исходное бронирование не изменилось
	original := repo.bookings[1]
	assert.Equal(t, types.TimeString("12:00"), original.Slot.StartTime)
	assert.Equal(t, 4, original.PartySize)
}

func TestExecute_WrongPhoneHidesBooking(t *testing.T) {
	uc, _ := newTestUseCase(50,
		testBooking(1, "ABC234", "+79990001122", 4, "19:00", domain.StatusConfirmed),
	)

	_, err := uc.Execute(context.Background(), &Request{
		ConfirmationCode: "ABC234",
		CustomerPhone:    "+79990009999",
		NewPartySize:     ptrInt(6),
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_TerminalStatusesCannotBeModified(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCancelled, domain.StatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			uc, _ := newTestUseCase(50,
				testBooking(1, "ABC234", "+79990001122", 4, "19:00", status),
			)

			_, err := uc.Execute(context.Background(), &Request{
				ConfirmationCode: "ABC234",
				CustomerPhone:    "+79990001122",
				NewPartySize:     ptrInt(6),
			})

			assert.ErrorIs(t, err, ErrCannotModify)
		})
	}
}

func TestExecute_NewWindowOutsideHours(t *testing.T) {
	uc, _ := newTestUseCase(50,
		testBooking(1, "ABC234", "+79990001122", 4, "19:00", domain.StatusConfirmed),
	)

	_, err := uc.Execute(context.Background(), &Request{
		ConfirmationCode: "ABC234",
		CustomerPhone:    "+79990001122",
		NewStartTime:     ptrTime("22:30"),
	})

	assert.ErrorIs(t, err, ErrRestaurantClosed)
}

func TestExecute_NewTimeInPast(t *testing.T) {
	uc, _ := newTestUseCase(50,
		testBooking(1, "ABC234", "+79990001122", 4, "19:00", domain.StatusConfirmed),
	)
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, time.September, 15, 20, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), &Request{
		ConfirmationCode: "ABC234",
		CustomerPhone:    "+79990001122",
		NewStartTime:     ptrTime("18:00"),
	})

	assert.ErrorIs(t, err, ErrTimeInPast)
}

func TestExecute_NothingToModify(t *testing.T) {
	uc, _ := newTestUseCase(50,
		testBooking(1, "ABC234", "+79990001122", 4, "19:00", domain.StatusConfirmed),
	)

	_, err := uc.Execute(context.Background(), &Request{
		ConfirmationCode: "ABC234",
		CustomerPhone:    "+79990001122",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
