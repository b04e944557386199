package create_booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RVA-ReservationService/internal/codegen"
	"github.com/m04kA/RVA-ReservationService/internal/domain"
	"github.com/m04kA/RVA-ReservationService/pkg/types"
)

// Фейки зависимостей

// fakeBookingRepo хранит бронирования в памяти; доступ сериализуется
// фейковым transaction manager, как это делает сериализуемая транзакция
type fakeBookingRepo struct {
	bookings []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.bookings = append(f.bookings, &created)
	return &created, nil
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

type fakeCustomerRepo struct {
	nextID int64
}

func (f *fakeCustomerRepo) GetOrCreateByPhone(_ context.Context, phone, name string) (*domain.Customer, error) {
	f.nextID++
	return &domain.Customer{ID: f.nextID, Phone: phone, Name: name}, nil
}

type fakeCodeGen struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeCodeGen) Generate(_ context.Context, _ int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return fmt.Sprintf("CODE%02d", f.calls), nil
}

// fakeTxManager сериализует конкурентные транзакции мьютексом:
// проверка вместимости и вставка выполняются атомарно, как в SERIALIZABLE
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
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

func testRequest(phone string, partySize int, start types.TimeString) *Request {
	return &Request{
		RestaurantID:  1,
		CustomerName:  "Анна",
		CustomerPhone: phone,
		PartySize:     partySize,
		Date:          testDate,
		StartTime:     start,
	}
}

func newTestUseCase(capacity int) (*UseCase, *fakeBookingRepo, *fakeCodeGen) {
	repo := &fakeBookingRepo{}
	codeGen := &fakeCodeGen{}
	uc := NewUseCase(
		repo,
		&fakeRestaurantRepo{restaurant: testRestaurant(capacity)},
		&fakeCustomerRepo{},
		codeGen,
		&fakeTxManager{},
		nil,
		Config{ServiceDurationMinutes: 120},
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc, repo, codeGen
}

// Тесты

func TestExecute_CreatesConfirmedBooking(t *testing.T) {
	uc, repo, _ := newTestUseCase(50)

	resp, err := uc.Execute(context.Background(), testRequest("+79990001122", 4, "19:00"))

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.NotEmpty(t, resp.ConfirmationCode)
	assert.Equal(t, 120, resp.DurationMinutes)
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_SequentialCreatesStopAtCapacity(t *testing.T) {
	// Вместимость 10, группы по 4: третья уже не помещается
	uc, repo, _ := newTestUseCase(10)

	for i := 0; i < 2; i++ {
		_, err := uc.Execute(context.Background(), testRequest(fmt.Sprintf("+7999000%04d", i), 4, "19:00"))
		require.NoError(t, err)
	}

	_, err := uc.Execute(context.Background(), testRequest("+79990009999", 4, "19:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Len(t, repo.bookings, 2)
}

func TestExecute_ConcurrentCreatesNeverExceedCapacity(t *testing.T) {
	const (
		capacity  = 50
		partySize = 4
		attempts  = 20
	)

	uc, repo, _ := newTestUseCase(capacity)

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), testRequest(fmt.Sprintf("+7999000%04d", i), partySize, "19:00"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSlotNotAvailable)
		}
	}

	// Успевает ровно столько групп, сколько помещается
	assert.Equal(t, capacity/partySize, succeeded)

	total := 0
	for _, b := range repo.bookings {
		total += b.PartySize
	}
	assert.LessOrEqual(t, total, capacity)
}

func TestExecute_TwoLargePartiesAgainstSmallRemainder(t *testing.T) {
	uc, _, _ := newTestUseCase(50)

	// Занимаем 45 из 50
	_, err := uc.Execute(context.Background(), testRequest("+79990000001", 45, "19:00"))
	require.NoError(t, err)

	// Обе группы по 30 не помещаются в оставшиеся 5
	_, err = uc.Execute(context.Background(), testRequest("+79990000002", 30, "19:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	_, err = uc.Execute(context.Background(), testRequest("+79990000003", 30, "19:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_NonOverlappingWindowsDoNotCompete(t *testing.T) {
	uc, repo, _ := newTestUseCase(50)

	_, err := uc.Execute(context.Background(), testRequest("+79990000001", 50, "12:00"))
	require.NoError(t, err)

	// Окно 14:00-16:00 граничит с 12:00-14:00 и не конкурирует с ним
	_, err = uc.Execute(context.Background(), testRequest("+79990000002", 50, "14:00"))
	require.NoError(t, err)
	assert.Len(t, repo.bookings, 2)
}

func TestExecute_CodesExhausted(t *testing.T) {
	uc, repo, codeGen := newTestUseCase(50)
	codeGen.err = fmt.Errorf("%w: Generate - restaurant 1", codegen.ErrExhausted)

	_, err := uc.Execute(context.Background(), testRequest("+79990001122", 4, "19:00"))

	assert.ErrorIs(t, err, ErrCodesExhausted)
	assert.Empty(t, repo.bookings)
}

func TestExecute_RestaurantClosed(t *testing.T) {
	uc, _, _ := newTestUseCase(50)

	_, err := uc.Execute(context.Background(), testRequest("+79990001122", 4, "22:30"))
	assert.ErrorIs(t, err, ErrRestaurantClosed)
}

func TestExecute_TimeInPast(t *testing.T) {
	uc, _, _ := newTestUseCase(50)
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, time.September, 15, 20, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), testRequest("+79990001122", 4, "19:00"))
	assert.ErrorIs(t, err, ErrTimeInPast)
}

func TestExecute_Validation(t *testing.T) {
	uc, _, _ := newTestUseCase(50)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty name", func(r *Request) { r.CustomerName = " " }},
		{"empty phone", func(r *Request) { r.CustomerPhone = "" }},
		{"zero party size", func(r *Request) { r.PartySize = 0 }},
		{"party size too large", func(r *Request) { r.PartySize = 101 }},
		{"malformed time", func(r *Request) { r.StartTime = "7pm" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest("+79990001122", 4, "19:00")
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
