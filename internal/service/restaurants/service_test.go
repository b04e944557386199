package restaurants

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	restaurantRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/RVA-ReservationService/internal/service/restaurants/models"
)

// Фейк репозитория ресторанов

type fakeRestaurantRepo struct {
	restaurants map[int64]*domain.Restaurant
	lastUpdate  *domain.RestaurantSettingsUpdate
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{restaurants: map[int64]*domain.Restaurant{}}
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, id int64) (*domain.Restaurant, error) {
	r, ok := f.restaurants[id]
	if !ok {
		return nil, restaurantRepo.ErrRestaurantNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRestaurantRepo) UpdateSettings(_ context.Context, id int64, upd domain.RestaurantSettingsUpdate) (*domain.Restaurant, error) {
	r, ok := f.restaurants[id]
	if !ok {
		return nil, restaurantRepo.ErrRestaurantNotFound
	}
	f.lastUpdate = &upd
	if upd.Phone != nil {
		r.Phone = *upd.Phone
	}
	if upd.Email != nil {
		r.Email = upd.Email
	}
	if upd.WorkingDays != nil {
		r.WorkingDays = *upd.WorkingDays
	}
	if upd.MaxCapacity != nil {
		r.MaxCapacity = *upd.MaxCapacity
	}
	copied := *r
	return &copied, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRestaurant() *domain.Restaurant {
	open := "10:00"
	closeTime := "23:00"
	return &domain.Restaurant{
		ID:          1,
		Name:        "Вечер",
		Address:     "Невский 1",
		Phone:       "+78120000000",
		MaxCapacity: 50,
		WorkingDays: domain.WeekSchedule{
			Monday: domain.DaySchedule{IsOpen: true, OpenTime: &open, CloseTime: &closeTime},
		},
	}
}

// Тесты

func TestGet_ReturnsRestaurant(t *testing.T) {
	repo := newFakeRestaurantRepo()
	repo.restaurants[1] = testRestaurant()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Get(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Вечер", resp.Name)
	assert.Equal(t, 50, resp.MaxCapacity)
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(newFakeRestaurantRepo(), nopLogger{})

	_, err := svc.Get(context.Background(), 999)

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestUpdateSettings_PartialUpdate(t *testing.T) {
	repo := newFakeRestaurantRepo()
	repo.restaurants[1] = testRestaurant()
	svc := NewService(repo, nopLogger{})

	capacity := 80
	resp, err := svc.UpdateSettings(context.Background(), 1, &models.UpdateSettingsRequest{
		MaxCapacity: &capacity,
	})

	require.NoError(t, err)
	assert.Equal(t, 80, resp.MaxCapacity)
	// Остальные поля не затронуты
	assert.Equal(t, "+78120000000", resp.Phone)
	assert.Nil(t, repo.lastUpdate.Phone)
	assert.Nil(t, repo.lastUpdate.WorkingDays)
}

func TestUpdateSettings_EmptyRequest(t *testing.T) {
	repo := newFakeRestaurantRepo()
	repo.restaurants[1] = testRestaurant()
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateSettings(context.Background(), 1, &models.UpdateSettingsRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateSettings_ScheduleValidation(t *testing.T) {
	open := "10:00"
	closeTime := "23:00"
	badTime := "25:70"

	cases := []struct {
		name string
		day  domain.DaySchedule
	}{
		{"open day without hours", domain.DaySchedule{IsOpen: true}},
		{"unparseable open time", domain.DaySchedule{IsOpen: true, OpenTime: &badTime, CloseTime: &closeTime}},
		{"open not before close", domain.DaySchedule{IsOpen: true, OpenTime: &closeTime, CloseTime: &open}},
		{"open equals close", domain.DaySchedule{IsOpen: true, OpenTime: &open, CloseTime: &open}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRestaurantRepo()
			repo.restaurants[1] = testRestaurant()
			svc := NewService(repo, nopLogger{})

			_, err := svc.UpdateSettings(context.Background(), 1, &models.UpdateSettingsRequest{
				WorkingDays: &domain.WeekSchedule{Friday: tc.day},
			})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateSettings_ClosedDayNeedsNoHours(t *testing.T) {
	repo := newFakeRestaurantRepo()
	repo.restaurants[1] = testRestaurant()
	svc := NewService(repo, nopLogger{})

	// Полностью закрытая неделя валидна: часы нужны только открытым дням
	resp, err := svc.UpdateSettings(context.Background(), 1, &models.UpdateSettingsRequest{
		WorkingDays: &domain.WeekSchedule{},
	})

	require.NoError(t, err)
	assert.False(t, resp.WorkingDays.Monday.IsOpen)
}

func TestUpdateSettings_NotFound(t *testing.T) {
	svc := NewService(newFakeRestaurantRepo(), nopLogger{})

	phone := "+78121112233"
	_, err := svc.UpdateSettings(context.Background(), 999, &models.UpdateSettingsRequest{Phone: &phone})

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}
