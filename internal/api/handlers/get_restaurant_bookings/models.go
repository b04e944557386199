package get_restaurant_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	"github.com/m04kA/RVA-ReservationService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	restaurantID int64,
	dateStr string,
	statusStr string,
	includeInactiveStr string,
) (*models.GetRestaurantBookingsRequest, error) {
	req := &models.GetRestaurantBookingsRequest{
		RestaurantID:    restaurantID,
		IncludeInactive: false, // По умолчанию только активные
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %v", dateStr, err)
		}
		req.Date = &date
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive %q: %v", includeInactiveStr, err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
