package check_availability

import (
	"time"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
	checkAvailability "github.com/m04kA/RVA-ReservationService/internal/usecase/check_availability"
	"github.com/m04kA/RVA-ReservationService/pkg/types"
)

// SlotResponse HTTP модель временного окна
type SlotResponse struct {
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available         bool           `json:"available"`
	Slot              SlotResponse   `json:"slot"`
	Alternatives      []SlotResponse `json:"alternatives"`
	RemainingCapacity int            `json:"remainingCapacity"`
}

// ToUseCaseRequest собирает запрос use case из параметров запроса
func ToUseCaseRequest(restaurantID int64, dateStr, timeStr string, partySize int) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		RestaurantID: restaurantID,
		Date:         date,
		Time:         startTime,
		PartySize:    partySize,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Available:         resp.Available,
		Slot:              toSlotResponse(resp.Slot),
		Alternatives:      make([]SlotResponse, 0, len(resp.Alternatives)),
		RemainingCapacity: resp.RemainingCapacity,
	}

	for _, alt := range resp.Alternatives {
		out.Alternatives = append(out.Alternatives, toSlotResponse(alt))
	}

	return out
}

func toSlotResponse(slot domain.TimeSlot) SlotResponse {
	return SlotResponse{
		Date:            slot.Date.Format(domain.DateFormat),
		StartTime:       slot.StartTime.String(),
		DurationMinutes: slot.DurationMinutes,
	}
}
