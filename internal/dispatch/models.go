package dispatch

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Intent имена интентов, которые диспетчер принимает от голосового слоя
const (
	IntentCreateBooking     = "create_booking"
	IntentCheckAvailability = "check_availability"
	IntentFindBooking       = "find_booking"
	IntentCancelBooking     = "cancel_booking"
	IntentModifyBooking     = "modify_booking"
	IntentGetRestaurantInfo = "get_restaurant_info"
)

// ErrorKind категория ошибки для голосового слоя
type ErrorKind string

const (
	KindValidation  ErrorKind = "validation"  // Некорректный ввод, можно переспросить
	KindConflict    ErrorKind = "conflict"    // Мест нет, стоит предложить альтернативы
	KindNotFound    ErrorKind = "not_found"   // Код и телефон не совпали
	KindClosed      ErrorKind = "closed"      // Ресторан закрыт в это время
	KindExhausted   ErrorKind = "exhausted"   // Не удалось выдать код подтверждения
	KindUnavailable ErrorKind = "unavailable" // Временная проблема, стоит попробовать позже
)

// ToolCall структурированный интент от голосового слоя
type ToolCall struct {
	Intent string `json:"intent"`

	// SessionID сессия звонка, если голосовой слой её ведёт
	SessionID *uuid.UUID `json:"sessionId,omitempty"`

	Arguments json.RawMessage `json:"arguments"`
}

// Result структурированный ответ диспетчера.
// Либо OK с полезной нагрузкой, либо категория ошибки с безопасным сообщением
type Result struct {
	OK   bool        `json:"ok"`
	Data interface{} `json:"data,omitempty"`

	Kind    ErrorKind `json:"kind,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Аргументы интентов

type createBookingArgs struct {
	RestaurantID    int64   `json:"restaurantId"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	PartySize       int     `json:"partySize"`
	Date            string  `json:"date"` // "2026-09-15"
	Time            string  `json:"time"` // "19:00"
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

type checkAvailabilityArgs struct {
	RestaurantID int64  `json:"restaurantId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PartySize    int    `json:"partySize"`
}

type findBookingArgs struct {
	ConfirmationCode string `json:"confirmationCode"`
	CustomerPhone    string `json:"customerPhone"`
}

type cancelBookingArgs struct {
	ConfirmationCode string `json:"confirmationCode"`
	CustomerPhone    string `json:"customerPhone"`
}

type modifyBookingArgs struct {
	ConfirmationCode string  `json:"confirmationCode"`
	CustomerPhone    string  `json:"customerPhone"`
	NewDate          *string `json:"newDate,omitempty"`
	NewTime          *string `json:"newTime,omitempty"`
	NewPartySize     *int    `json:"newPartySize,omitempty"`
}

type getRestaurantInfoArgs struct {
	RestaurantID int64 `json:"restaurantId"`
}

// Ответы интентов

type slotData struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
}

type availabilityData struct {
	Available         bool       `json:"available"`
	Slot              slotData   `json:"slot"`
	Alternatives      []slotData `json:"alternatives"`
	RemainingCapacity int        `json:"remainingCapacity"`
}

type cancelData struct {
	Cancelled bool `json:"cancelled"`
}

type dayHoursData struct {
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
}

type restaurantInfoData struct {
	ID          int64                   `json:"id"`
	Name        string                  `json:"name"`
	Address     string                  `json:"address"`
	Phone       string                  `json:"phone"`
	MaxCapacity int                     `json:"maxCapacity"`
	Hours       map[string]dayHoursData `json:"hours"`
}
