package domain

// Default configuration values
const (
	DefaultServiceDurationMinutes = 120 // Сколько времени столик занят одним бронированием
	DefaultSearchStepMinutes      = 15  // Шаг поиска альтернативных слотов
	DefaultMaxAlternatives        = 5   // Максимум альтернативных слотов в ответе
	DefaultCodeLength             = 6
	DefaultCodeMaxAttempts        = 5
)

// Business validation constants
const (
	MinPartySize = 1
	MaxPartySize = 100

	MinServiceDurationMinutes = 15
	MaxServiceDurationMinutes = 480 // 8 hours

	MaxSpecialRequestsLength = 500
	MaxAgentNotesLength      = 2000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, занимающих вместимость ресторана
// Используется при подсчёте занятых мест в окне бронирования
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses список статусов, не влияющих на вместимость
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}
