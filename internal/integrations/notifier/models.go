package notifier

// BookingConfirmation данные SMS-подтверждения бронирования
type BookingConfirmation struct {
	CustomerPhone    string `json:"customerPhone"`
	CustomerName     string `json:"customerName"`
	RestaurantName   string `json:"restaurantName"`
	ConfirmationCode string `json:"confirmationCode"`
	Date             string `json:"date"`      // "2026-09-15"
	StartTime        string `json:"startTime"` // "19:00"
	PartySize        int    `json:"partySize"`
}

// ErrorResponse модель ошибки от шлюза уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
