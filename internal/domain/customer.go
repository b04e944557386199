package domain

import "time"

// Customer represents a calling customer, keyed by phone number
type Customer struct {
	ID          int64
	Phone       string // Натуральный ключ
	Name        string
	Email       *string
	Preferences *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
