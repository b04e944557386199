package codegen

import "context"

// CodeChecker проверяет занятость кода подтверждения активным бронированием
type CodeChecker interface {
	ActiveCodeExists(ctx context.Context, restaurantID int64, code string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
