package codegen

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
)

// Алфавит без визуально и на слух похожих символов (O/0, I/1) -
// коды диктуются по телефону
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Generator генерирует коды подтверждения, уникальные среди активных
// бронирований ресторана
type Generator struct {
	checker     CodeChecker
	logger      Logger
	length      int
	maxAttempts int

	randInt func(n int) int
}

// NewGenerator создает новый генератор кодов подтверждения.
// При нулевых length и maxAttempts используются значения по умолчанию
func NewGenerator(checker CodeChecker, logger Logger, length, maxAttempts int) *Generator {
	if length <= 0 {
		length = domain.DefaultCodeLength
	}
	if maxAttempts <= 0 {
		maxAttempts = domain.DefaultCodeMaxAttempts
	}

	return &Generator{
		checker:     checker,
		logger:      logger,
		length:      length,
		maxAttempts: maxAttempts,
		randInt:     rand.Intn,
	}
}

// Generate возвращает код, не занятый активным бронированием ресторана.
// После maxAttempts коллизий подряд возвращает ErrExhausted - это сигнал
// о переполнении пространства кодов, а не обычная ошибка запроса
func (g *Generator) Generate(ctx context.Context, restaurantID int64) (string, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		code := g.randomCode()

		exists, err := g.checker.ActiveCodeExists(ctx, restaurantID, code)
		if err != nil {
			return "", fmt.Errorf("%w: Generate - attempt %d: %v", ErrCheckFailed, attempt, err)
		}

		if !exists {
			return code, nil
		}

		g.logger.Warn("codegen: code collision for restaurant %d, attempt %d/%d", restaurantID, attempt, g.maxAttempts)
	}

	g.logger.Error("codegen: exhausted %d attempts for restaurant %d, code space too dense", g.maxAttempts, restaurantID)

	return "", fmt.Errorf("%w: Generate - restaurant %d", ErrExhausted, restaurantID)
}

func (g *Generator) randomCode() string {
	var sb strings.Builder
	sb.Grow(g.length)

	for i := 0; i < g.length; i++ {
		sb.WriteByte(alphabet[g.randInt(len(alphabet))])
	}

	return sb.String()
}
