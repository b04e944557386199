package codegen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RVA-ReservationService/internal/domain"
)

type fakeChecker struct {
	taken map[string]bool
	err   error
	calls []string
}

func (f *fakeChecker) ActiveCodeExists(_ context.Context, _ int64, code string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.calls = append(f.calls, code)
	return f.taken[code], nil
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGenerate_ReturnsCodeOfConfiguredLength(t *testing.T) {
	gen := NewGenerator(&fakeChecker{}, nopLogger{}, 6, 5)

	code, err := gen.Generate(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestGenerate_AlphabetExcludesAmbiguousCharacters(t *testing.T) {
	for _, forbidden := range []string{"O", "0", "I", "1"} {
		assert.NotContains(t, alphabet, forbidden)
	}
}

func TestGenerate_RetriesOnCollision(t *testing.T) {
	// Детерминированный рандом: первая попытка даёт код из alphabet[0],
	// он занят, вторая из alphabet[1]
	checker := &fakeChecker{taken: map[string]bool{strings.Repeat("A", 6): true}}
	gen := NewGenerator(checker, nopLogger{}, 6, 5)

	// Первые 6 вызовов дают "AAAAAA" (занят), следующие - "BBBBBB"
	calls := 0
	gen.randInt = func(int) int {
		calls++
		if calls <= 6 {
			return 0
		}
		return 1
	}

	code, err := gen.Generate(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("B", 6), code)
	assert.Len(t, checker.calls, 2)
}

func TestGenerate_ExhaustsAfterMaxAttempts(t *testing.T) {
	// Все коды заняты
	checker := &fakeChecker{taken: map[string]bool{strings.Repeat("A", 6): true}}
	gen := NewGenerator(checker, nopLogger{}, 6, 3)
	gen.randInt = func(int) int { return 0 }

	code, err := gen.Generate(context.Background(), 1)

	assert.ErrorIs(t, err, ErrExhausted)
	assert.Empty(t, code)
	assert.Len(t, checker.calls, 3)
}

func TestGenerate_CheckerErrorIsWrapped(t *testing.T) {
	checker := &fakeChecker{err: errors.New("connection refused")}
	gen := NewGenerator(checker, nopLogger{}, 6, 3)

	_, err := gen.Generate(context.Background(), 1)

	assert.ErrorIs(t, err, ErrCheckFailed)
}

func TestNewGenerator_AppliesDefaults(t *testing.T) {
	gen := NewGenerator(&fakeChecker{}, nopLogger{}, 0, 0)

	assert.Equal(t, domain.DefaultCodeLength, gen.length)
	assert.Equal(t, domain.DefaultCodeMaxAttempts, gen.maxAttempts)
}
