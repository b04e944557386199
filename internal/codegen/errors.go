package codegen

import "errors"

var (
	// ErrExhausted возвращается, когда за MaxAttempts попыток не удалось
	// подобрать свободный код подтверждения
	ErrExhausted = errors.New("codegen: unique code attempts exhausted")

	// ErrCheckFailed возвращается при ошибке проверки занятости кода в хранилище
	ErrCheckFailed = errors.New("codegen: failed to check code uniqueness")
)
