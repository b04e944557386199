package notifier

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("notifier client: invalid response")

	// ErrServiceUnavailable возвращается, когда шлюз уведомлений недоступен.
	// Доставка уведомлений best-effort: вызывающий код логирует и продолжает
	ErrServiceUnavailable = errors.New("notifier client: service unavailable")
)
