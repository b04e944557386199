package middleware

import (
	"context"
	"net/http"
	"strings"
)

// HeaderCallerPhone заголовок, в котором голосовой шлюз передаёт
// верифицированный номер звонящего
const HeaderCallerPhone = "X-Caller-Phone"

type ctxKey string

const callerPhoneKey ctxKey = "callerPhone"

// CallerPhone middleware извлекает номер звонящего из заголовка в контекст.
// Отсутствие заголовка не ошибка: публичные маршруты передают телефон в теле
// или query, защищённые проверяют его через GetCallerPhone
func CallerPhone(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		phone := strings.TrimSpace(r.Header.Get(HeaderCallerPhone))
		if phone != "" {
			r = r.WithContext(context.WithValue(r.Context(), callerPhoneKey, phone))
		}
		next.ServeHTTP(w, r)
	})
}

// GetCallerPhone возвращает номер звонящего из контекста
func GetCallerPhone(ctx context.Context) (string, bool) {
	phone, ok := ctx.Value(callerPhoneKey).(string)
	return phone, ok
}
