// Package middleware содержит HTTP middleware роутера
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/test-dunyo/meet-booking-service/internal/api/handlers"
)

const msgMissingAdminID = "X-Admin-ID sarlavhasi yo'q yoki noto'g'ri"

type contextKey string

const adminIDKey contextKey = "adminID"

// Auth проверяет заголовок X-Admin-ID и кладет ID администратора в контекст.
// Аутентификацию выполняет шлюз перед сервисом, здесь только идентификация.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID, err := strconv.ParseInt(r.Header.Get("X-Admin-ID"), 10, 64)
		if err != nil || adminID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingAdminID)
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID возвращает ID администратора из контекста запроса
func GetAdminID(ctx context.Context) (int64, bool) {
	adminID, ok := ctx.Value(adminIDKey).(int64)
	return adminID, ok
}
