package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sweetnarcisse/SN-BookingService/internal/api/handlers"
)

type contextKey string

const (
	userIDContextKey contextKey = "userID"
	staffContextKey  contextKey = "isStaff"

	userIDHeader    = "X-User-ID"
	staffRoleHeader = "X-Staff-Role"
)

// Auth проверяет наличие корректного X-User-ID и кладёт его в контекст
// Аутентификацию выполняет внешний шлюз; сервис доверяет заголовкам
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(userIDHeader)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		if r.Header.Get(staffRoleHeader) != "" {
			ctx = context.WithValue(ctx, staffContextKey, true)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffOnly пропускает только запросы с заголовком X-Staff-Role
// Используется после Auth
func StaffOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsStaff(r.Context()) {
			handlers.RespondForbidden(w, "требуются права сотрудника")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey).(int64)
	return userID, ok
}

// IsStaff возвращает true, если запрос пришёл от сотрудника
func IsStaff(ctx context.Context) bool {
	isStaff, ok := ctx.Value(staffContextKey).(bool)
	return ok && isStaff
}
