package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/k1rasov/GMP-BookingService/internal/api/handlers"
	"github.com/k1rasov/GMP-BookingService/internal/integrations/authservice"
)

const (
	msgMissingToken   = "требуется авторизация"
	msgInvalidSession = "сессия недействительна"
)

type contextKey string

const userIDKey contextKey = "userID"

// SessionClient интерфейс клиента сервиса авторизации
type SessionClient interface {
	GetSession(ctx context.Context, token string) (*authservice.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет Bearer токен через сервис авторизации и кладет ID клиента
// в контекст запроса
func Auth(sessions SessionClient, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			session, err := sessions.GetSession(r.Context(), token)
			if err != nil {
				if errors.Is(err, authservice.ErrSessionInvalid) {
					logger.Warn("Auth: invalid session, path=%s", r.URL.Path)
					handlers.RespondUnauthorized(w, msgInvalidSession)
					return
				}
				logger.Error("Auth: session check failed, path=%s: %v", r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), session.CustomerID)))
		})
	}
}

// WithUserID кладет ID клиента в контекст
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// GetUserID извлекает ID клиента из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
