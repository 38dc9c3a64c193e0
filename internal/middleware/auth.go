package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"
	"github.com/Ksaiko-Vlad/sofa-order-service/pkg/token"
)

type ctxKey int

const actorKey ctxKey = iota

type TokenParser interface {
	Parse(raw string) (token.Claims, error)
}

// Auth проверяет Bearer-токен и кладёт авторизованного пользователя в контекст.
// Запросы без валидного токена отклоняются с 401.
func Auth(tokens TokenParser) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			role := entities.Role(claims.Role)
			if !role.Valid() {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			actor := entities.Actor{UserID: claims.UserID, Role: role}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
		})
	}
}

// ActorFromContext возвращает пользователя, положенного middleware Auth.
func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(entities.Actor)
	return actor, ok
}
