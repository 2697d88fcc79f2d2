package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cloutjet/admin-dashboard/internal/session"
	"github.com/cloutjet/admin-dashboard/internal/usecases/authenticating"
	"github.com/cloutjet/admin-dashboard/pkg/log"
)

type contextKey string

const (
	ContextKeySession   contextKey = "session"
	ContextKeyAuthError contextKey = "auth_error"
)

// SessionValidator é satisfeito por authenticating.Authenticator
type SessionValidator interface {
	ValidateToken(tokenString string) (session.Session, error)
}

// AuthMiddleware resolve a sessão do header Authorization sem bloquear a
// requisição. Cada rota decide com RequireSession se a sessão é obrigatória.
func AuthMiddleware(validator SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/login" || r.URL.Path == "/healthcheck" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				ctx = context.WithValue(ctx, ContextKeyAuthError, authenticating.NewAuthError(
					authenticating.ErrInvalidToken, "", "Bearer token is required"))
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			sess, err := validator.ValidateToken(tokenString)
			if err != nil {
				ctx = context.WithValue(ctx, ContextKeyAuthError, err)
				log.AddRequestField(ctx, "session_error", err.Error())
			} else {
				ctx = context.WithValue(ctx, ContextKeySession, &sess)
				log.AddRequestField(ctx, "session_id", sess.ID)
				log.AddRequestField(ctx, "session_email", sess.Email)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext retorna a sessão resolvida pelo AuthMiddleware
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(ContextKeySession).(*session.Session)
	return sess, ok && sess != nil
}

func authErrorFromContext(ctx context.Context) error {
	err, _ := ctx.Value(ContextKeyAuthError).(error)
	return err
}
