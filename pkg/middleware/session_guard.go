package middleware

import (
	"errors"
	"net/http"

	"github.com/cloutjet/admin-dashboard/internal/usecases/authenticating"
	"github.com/cloutjet/admin-dashboard/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// RequireSession restringe a rota a requisições com sessão válida
func RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := SessionFromContext(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			code, message := apiErrors.ErrInvalidToken, "Sessão ausente, faça login novamente"

			var authErr *authenticating.AuthError
			if err := authErrorFromContext(r.Context()); errors.As(err, &authErr) {
				if authErr.Code != "" {
					code = authErr.Code
				}
				if authErr.Details != "" {
					message = authErr.Details
				}
			}

			logrus.WithField("path", r.URL.Path).Warning("Tentativa de acesso sem sessão")
			apiErrors.WriteError(w, code, message, nil)
		})
	}
}
