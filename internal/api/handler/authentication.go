package handler

import (
	"net/http"

	"github.com/cloutjet/admin-dashboard/internal/usecases/authenticating"
	"github.com/cloutjet/admin-dashboard/pkg/apiErrors"
	"github.com/cloutjet/admin-dashboard/pkg/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// Logout encerra a sessão e descarta o token remoto e o cache
func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão ausente", nil)
			return
		}

		if err := service.Logout(sess.ID); err != nil {
			handleAuthError(w, err)
			return
		}

		logrus.WithField("user_email", sess.Email).Info("Logout realizado")
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleAuthError usa o código do AuthError; Details é o texto exibido no formulário
func handleAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		message := authErr.Details
		if message == "" {
			message = authErr.Error()
		}
		apiErrors.WriteError(w, authErr.Code, message, nil)
		return
	}

	logrus.WithError(err).Error("Erro inesperado na autenticação")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "unable to sign-in", nil)
}
