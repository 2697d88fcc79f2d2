package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cloutjet/admin-dashboard/internal/session"
	"github.com/cloutjet/admin-dashboard/internal/usecases/authenticating"
	"github.com/cloutjet/admin-dashboard/pkg/apiErrors"
	"github.com/cloutjet/admin-dashboard/pkg/log"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatorFunc func(string) (session.Session, error)

func (f validatorFunc) ValidateToken(token string) (session.Session, error) {
	return f(token)
}

func sessionEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess, ok := SessionFromContext(r.Context()); ok {
			_, _ = w.Write([]byte(sess.Email))
			return
		}
		_, _ = w.Write([]byte("anonymous"))
	})
}

func TestAuthMiddleware(t *testing.T) {
	validator := validatorFunc(func(token string) (session.Session, error) {
		switch token {
		case "good":
			return session.Session{ID: "s1", Email: "admin@cloutjet.io", Token: "upstream"}, nil
		case "expired":
			return session.Session{}, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		default:
			return session.Session{}, authenticating.NewAuthError(authenticating.ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
		}
	})

	tests := []struct {
		name       string
		header     string
		guarded    bool
		wantStatus int
		wantBody   string
	}{
		{name: "sem header em rota opcional", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "token válido", header: "Bearer good", wantStatus: http.StatusOK, wantBody: "admin@cloutjet.io"},
		{name: "token inválido em rota opcional", header: "Bearer nope", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "sem header em rota protegida", guarded: true, wantStatus: http.StatusUnauthorized, wantBody: apiErrors.ErrInvalidToken},
		{name: "token expirado em rota protegida", header: "Bearer expired", guarded: true, wantStatus: http.StatusUnauthorized, wantBody: apiErrors.ErrExpiredToken},
		{name: "header sem Bearer", header: "good", guarded: true, wantStatus: http.StatusUnauthorized, wantBody: "Bearer token is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := sessionEcho()
			if tt.guarded {
				handler = RequireSession()(handler)
			}
			handler = AuthMiddleware(validator)(handler)

			req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(sessionEcho())

	t.Run("origem liberada", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/accounts", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Body.String())
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "anonymous", rec.Body.String())
	})
}

func TestLoggingMiddleware_RequestFields(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	validator := validatorFunc(func(string) (session.Session, error) {
		return session.Session{ID: "s1", Email: "admin@cloutjet.io"}, nil
	})
	page := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.AddRequestField(r.Context(), "upstream_error", "accounts")
		w.WriteHeader(http.StatusOK)
	})
	handler := LoggingMiddleware()(AuthMiddleware(validator)(page))

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
	req.Header.Set("Authorization", "Bearer good")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "s1", entry.Data["session_id"])
	assert.Equal(t, "admin@cloutjet.io", entry.Data["session_email"])
	assert.Equal(t, "accounts", entry.Data["upstream_error"])
	assert.Equal(t, http.StatusOK, entry.Data["status_code"])
	assert.NotEmpty(t, entry.Data["correlation_id"])
}

func TestLoggingMiddleware_AuthFailureIsLogged(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	validator := validatorFunc(func(string) (session.Session, error) {
		return session.Session{}, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
	})
	handler := LoggingMiddleware()(AuthMiddleware(validator)(RequireSession()(sessionEcho())))

	req := httptest.NewRequest(http.MethodGet, "/v1/audit", nil)
	req.Header.Set("Authorization", "Bearer expired")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, http.StatusUnauthorized, entry.Data["status_code"])
	assert.Contains(t, entry.Data["session_error"], "token expirado")
}

func TestLogPanicMiddleware(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/orders", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
