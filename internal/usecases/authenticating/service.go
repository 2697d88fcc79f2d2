package authenticating

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cloutjet/admin-dashboard/infrastructure/integrator/cloutjet/cloutjetclient"
	"github.com/cloutjet/admin-dashboard/internal/config"
	"github.com/cloutjet/admin-dashboard/internal/domain"
	"github.com/cloutjet/admin-dashboard/internal/session"
	"github.com/cloutjet/admin-dashboard/pkg/apiErrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const signInFallbackMessage = "unable to sign-in"

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(sessionID string) error
	ValidateToken(tokenString string) (session.Session, error)
}

// LoginResult é o que o navegador recebe após o login. O token não
// carrega exp: a sessão expira após IdleTimeout sem uso, e cada requisição
// renova o prazo.
type LoginResult struct {
	Token       string `json:"token"`
	Email       string `json:"email"`
	IdleTimeout int64  `json:"idle_timeout_seconds,omitempty"`
}

type Service struct {
	client   cloutjetclient.Client
	sessions *session.Manager
	cfg      *config.Config
	now      func() time.Time
}

func NewService(client cloutjetclient.Client, sessions *session.Manager, cfg *config.Config) Authenticator {
	return &Service{
		client:   client,
		sessions: sessions,
		cfg:      cfg,
		now:      time.Now,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// Login repassa as credenciais para a API remota e abre uma sessão local
// com o token devolvido.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	upstreamToken, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, loginError(email, err)
	}

	sess, err := s.sessions.Create(email, upstreamToken)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar sessão")
		return nil, NewEmailAuthError(ErrSessionCreation, apiErrors.ErrInternalServer, email, signInFallbackMessage)
	}

	claims := domain.SessionClaims{
		SessionID: sess.ID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		s.sessions.Delete(sess.ID)
		return nil, NewEmailAuthError(err, apiErrors.ErrInternalServer, email, "Erro ao gerar token de autenticação")
	}

	logrus.WithField("user_email", email).Info("Login realizado")

	return &LoginResult{Token: token, Email: email, IdleTimeout: int64(s.sessions.TTL().Seconds())}, nil
}

// loginError traduz a falha da API remota. A mensagem exibida é a do
// servidor quando existir.
func loginError(email string, err error) *AuthError {
	details := signInFallbackMessage
	if msg, ok := cloutjetclient.ServerMessage(err); ok {
		details = msg
	}

	var transportErr *cloutjetclient.TransportError
	switch status := cloutjetclient.StatusCode(err); {
	case errors.As(err, &transportErr):
		logrus.WithError(err).Error("API remota indisponível no login")
		return NewEmailAuthError(ErrUpstreamUnavailable, apiErrors.ErrCommunication, email, details)
	case status == http.StatusUnauthorized || status == http.StatusBadRequest ||
		status == http.StatusForbidden || status == http.StatusNotFound:
		return NewEmailAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, email, details)
	default:
		logrus.WithError(err).Warn("Login recusado pela API remota")
		return NewEmailAuthError(ErrUpstreamRejected, apiErrors.ErrExternalService, email, details)
	}
}

func (s *Service) Logout(sessionID string) error {
	if !s.sessions.Delete(sessionID) {
		return NewAuthError(ErrSessionNotFound, apiErrors.ErrSessionNotFound, "Sessão já encerrada")
	}
	return nil
}

// ValidateToken valida o JWT da sessão e retorna a sessão ativa
func (s *Service) ValidateToken(tokenString string) (session.Session, error) {
	claims := &domain.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return session.Session{}, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		}
		return session.Session{}, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	if !token.Valid || claims.SessionID == "" {
		return session.Session{}, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	sess, err := s.sessions.Lookup(claims.SessionID)
	switch {
	case errors.Is(err, session.ErrExpired):
		return session.Session{}, NewEmailAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, claims.Email, "Sessão expirada")
	case err != nil:
		return session.Session{}, NewEmailAuthError(ErrSessionNotFound, apiErrors.ErrSessionNotFound, claims.Email, "Sessão não encontrada, faça login novamente")
	}

	return sess, nil
}
