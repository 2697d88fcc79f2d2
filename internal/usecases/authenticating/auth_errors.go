package authenticating

import (
	"errors"
	"fmt"
)

// Tipos de erros de autenticação personalizados
var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("token expirado")
	ErrSessionNotFound    = errors.New("sessão não encontrada")

	// Erros de validação
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")

	// Erros da API remota
	ErrUpstreamUnavailable = errors.New("api remota indisponível")
	ErrUpstreamRejected    = errors.New("api remota recusou o login")
	ErrSessionCreation     = errors.New("erro ao criar sessão")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Email   string // Email envolvido (quando aplicável)
	Details string // Mensagem exibida ao usuário
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError verifica se o erro está relacionado a credenciais inválidas
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrMissingRequiredData)
}

// IsAuthorizationError verifica se o erro está relacionado ao token de sessão
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrSessionNotFound)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewEmailAuthError(baseErr error, code string, email string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Email:   email,
		Details: details,
	}
}
