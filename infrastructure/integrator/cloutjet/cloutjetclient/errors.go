package cloutjetclient

import (
	"fmt"

	"github.com/pkg/errors"
)

// APIError é um erro devolvido pelo servidor. Message fica vazio quando a
// resposta não trouxe uma mensagem utilizável.
type APIError struct {
	StatusCode int
	Message    string
	Path       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("cloutjet: %s returned %d: %s", e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("cloutjet: %s returned %d", e.Path, e.StatusCode)
}

// TransportError indica que a requisição não chegou a ter resposta (rede, DNS, timeout)
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cloutjet: request to %s failed: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerMessage retorna a mensagem enviada pelo servidor, se houver
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// StatusCode retorna o status HTTP da resposta de erro, ou 0 para falhas de transporte
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
