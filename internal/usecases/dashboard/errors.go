package dashboard

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cloutjet/admin-dashboard/infrastructure/integrator/cloutjet/cloutjetclient"
	"github.com/cloutjet/admin-dashboard/pkg/apiErrors"
)

var (
	ErrUnauthenticated     = errors.New("sessão ausente")
	ErrInvalidAction       = errors.New("ação inválida")
	ErrActionNotAvailable  = errors.New("ação não executável pelo painel")
	ErrMissingInfluencer   = errors.New("influenciador obrigatório")
	ErrActionRejected      = errors.New("ação recusada pela api remota")
	ErrUpstreamUnavailable = errors.New("api remota indisponível")
	ErrAuditDisabled       = errors.New("auditoria desligada")
)

// LoginRedirect é o destino informado ao cliente quando a visão geral não tem sessão
const LoginRedirect = "/"

// ActionError é a falha de uma ação administrativa. Message é o texto exibido
// no alerta do diálogo: a mensagem do servidor ou "unable to {ação} {entidade}".
type ActionError struct {
	Err      error
	Code     string
	Action   string
	Entity   string
	EntityID string
	Message  string
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s %s %s: %s: %s", e.Action, e.Entity, e.EntityID, e.Err.Error(), e.Message)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

func NewActionError(baseErr error, code string, m mutation, message string) *ActionError {
	return &ActionError{
		Err:      baseErr,
		Code:     code,
		Action:   m.action,
		Entity:   m.entity,
		EntityID: m.entityID,
		Message:  message,
	}
}

// FailureMessage é a mensagem do servidor ou o texto genérico da ação
func FailureMessage(err error, verb, noun string) string {
	if msg, ok := cloutjetclient.ServerMessage(err); ok {
		return msg
	}
	return fmt.Sprintf("unable to %s %s", verb, noun)
}

// upstreamActionError classifica a falha da API remota numa ação
func upstreamActionError(err error, m mutation) *ActionError {
	message := FailureMessage(err, m.verb, m.noun)

	var transportErr *cloutjetclient.TransportError
	if errors.As(err, &transportErr) {
		return NewActionError(fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err), apiErrors.ErrCommunication, m, message)
	}

	if status := cloutjetclient.StatusCode(err); status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return NewActionError(fmt.Errorf("%w: %v", ErrActionRejected, err), apiErrors.ErrActionRejected, m, message)
	}

	return NewActionError(fmt.Errorf("%w: %v", ErrActionRejected, err), apiErrors.ErrExternalService, m, message)
}

// IsValidationError indica erros causados pela própria requisição
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAction) ||
		errors.Is(err, ErrActionNotAvailable) ||
		errors.Is(err, ErrMissingInfluencer)
}
