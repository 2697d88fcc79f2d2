package dashboard

import (
	"context"

	"github.com/cloutjet/admin-dashboard/internal/cache"
	"github.com/cloutjet/admin-dashboard/internal/domain"
	"github.com/cloutjet/admin-dashboard/internal/session"
	"github.com/cloutjet/admin-dashboard/pkg/apiErrors"
	"github.com/cloutjet/admin-dashboard/pkg/log"
)

type mutation struct {
	action   string
	verb     string
	noun     string
	entity   string
	entityID string
	notes    string
	// coleção da página; adminStats é sempre invalidado junto
	collection cache.Collection
	call       func(ctx context.Context, token string) error
}

// mutate executa um POST na API remota. Em caso de sucesso a coleção da
// página e os contadores deixam de ser frescos; em caso de falha o cache
// fica intacto.
func (s *Service) mutate(ctx context.Context, sess *session.Session, m mutation) error {
	if !hasSession(sess) {
		return NewActionError(ErrUnauthenticated, apiErrors.ErrInvalidToken, m, "Sessão ausente, faça login novamente")
	}

	log.AddRequestField(ctx, "action", m.action)
	log.AddRequestField(ctx, "entity_id", m.entityID)

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"action":    m.action,
		"entity":    m.entity,
		"entity_id": m.entityID,
	})

	if err := m.call(ctx, sess.Token); err != nil {
		actionErr := upstreamActionError(err, m)
		annotateUpstreamFailure(ctx, m.entity, err)
		logger.WithError(err).Warn("Ação administrativa falhou")
		s.record(ctx, sess, m, false, actionErr.Message)
		return actionErr
	}

	sess.Store.Invalidate(m.collection, cache.AdminStats)
	logger.Info("Ação administrativa concluída")
	s.record(ctx, sess, m, true, "")

	return nil
}

// record grava a trilha de auditoria; falhas aqui não desfazem a ação
func (s *Service) record(ctx context.Context, sess *session.Session, m mutation, succeeded bool, message string) {
	entry := &domain.AdminAction{
		SessionEmail: sess.Email,
		Action:       m.action,
		Entity:       m.entity,
		EntityID:     m.entityID,
		Notes:        m.notes,
		Succeeded:    succeeded,
		Message:      message,
	}

	if err := s.audit.Record(ctx, entry); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao registrar auditoria")
	}
}

func invalidAction(m mutation, message string) *ActionError {
	return NewActionError(ErrInvalidAction, apiErrors.ErrInvalidRequest, m, message)
}
