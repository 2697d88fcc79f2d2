// Package dashboard monta as páginas do painel administrativo. Cada página
// garante que a sua coleção esteja no cache da sessão, busca na API remota
// quando ela não está fresca e entrega as linhas já formatadas.
package dashboard

import (
	"context"

	"github.com/cloutjet/admin-dashboard/infrastructure/integrator/cloutjet/cloutjetclient"
	"github.com/cloutjet/admin-dashboard/infrastructure/repository"
	"github.com/cloutjet/admin-dashboard/internal/domain"
	"github.com/cloutjet/admin-dashboard/internal/format"
	"github.com/cloutjet/admin-dashboard/internal/session"
)

type Dashboard interface {
	Overview(ctx context.Context, sess *session.Session) (*OverviewView, error)
	Accounts(ctx context.Context, sess *session.Session) *AccountsView
	Escrow(ctx context.Context, sess *session.Session) *EscrowView
	Influencers(ctx context.Context, sess *session.Session) *InfluencersView
	Orders(ctx context.Context, sess *session.Session) *OrdersView
	AssignableInfluencers(ctx context.Context, sess *session.Session) []InfluencerOption

	ReviewAccount(ctx context.Context, sess *session.Session, accountID string, action domain.ReviewAction, notes string) error
	RunEscrowAction(ctx context.Context, sess *session.Session, transactionID string, action domain.EscrowAction, notes string) error
	ReviewInfluencer(ctx context.Context, sess *session.Session, influencerID string, action domain.ReviewAction, notes string) error
	AssignOrder(ctx context.Context, sess *session.Session, orderID string, req domain.AssignOrderRequest) error

	AuditLog(ctx context.Context, limit int) ([]domain.AdminAction, error)
}

type Service struct {
	client cloutjetclient.Client
	format *format.Formatter
	audit  repository.AuditRepository
}

func NewService(client cloutjetclient.Client, formatter *format.Formatter, audit repository.AuditRepository) Dashboard {
	if formatter == nil {
		formatter = format.New(nil, "")
	}
	if audit == nil {
		audit = repository.NewNoopAuditRepository()
	}

	return &Service{
		client: client,
		format: formatter,
		audit:  audit,
	}
}

// hasSession equivale ao token presente no sessionStorage do navegador
func hasSession(sess *session.Session) bool {
	return sess != nil && sess.Token != "" && sess.Store != nil
}

func (s *Service) AuditLog(ctx context.Context, limit int) ([]domain.AdminAction, error) {
	if !s.audit.Enabled() {
		return nil, ErrAuditDisabled
	}
	return s.audit.ListRecent(ctx, limit)
}
