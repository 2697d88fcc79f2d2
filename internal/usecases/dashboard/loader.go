package dashboard

import (
	"context"

	"github.com/cloutjet/admin-dashboard/infrastructure/integrator/cloutjet/cloutjetclient"
	"github.com/cloutjet/admin-dashboard/internal/cache"
	"github.com/cloutjet/admin-dashboard/internal/session"
	"github.com/cloutjet/admin-dashboard/pkg/log"
)

type fetchFunc func(ctx context.Context, token string, store *cache.Store) error

// load busca a coleção quando ela não está fresca. A falha é registrada e a
// coleção volta ao valor vazio com a flag desligada, de modo que a próxima
// visita tente de novo. Nunca retorna erro para a página.
func (s *Service) load(ctx context.Context, sess *session.Session, c cache.Collection) {
	fetch := s.fetcher(c)

	fetched, err := sess.Store.Refresh(ctx, c, func(ctx context.Context) error {
		return fetch(ctx, sess.Token, sess.Store)
	})
	if err != nil && ctx.Err() != nil {
		// a requisição foi abandonada; a coleção continua como estava
		log.ForContext(ctx).WithField("collection", string(c)).Debug("Busca abandonada pelo cliente")
		return
	}
	if err != nil {
		fields := log.Fields{
			"collection":  string(c),
			"status_code": cloutjetclient.StatusCode(err),
			"error":       err.Error(),
		}
		if msg, ok := cloutjetclient.ServerMessage(err); ok {
			fields["message"] = msg
		}
		log.ForContext(ctx).WithFields(fields).Error("Erro ao buscar coleção")
		annotateUpstreamFailure(ctx, string(c), err)

		sess.Store.Reset(c)
		return
	}

	if fetched {
		log.ForContext(ctx).Debugf("Coleção %s atualizada", c)
	}
}

// annotateUpstreamFailure marca o log da requisição com a falha da API
// remota. A página responde 200 mesmo quando a busca falha.
func annotateUpstreamFailure(ctx context.Context, target string, err error) {
	log.AddRequestField(ctx, "upstream_error", target)
	if status := cloutjetclient.StatusCode(err); status != 0 {
		log.AddRequestField(ctx, "upstream_status", status)
	}
}

func (s *Service) fetcher(c cache.Collection) fetchFunc {
	switch c {
	case cache.Accounts:
		return s.fetchAccounts
	case cache.Transactions:
		return s.fetchTransactions
	case cache.Influencers:
		return s.fetchInfluencers
	case cache.Orders:
		return s.fetchOrders
	default:
		return s.fetchAdminStats
	}
}

func (s *Service) fetchAccounts(ctx context.Context, token string, store *cache.Store) error {
	accounts, err := s.client.ListPendingAccounts(ctx, token)
	if err != nil {
		return err
	}
	store.ReplaceAccounts(accounts)
	return nil
}

func (s *Service) fetchTransactions(ctx context.Context, token string, store *cache.Store) error {
	transactions, err := s.client.ListEscrowTransactions(ctx, token)
	if err != nil {
		return err
	}
	store.ReplaceTransactions(transactions)
	return nil
}

func (s *Service) fetchInfluencers(ctx context.Context, token string, store *cache.Store) error {
	influencers, err := s.client.ListInfluencers(ctx, token)
	if err != nil {
		return err
	}
	store.ReplaceInfluencers(influencers)
	return nil
}

func (s *Service) fetchOrders(ctx context.Context, token string, store *cache.Store) error {
	orders, err := s.client.ListOrders(ctx, token)
	if err != nil {
		return err
	}
	store.ReplaceOrders(orders)
	return nil
}

// fetchAdminStats sobrepõe os campos recebidos aos valores anteriores
func (s *Service) fetchAdminStats(ctx context.Context, token string, store *cache.Store) error {
	update, err := s.client.GetAdminStats(ctx, token)
	if err != nil {
		return err
	}
	store.ReplaceAdminStats(store.AdminStats().Apply(update))
	return nil
}
