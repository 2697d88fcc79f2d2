// Package cache mantém a réplica de leitura dos dados buscados na API remota.
// Cada sessão de admin possui o seu próprio Store.
package cache

import (
	"context"
	"sync"

	"github.com/cloutjet/admin-dashboard/internal/domain"
	"golang.org/x/sync/singleflight"
)

type Collection string

const (
	Accounts     Collection = "accounts"
	Transactions Collection = "transactions"
	Influencers  Collection = "influencers"
	Orders       Collection = "orders"
	AdminStats   Collection = "adminStats"
)

// All lista as coleções na ordem em que aparecem no painel
var All = []Collection{Accounts, Transactions, Influencers, Orders, AdminStats}

type Option func(*Store)

// WithSingleFlight faz com que buscas concorrentes da mesma coleção
// compartilhem uma única requisição.
func WithSingleFlight(enabled bool) Option {
	return func(s *Store) {
		s.singleFlight = enabled
	}
}

// Store guarda a última versão de cada coleção e a flag de frescor.
// Invalidate limpa apenas a flag; os dados continuam disponíveis até a próxima busca.
type Store struct {
	mu           sync.RWMutex
	accounts     []domain.Account
	transactions []domain.Transaction
	influencers  []domain.Influencer
	orders       []domain.Order
	adminStats   domain.AdminStats
	fresh        map[Collection]bool

	singleFlight bool
	flight       singleflight.Group
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		accounts:     []domain.Account{},
		transactions: []domain.Transaction{},
		influencers:  []domain.Influencer{},
		orders:       []domain.Order{},
		adminStats:   domain.EmptyAdminStats(),
		fresh:        make(map[Collection]bool, len(All)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store) IsFresh(c Collection) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fresh[c]
}

// Invalidate marca as coleções como desatualizadas sem apagar os dados
func (s *Store) Invalidate(cs ...Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range cs {
		s.fresh[c] = false
	}
}

// Reset volta a coleção ao valor vazio e mantém a flag desligada,
// garantindo que a próxima leitura tente buscar novamente.
func (s *Store) Reset(c Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch c {
	case Accounts:
		s.accounts = []domain.Account{}
	case Transactions:
		s.transactions = []domain.Transaction{}
	case Influencers:
		s.influencers = []domain.Influencer{}
	case Orders:
		s.orders = []domain.Order{}
	case AdminStats:
		s.adminStats = domain.EmptyAdminStats()
	}
	s.fresh[c] = false
}

// Refresh chama fetch quando a coleção não está fresca. A verificação e a
// busca não são atômicas: duas chamadas simultâneas podem buscar as duas,
// e a última escrita vence. Com WithSingleFlight elas compartilham a busca.
func (s *Store) Refresh(ctx context.Context, c Collection, fetch func(context.Context) error) (bool, error) {
	if s.IsFresh(c) {
		return false, nil
	}

	if !s.singleFlight {
		return true, fetch(ctx)
	}

	// A busca compartilhada não herda o cancelamento de quem a iniciou;
	// cada chamador deixa de esperar apenas quando o próprio ctx termina.
	shared := context.WithoutCancel(ctx)
	ch := s.flight.DoChan(string(c), func() (any, error) {
		if s.IsFresh(c) {
			return nil, nil
		}
		return nil, fetch(shared)
	})

	select {
	case res := <-ch:
		return true, res.Err
	case <-ctx.Done():
		return true, ctx.Err()
	}
}

func (s *Store) Accounts() []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Account{}, s.accounts...)
}

func (s *Store) ReplaceAccounts(v []domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append([]domain.Account{}, v...)
	s.fresh[Accounts] = true
}

func (s *Store) Transactions() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Transaction{}, s.transactions...)
}

func (s *Store) ReplaceTransactions(v []domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]domain.Transaction{}, v...)
	s.fresh[Transactions] = true
}

func (s *Store) Influencers() []domain.Influencer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Influencer{}, s.influencers...)
}

func (s *Store) ReplaceInfluencers(v []domain.Influencer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.influencers = append([]domain.Influencer{}, v...)
	s.fresh[Influencers] = true
}

func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Order{}, s.orders...)
}

func (s *Store) ReplaceOrders(v []domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]domain.Order{}, v...)
	s.fresh[Orders] = true
}

func (s *Store) AdminStats() domain.AdminStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := s.adminStats
	stats.RecentNotifications = append([]domain.Notification{}, s.adminStats.RecentNotifications...)
	return stats
}

func (s *Store) ReplaceAdminStats(v domain.AdminStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.RecentNotifications == nil {
		v.RecentNotifications = []domain.Notification{}
	}
	s.adminStats = v
	s.fresh[AdminStats] = true
}

// Snapshot descreve o estado de frescor de cada coleção
func (s *Store) Snapshot() map[Collection]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[Collection]bool, len(All))
	for _, c := range All {
		out[c] = s.fresh[c]
	}
	return out
}
