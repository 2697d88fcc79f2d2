// Package session guarda em memória os logins ativos do painel. Cada sessão
// carrega o token da API remota e o seu próprio cache de coleções.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/cloutjet/admin-dashboard/internal/cache"
	"github.com/cloutjet/admin-dashboard/pkg/utils"
)

var (
	ErrEmptyToken = errors.New("session: upstream token is required")
	ErrNotFound   = errors.New("session: not found")
	ErrExpired    = errors.New("session: expired")
)

type Session struct {
	ID        string
	Email     string
	Token     string
	Store     *cache.Store
	CreatedAt time.Time
	LastSeen  time.Time
}

type Manager struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	ttl       time.Duration
	storeOpts []cache.Option
	now       func() time.Time
}

// NewManager cria o gerenciador. ttl <= 0 mantém as sessões até o logout.
func NewManager(ttl time.Duration, storeOpts ...cache.Option) *Manager {
	return &Manager{
		sessions:  make(map[string]*Session),
		ttl:       ttl,
		storeOpts: storeOpts,
		now:       time.Now,
	}
}

func (m *Manager) Create(email, token string) (Session, error) {
	if token == "" {
		return Session{}, ErrEmptyToken
	}

	id, err := utils.GenerateID(utils.SessionIDSize)
	if err != nil {
		return Session{}, err
	}

	now := m.now()
	sess := &Session{
		ID:        id,
		Email:     email,
		Token:     token,
		Store:     cache.NewStore(m.storeOpts...),
		CreatedAt: now,
		LastSeen:  now,
	}

	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()

	return *sess, nil
}

// Get retorna a sessão e renova LastSeen
func (m *Manager) Get(id string) (Session, bool) {
	sess, err := m.Lookup(id)
	return sess, err == nil
}

// Lookup é como Get, mas diferencia a sessão inexistente da expirada.
// A expiração é por ociosidade: cada acesso renova o prazo. Sessões
// ociosas além do ttl são removidas aqui mesmo, sem esperar o sweeper.
func (m *Manager) Lookup(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}

	now := m.now()
	if m.expired(sess, now) {
		delete(m.sessions, id)
		return Session{}, ErrExpired
	}

	sess.LastSeen = now
	return *sess, nil
}

// SetClock troca o relógio usado para LastSeen e expiração
func (m *Manager) SetClock(now func() time.Time) {
	m.mu.Lock()
	m.now = now
	m.mu.Unlock()
}

func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Sweep remove as sessões ociosas e retorna quantas foram removidas
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, sess := range m.sessions {
		if m.expired(sess, now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) expired(sess *Session, now time.Time) bool {
	return m.ttl > 0 && now.Sub(sess.LastSeen) > m.ttl
}
