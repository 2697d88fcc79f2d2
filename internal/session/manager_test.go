package session

import (
	"testing"
	"time"

	"github.com/cloutjet/admin-dashboard/internal/cache"
	"github.com/cloutjet/admin-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(ttl time.Duration, clock *time.Time) *Manager {
	m := NewManager(ttl)
	m.now = func() time.Time { return *clock }
	return m
}

func TestManager_CreateAndGet(t *testing.T) {
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(time.Hour, &clock)

	sess, err := m.Create("admin@cloutjet.io", "tok")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.NotNil(t, sess.Store)
	assert.Equal(t, 1, m.Len())

	clock = clock.Add(30 * time.Minute)
	got, ok := m.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, "tok", got.Token)
	assert.Equal(t, clock, got.LastSeen)
	assert.Same(t, sess.Store, got.Store, "a sessão mantém o mesmo cache")
}

func TestManager_CreateRequiresToken(t *testing.T) {
	m := NewManager(time.Hour)
	_, err := m.Create("admin@cloutjet.io", "")
	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.Zero(t, m.Len())
}

func TestManager_StoresAreIsolated(t *testing.T) {
	m := NewManager(0)
	a, err := m.Create("a@cloutjet.io", "tok-a")
	require.NoError(t, err)
	b, err := m.Create("b@cloutjet.io", "tok-b")
	require.NoError(t, err)

	a.Store.ReplaceAccounts([]domain.Account{{ID: "x"}})

	assert.True(t, a.Store.IsFresh(cache.Accounts))
	assert.False(t, b.Store.IsFresh(cache.Accounts))
}

func TestManager_GetExpired(t *testing.T) {
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(time.Hour, &clock)

	sess, err := m.Create("admin@cloutjet.io", "tok")
	require.NoError(t, err)

	clock = clock.Add(2 * time.Hour)
	_, err = m.Lookup(sess.ID)
	assert.ErrorIs(t, err, ErrExpired)
	assert.Zero(t, m.Len())

	_, err = m.Lookup(sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_ActivitySlidesExpiry(t *testing.T) {
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(time.Hour, &clock)

	sess, err := m.Create("admin@cloutjet.io", "tok")
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		clock = clock.Add(45 * time.Minute)
		_, err = m.Lookup(sess.ID)
		require.NoError(t, err, "acesso %d", i)
	}
	assert.Equal(t, 3*time.Hour, clock.Sub(sess.CreatedAt))
}

func TestManager_Delete(t *testing.T) {
	m := NewManager(time.Hour)
	sess, err := m.Create("admin@cloutjet.io", "tok")
	require.NoError(t, err)

	assert.True(t, m.Delete(sess.ID))
	assert.False(t, m.Delete(sess.ID))
	_, ok := m.Get(sess.ID)
	assert.False(t, ok)
}

func TestManager_SweepDropsIdleOnly(t *testing.T) {
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(time.Hour, &clock)

	idle, err := m.Create("idle@cloutjet.io", "tok-1")
	require.NoError(t, err)

	clock = clock.Add(45 * time.Minute)
	active, err := m.Create("active@cloutjet.io", "tok-2")
	require.NoError(t, err)

	removed := m.Sweep(clock.Add(30 * time.Minute))
	assert.Equal(t, 1, removed)

	_, ok := m.Get(idle.ID)
	assert.False(t, ok)
	_, ok = m.Get(active.ID)
	assert.True(t, ok)
}

func TestManager_ZeroTTLNeverExpires(t *testing.T) {
	m := NewManager(0)
	_, err := m.Create("admin@cloutjet.io", "tok")
	require.NoError(t, err)

	assert.Zero(t, m.Sweep(time.Now().Add(24*365*time.Hour)))
	assert.Equal(t, 1, m.Len())
}
