package repository

import (
	"context"
	"testing"
	"time"

	"github.com/cloutjet/admin-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAdminActionQuery(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	action := &domain.AdminAction{
		SessionEmail: "admin@cloutjet.io",
		Action:       "approve",
		Entity:       "account",
		EntityID:     "a1",
		Succeeded:    true,
		CreatedAt:    createdAt,
	}

	query, args, err := insertAdminActionQuery(action).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO admin_actions (session_email,action,entity,entity_id,notes,succeeded,message,created_at) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id",
		query)
	require.Len(t, args, 8)
	assert.Equal(t, "admin@cloutjet.io", args[0])
	assert.Nil(t, args[4], "notes vazias viram NULL")
	assert.Equal(t, true, args[5])
	assert.Equal(t, createdAt, args[7])
}

func TestListAdminActionsQuery(t *testing.T) {
	query, args, err := listAdminActionsQuery(10).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, session_email, action, entity, entity_id, notes, succeeded, message, created_at "+
			"FROM admin_actions ORDER BY created_at DESC, id DESC LIMIT 10",
		query)
	assert.Empty(t, args)
}

func TestNormalizeAuditLimit(t *testing.T) {
	assert.Equal(t, DefaultAuditLimit, NormalizeAuditLimit(0))
	assert.Equal(t, DefaultAuditLimit, NormalizeAuditLimit(-3))
	assert.Equal(t, 25, NormalizeAuditLimit(25))
	assert.Equal(t, MaxAuditLimit, NormalizeAuditLimit(10_000))
}

func TestNoopAuditRepository(t *testing.T) {
	repo := NewNoopAuditRepository()

	assert.False(t, repo.Enabled())
	assert.NoError(t, repo.Record(context.Background(), &domain.AdminAction{}))

	actions, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, actions)
	assert.Empty(t, actions)
}
