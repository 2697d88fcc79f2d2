package repository

//go:generate mockgen -source=audit.go -destination=mocks/audit.go -package=mocks

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cloutjet/admin-dashboard/infrastructure/database/postgres"
	"github.com/cloutjet/admin-dashboard/internal/domain"
	"github.com/pkg/errors"
)

const (
	adminActionsTable = "admin_actions"

	DefaultAuditLimit = 50
	MaxAuditLimit     = 500
)

// AdminActionsSchema cria a tabela de auditoria. Usado pelo script de migração.
const AdminActionsSchema = `
CREATE TABLE IF NOT EXISTS admin_actions (
	id            BIGSERIAL PRIMARY KEY,
	session_email VARCHAR(255) NOT NULL,
	action        VARCHAR(64)  NOT NULL,
	entity        VARCHAR(64)  NOT NULL,
	entity_id     VARCHAR(128) NOT NULL,
	notes         TEXT,
	succeeded     BOOLEAN      NOT NULL,
	message       TEXT,
	created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS admin_actions_created_at_idx ON admin_actions (created_at DESC);
`

var adminActionColumns = []string{
	"id", "session_email", "action", "entity", "entity_id", "notes", "succeeded", "message", "created_at",
}

type AuditRepository interface {
	Record(ctx context.Context, action *domain.AdminAction) error
	ListRecent(ctx context.Context, limit int) ([]domain.AdminAction, error)
	Enabled() bool
}

type auditRepository struct {
	conn postgres.Queryer
	now  func() time.Time
}

func NewAuditRepository(conn postgres.Queryer) AuditRepository {
	return &auditRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *auditRepository) Enabled() bool {
	return true
}

func (r *auditRepository) Record(ctx context.Context, action *domain.AdminAction) error {
	if action.CreatedAt.IsZero() {
		action.CreatedAt = r.now().UTC()
	}

	query, args, err := insertAdminActionQuery(action).ToSql()
	if err != nil {
		return errors.Wrap(err, "audit: error building insert")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&action.ID); err != nil {
		return errors.Wrap(err, "audit: error inserting admin action")
	}

	return nil
}

func (r *auditRepository) ListRecent(ctx context.Context, limit int) ([]domain.AdminAction, error) {
	query, args, err := listAdminActionsQuery(limit).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "audit: error building select")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "audit: error listing admin actions")
	}
	defer rows.Close()

	actions := make([]domain.AdminAction, 0)
	for rows.Next() {
		var (
			a       domain.AdminAction
			notes   *string
			message *string
		)

		err := rows.Scan(&a.ID, &a.SessionEmail, &a.Action, &a.Entity, &a.EntityID, &notes, &a.Succeeded, &message, &a.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "audit: error scanning admin action")
		}

		if notes != nil {
			a.Notes = *notes
		}
		if message != nil {
			a.Message = *message
		}

		actions = append(actions, a)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "audit: error iterating admin actions")
	}

	return actions, nil
}

func insertAdminActionQuery(a *domain.AdminAction) squirrel.InsertBuilder {
	return squirrel.
		Insert(adminActionsTable).
		Columns("session_email", "action", "entity", "entity_id", "notes", "succeeded", "message", "created_at").
		Values(a.SessionEmail, a.Action, a.Entity, a.EntityID, nullable(a.Notes), a.Succeeded, nullable(a.Message), a.CreatedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)
}

func listAdminActionsQuery(limit int) squirrel.SelectBuilder {
	return squirrel.
		Select(adminActionColumns...).
		From(adminActionsTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(NormalizeAuditLimit(limit))).
		PlaceholderFormat(squirrel.Dollar)
}

// NormalizeAuditLimit aplica o padrão e o teto da listagem
func NormalizeAuditLimit(limit int) int {
	if limit <= 0 {
		return DefaultAuditLimit
	}
	if limit > MaxAuditLimit {
		return MaxAuditLimit
	}
	return limit
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// CreateAuditSchema aplica AdminActionsSchema
func CreateAuditSchema(ctx context.Context, conn postgres.Queryer) error {
	if _, err := conn.ExecContext(ctx, AdminActionsSchema); err != nil {
		return errors.Wrap(err, "audit: error creating schema")
	}
	return nil
}

// noopAuditRepository é usado quando AUDIT_ENABLED=false
type noopAuditRepository struct{}

func NewNoopAuditRepository() AuditRepository {
	return noopAuditRepository{}
}

func (noopAuditRepository) Record(context.Context, *domain.AdminAction) error {
	return nil
}

func (noopAuditRepository) ListRecent(context.Context, int) ([]domain.AdminAction, error) {
	return []domain.AdminAction{}, nil
}

func (noopAuditRepository) Enabled() bool {
	return false
}
