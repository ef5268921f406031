// File path: internal/sqlite/catalog.go
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lexigen/lexigen/internal/common"
	"github.com/lexigen/lexigen/internal/docgen"
	"github.com/lexigen/lexigen/internal/session"
)

const (
	insertSessionQuery = `INSERT INTO sessions(id, config, created_at, updated_at) VALUES (?, ?, ?, ?)`
	getSessionQuery    = `SELECT * FROM sessions WHERE id = ?`
	listSessionsQuery  = `SELECT * FROM sessions ORDER BY created_at, id`
	updateSessionQuery = `UPDATE sessions SET config = ?, updated_at = ? WHERE id = ?`
	deleteSessionQuery = `DELETE FROM sessions WHERE id = ?`
	expireSessionQuery = `DELETE FROM sessions WHERE updated_at < ?`
	countSessionsQuery = `SELECT COUNT(*) FROM sessions`
	insertAuditQuery   = `INSERT INTO audit(session_id, action, detail) VALUES (?, ?, ?)`
	listAuditQuery     = `SELECT * FROM audit WHERE session_id = ? ORDER BY id`
)

type sessionRow struct {
	ID        string    `db:"id"`
	Config    string    `db:"config"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// AuditEntry is one recorded catalog action.
type AuditEntry struct {
	ID        int64     `db:"id" json:"id"`
	SessionID string    `db:"session_id" json:"session_id"`
	Action    string    `db:"action" json:"action"`
	Detail    string    `db:"detail" json:"detail"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Catalog implements session.Store on top of the SQLite catalog, recording
// an audit entry for every mutation.
type Catalog struct {
	store *Store
}

func NewCatalog(store *Store) *Catalog {
	return &Catalog{store: store}
}

func (c *Catalog) Create(ctx context.Context, rec session.Record) error {
	row, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	if _, err := c.store.db.ExecContext(ctx, insertSessionQuery,
		row.ID, row.Config, row.CreatedAt, row.UpdatedAt); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return session.ErrExists
		}
		return fmt.Errorf("sqlite: insert session: %w", err)
	}
	c.audit(ctx, rec.ID, "session_created", "")
	return nil
}

func (c *Catalog) Get(ctx context.Context, id string) (session.Record, error) {
	var row sessionRow
	if err := c.store.db.GetContext(ctx, &row, getSessionQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return session.Record{}, session.ErrNotFound
		}
		return session.Record{}, fmt.Errorf("sqlite: get session: %w", err)
	}
	return decodeRow(row)
}

// List returns every stored session in creation order.
func (c *Catalog) List(ctx context.Context) ([]session.Record, error) {
	var rows []sessionRow
	if err := c.store.db.SelectContext(ctx, &rows, listSessionsQuery); err != nil {
		return nil, fmt.Errorf("sqlite: list sessions: %w", err)
	}
	records := make([]session.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (c *Catalog) Update(ctx context.Context, rec session.Record) error {
	row, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	res, err := c.store.db.ExecContext(ctx, updateSessionQuery,
		row.Config, row.UpdatedAt, row.ID)
	if err != nil {
		return fmt.Errorf("sqlite: update session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: update session: %w", err)
	}
	if affected == 0 {
		return session.ErrNotFound
	}
	c.audit(ctx, rec.ID, "config_patched", "")
	return nil
}

func (c *Catalog) Delete(ctx context.Context, id string) error {
	res, err := c.store.db.ExecContext(ctx, deleteSessionQuery, id)
	if err != nil {
		return fmt.Errorf("sqlite: delete session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: delete session: %w", err)
	}
	if affected == 0 {
		return session.ErrNotFound
	}
	c.audit(ctx, id, "session_deleted", "")
	return nil
}

func (c *Catalog) Expire(ctx context.Context, before time.Time) (int, error) {
	res, err := c.store.db.ExecContext(ctx, expireSessionQuery, before)
	if err != nil {
		return 0, fmt.Errorf("sqlite: expire sessions: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sqlite: expire sessions: %w", err)
	}
	if affected > 0 {
		c.audit(ctx, "", "sessions_expired", fmt.Sprintf("removed %d", affected))
	}
	return int(affected), nil
}

func (c *Catalog) Count(ctx context.Context) (int, error) {
	var count int
	if err := c.store.db.GetContext(ctx, &count, countSessionsQuery); err != nil {
		return 0, fmt.Errorf("sqlite: count sessions: %w", err)
	}
	return count, nil
}

// AuditTrail returns the recorded actions for one session, oldest first.
func (c *Catalog) AuditTrail(ctx context.Context, sessionID string) ([]AuditEntry, error) {
	var entries []AuditEntry
	if err := c.store.db.SelectContext(ctx, &entries, listAuditQuery, sessionID); err != nil {
		return nil, fmt.Errorf("sqlite: audit trail: %w", err)
	}
	return entries, nil
}

// audit records a catalog action. Audit failures are logged, never
// propagated: the trail is best effort.
func (c *Catalog) audit(ctx context.Context, sessionID, action, detail string) {
	if _, err := c.store.db.ExecContext(ctx, insertAuditQuery, sessionID, action, detail); err != nil {
		common.Logger().Warn("sqlite: audit write failed", "action", action, "error", err)
	}
}

func encodeRecord(rec session.Record) (sessionRow, error) {
	payload, err := json.Marshal(rec.Config)
	if err != nil {
		return sessionRow{}, fmt.Errorf("sqlite: encode config: %w", err)
	}
	return sessionRow{
		ID:        rec.ID,
		Config:    string(payload),
		CreatedAt: rec.CreatedAt.UTC(),
		UpdatedAt: rec.UpdatedAt.UTC(),
	}, nil
}

func decodeRow(row sessionRow) (session.Record, error) {
	var cfg docgen.Config
	if err := json.Unmarshal([]byte(row.Config), &cfg); err != nil {
		return session.Record{}, fmt.Errorf("sqlite: decode config for %s: %w", row.ID, err)
	}
	return session.Record{
		ID:        row.ID,
		Config:    cfg,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
