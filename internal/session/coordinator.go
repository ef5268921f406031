// File path: internal/session/coordinator.go
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lexigen/lexigen/internal/common"
	"github.com/lexigen/lexigen/internal/common/telemetry"
	"github.com/lexigen/lexigen/internal/docgen"
)

// DefaultTTL is how long an untouched session survives before expiry.
const DefaultTTL = 24 * time.Hour

// Coordinator owns session lifecycle on top of a Store: id allocation,
// default seeding, the configuration merge, and lazy TTL expiry. Expiry
// runs as a sweep on access rather than a background goroutine; a session
// is never handed out after its TTL even if the sweep has not caught it
// yet.
type Coordinator struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

func NewCoordinator(store Store, ttl time.Duration) *Coordinator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Coordinator{store: store, ttl: ttl, now: time.Now}
}

// CreateSession allocates a fresh session seeded with the default
// configuration record.
func (c *Coordinator) CreateSession(ctx context.Context) (Record, error) {
	now := c.now()
	rec := Record{
		ID:        uuid.NewString(),
		Config:    docgen.Defaults(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.store.Create(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("session: create: %w", err)
	}
	common.Logger().Info("session: created", "session_id", rec.ID)
	telemetry.RecordSessionCreated()
	return rec, nil
}

// GetSession returns the identified session. Sessions past their TTL are
// treated as not found and removed.
func (c *Coordinator) GetSession(ctx context.Context, id string) (Record, error) {
	c.sweep(ctx)
	rec, err := c.store.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}
	if c.expired(rec) {
		if err := c.store.Delete(ctx, id); err != nil && err != ErrNotFound {
			common.Logger().Warn("session: expiry delete failed", "session_id", id, "error", err)
		}
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// GetOrCreate returns the identified session, or a fresh one when the id
// is empty or unknown. The missing-session path is the silent recovery the
// wizard relies on.
func (c *Coordinator) GetOrCreate(ctx context.Context, id string) (Record, error) {
	if id != "" {
		rec, err := c.GetSession(ctx, id)
		if err == nil {
			return rec, nil
		}
		if err != ErrNotFound {
			return Record{}, err
		}
	}
	return c.CreateSession(ctx)
}

// PatchConfig overlays the named fields onto the stored record. Unknown
// keys are dropped and returned; the merge itself never fails, only the
// surrounding lookup and write can.
func (c *Coordinator) PatchConfig(ctx context.Context, id string, partial map[string]interface{}) (Record, []string, error) {
	rec, err := c.GetSession(ctx, id)
	if err != nil {
		return Record{}, nil, err
	}
	ignored := rec.Config.Merge(partial)
	if len(ignored) > 0 {
		common.Logger().Warn("session: ignored unknown config keys", "session_id", id, "keys", ignored)
	}
	rec.UpdatedAt = c.now()
	if err := c.store.Update(ctx, rec); err != nil {
		return Record{}, nil, fmt.Errorf("session: patch: %w", err)
	}
	return rec, ignored, nil
}

// ResetConfig restores the stored record to defaults, keeping the id.
func (c *Coordinator) ResetConfig(ctx context.Context, id string) (Record, error) {
	rec, err := c.GetSession(ctx, id)
	if err != nil {
		return Record{}, err
	}
	rec.Config = docgen.Defaults()
	rec.UpdatedAt = c.now()
	if err := c.store.Update(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("session: reset: %w", err)
	}
	common.Logger().Info("session: reset to defaults", "session_id", id)
	return rec, nil
}

func (c *Coordinator) DeleteSession(ctx context.Context, id string) error {
	return c.store.Delete(ctx, id)
}

func (c *Coordinator) Count(ctx context.Context) (int, error) {
	return c.store.Count(ctx)
}

func (c *Coordinator) expired(rec Record) bool {
	return c.now().Sub(rec.UpdatedAt) > c.ttl
}

func (c *Coordinator) sweep(ctx context.Context) {
	cutoff := c.now().Add(-c.ttl)
	removed, err := c.store.Expire(ctx, cutoff)
	if err != nil {
		common.Logger().Warn("session: expiry sweep failed", "error", err)
		return
	}
	if removed > 0 {
		common.Logger().Info("session: expired sessions removed", "count", removed)
		telemetry.RecordSessionsExpired(removed)
	}
}
