// File path: internal/session/session.go

// Package session owns the lifecycle of editing sessions: allocation,
// lookup, configuration patching, and expiry. The configuration record is
// mutated only through the coordinator's merge operation.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/lexigen/lexigen/internal/docgen"
)

// Record is one stored editing session.
type Record struct {
	ID        string        `json:"session_id" db:"id"`
	Config    docgen.Config `json:"config" db:"config"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

var (
	ErrNotFound = errors.New("session not found")
	ErrExists   = errors.New("session already exists")
)

// Store persists session records. Implementations must be safe for
// concurrent use.
type Store interface {
	Create(ctx context.Context, rec Record) error
	Get(ctx context.Context, id string) (Record, error)
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
	// Expire removes every record last updated before the cutoff and
	// reports how many were removed.
	Expire(ctx context.Context, before time.Time) (int, error)
	Count(ctx context.Context) (int, error)
}
